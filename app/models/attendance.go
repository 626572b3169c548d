package models

import "time"

// AttendanceRecord represents a single attendance mark for a student in a
// subject on a concrete date and timetable slot. At most one record exists
// per (student, subject, date, slot); submitting again overwrites it.
type AttendanceRecord struct {
	ID              int64            `json:"id" db:"id"`
	StudentID       int64            `json:"student_id" db:"student_id"`
	SubjectID       int64            `json:"subject_id" db:"subject_id"`
	Date            time.Time        `json:"date" db:"date"`
	Status          AttendanceStatus `json:"status" db:"status"`
	MarkedBy        int64            `json:"marked_by" db:"marked_by"`
	TimetableSlotID *int64           `json:"timetable_slot_id,omitempty" db:"timetable_slot_id"`
}
