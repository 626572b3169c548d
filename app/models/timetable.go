package models

// TimetableEntry represents one scheduled lesson: a subject taught by a
// teacher for a semester on a fixed weekday slot. Times are HH:MM strings.
type TimetableEntry struct {
	ID          int64     `json:"id" db:"id"`
	SubjectID   int64     `json:"subject_id" db:"subject_id"`
	TeacherID   int64     `json:"teacher_id" db:"teacher_id"`
	SemesterID  int64     `json:"semester_id" db:"semester_id"`
	DayOfWeek   DayOfWeek `json:"day_of_week" db:"day_of_week"`
	StartTime   string    `json:"start_time" db:"start_time"`
	EndTime     string    `json:"end_time" db:"end_time"`
	SubjectCode string    `json:"subject_code,omitempty"`
	SubjectName string    `json:"subject_name,omitempty"`
	TeacherName string    `json:"teacher_name,omitempty"`
}
