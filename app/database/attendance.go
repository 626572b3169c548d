package database

import (
	"database/sql"
	"time"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

// UpsertAttendance inserts or overwrites the attendance record for the
// (student, subject, date, slot) key. Concurrent submissions for the same
// key serialize on the uniqueness constraint; the last writer wins.
func UpsertAttendance(db *sql.DB, record *models.AttendanceRecord) error {
	query := `INSERT INTO attendance (student_id, subject_id, date, status, marked_by, timetable_slot_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (student_id, subject_id, date, timetable_slot_id)
			  DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by
			  RETURNING id`

	return db.QueryRow(query, record.StudentID, record.SubjectID, record.Date,
		record.Status, record.MarkedBy, record.TimetableSlotID).Scan(&record.ID)
}

// GetAttendanceForWeek returns the attendance records for a subject within
// [weekStart, weekEnd], limited to students of the given semester.
func GetAttendanceForWeek(db *sql.DB, subjectID, semesterID int64, weekStart, weekEnd time.Time) ([]*models.AttendanceRecord, error) {
	query := `SELECT a.id, a.student_id, a.subject_id, a.date, a.status, a.marked_by, a.timetable_slot_id
			  FROM attendance a
			  JOIN students st ON st.user_id = a.student_id
			  WHERE a.subject_id = $1
			  AND st.semester_id = $2
			  AND a.date BETWEEN $3 AND $4`

	rows, err := db.Query(query, subjectID, semesterID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendance(rows)
}

func scanAttendance(rows *sql.Rows) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	for rows.Next() {
		r := &models.AttendanceRecord{}
		if err := rows.Scan(&r.ID, &r.StudentID, &r.SubjectID, &r.Date, &r.Status, &r.MarkedBy, &r.TimetableSlotID); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountAttendance returns (present, total) for a student, optionally
// restricted to one subject when subjectID is non-zero.
func CountAttendance(db *sql.DB, studentID, subjectID int64) (int, int, error) {
	query := `SELECT COUNT(*) FILTER (WHERE status = 'PRESENT'), COUNT(*)
			  FROM attendance WHERE student_id = $1`
	args := []interface{}{studentID}

	if subjectID != 0 {
		query += ` AND subject_id = $2`
		args = append(args, subjectID)
	}

	var present, total int
	if err := db.QueryRow(query, args...).Scan(&present, &total); err != nil {
		return 0, 0, err
	}
	return present, total, nil
}

// SubjectAttendanceCount aggregates a student's marks for one subject.
type SubjectAttendanceCount struct {
	SubjectID   int64
	SubjectCode string
	SubjectName string
	Present     int
	Total       int
}

// GetAttendanceCountsBySubject returns per-subject present/total counts
// for a student.
func GetAttendanceCountsBySubject(db *sql.DB, studentID int64) ([]*SubjectAttendanceCount, error) {
	query := `SELECT s.id, s.subject_code, s.subject_name,
					 COUNT(*) FILTER (WHERE a.status = 'PRESENT'), COUNT(*)
			  FROM attendance a
			  JOIN subjects s ON s.id = a.subject_id
			  WHERE a.student_id = $1
			  GROUP BY s.id, s.subject_code, s.subject_name
			  ORDER BY s.subject_code`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*SubjectAttendanceCount
	for rows.Next() {
		c := &SubjectAttendanceCount{}
		if err := rows.Scan(&c.SubjectID, &c.SubjectCode, &c.SubjectName, &c.Present, &c.Total); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
