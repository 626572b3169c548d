package database

import (
	"database/sql"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

const timetableSelect = `
	SELECT t.id, t.subject_id, t.teacher_id, t.semester_id, t.day_of_week,
		   t.start_time, t.end_time, s.subject_code, s.subject_name, u.name
	FROM timetable t
	JOIN subjects s ON s.id = t.subject_id
	JOIN users u ON u.id = t.teacher_id`

func scanTimetableEntries(rows *sql.Rows) ([]*models.TimetableEntry, error) {
	var entries []*models.TimetableEntry
	for rows.Next() {
		e := &models.TimetableEntry{}
		err := rows.Scan(&e.ID, &e.SubjectID, &e.TeacherID, &e.SemesterID, &e.DayOfWeek,
			&e.StartTime, &e.EndTime, &e.SubjectCode, &e.SubjectName, &e.TeacherName)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetTimetableBySemester returns every entry for a semester. Ordered by id
// so repeated reads see the same sequence.
func GetTimetableBySemester(db *sql.DB, semesterID int64) ([]*models.TimetableEntry, error) {
	rows, err := db.Query(timetableSelect+` WHERE t.semester_id = $1 ORDER BY t.id`, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimetableEntries(rows)
}

func GetTimetableByTeacher(db *sql.DB, teacherID int64) ([]*models.TimetableEntry, error) {
	rows, err := db.Query(timetableSelect+` WHERE t.teacher_id = $1 ORDER BY t.id`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimetableEntries(rows)
}

// GetTimetableBySubject returns a subject's entries ordered by start time;
// the weekly attendance grid builds its columns from this set.
func GetTimetableBySubject(db *sql.DB, subjectID int64) ([]*models.TimetableEntry, error) {
	rows, err := db.Query(timetableSelect+` WHERE t.subject_id = $1 ORDER BY t.start_time, t.id`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimetableEntries(rows)
}

// DeleteTimetableBySemester removes every entry for a semester. Used by
// the full-replace save inside its transaction.
func DeleteTimetableBySemester(q DBTX, semesterID int64) error {
	_, err := q.Exec(`DELETE FROM timetable WHERE semester_id = $1`, semesterID)
	return err
}

func CreateTimetableEntry(q DBTX, entry *models.TimetableEntry) error {
	query := `INSERT INTO timetable (subject_id, teacher_id, semester_id, day_of_week, start_time, end_time)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return q.QueryRow(query, entry.SubjectID, entry.TeacherID, entry.SemesterID,
		entry.DayOfWeek, entry.StartTime, entry.EndTime).Scan(&entry.ID)
}
