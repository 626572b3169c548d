package services

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

const dateLayout = "2006-01-02"

// WeekSpan returns the Monday and Saturday of the week containing ref.
func WeekSpan(ref time.Time) (time.Time, time.Time) {
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(ref.Weekday()) + 6) % 7 // Monday = 0
	monday := ref.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 5)
}

// AttendanceColumn is one column of the weekly grid: a concrete date and
// timetable slot on which the subject is taught.
type AttendanceColumn struct {
	Date      string `json:"date"`
	Day       string `json:"day"`
	ShortDay  string `json:"short_day"`
	StartTime string `json:"start_time"`
	SlotID    int64  `json:"slot_id"`
}

// AttendanceCell is one student's mark for one column. Status is empty
// when the cell has not been marked yet.
type AttendanceCell struct {
	Status    models.AttendanceStatus `json:"status"`
	InputName string                  `json:"input_name"`
}

// AttendanceRow is one student's week.
type AttendanceRow struct {
	Student *models.Student  `json:"student"`
	Cells   []AttendanceCell `json:"cells"`
}

// AttendanceGrid is the weekly attendance-taking view for one subject and
// semester.
type AttendanceGrid struct {
	WeekStart string             `json:"week_start"`
	WeekEnd   string             `json:"week_end"`
	Columns   []AttendanceColumn `json:"columns"`
	Rows      []AttendanceRow    `json:"rows"`
}

var dayOffsets = map[models.DayOfWeek]int{
	models.Monday:    0,
	models.Tuesday:   1,
	models.Wednesday: 2,
	models.Thursday:  3,
	models.Friday:    4,
	models.Saturday:  5,
}

// BuildAttendanceColumns derives the grid columns from a subject's
// timetable entries, tagging each with its concrete date in the week
// starting at monday. Columns are chronological: day-major, then start
// time, lowest id breaking ties.
func BuildAttendanceColumns(entries []*models.TimetableEntry, monday time.Time) []AttendanceColumn {
	var columns []AttendanceColumn
	for _, day := range weekDays {
		var daily []*models.TimetableEntry
		for _, e := range entries {
			if e.DayOfWeek == day {
				daily = append(daily, e)
			}
		}
		sort.Slice(daily, func(i, j int) bool {
			if daily[i].StartTime != daily[j].StartTime {
				return daily[i].StartTime < daily[j].StartTime
			}
			return daily[i].ID < daily[j].ID
		})

		date := monday.AddDate(0, 0, dayOffsets[day]).Format(dateLayout)
		for _, e := range daily {
			columns = append(columns, AttendanceColumn{
				Date:      date,
				Day:       string(day),
				ShortDay:  string(day)[:3],
				StartTime: e.StartTime,
				SlotID:    e.ID,
			})
		}
	}
	return columns
}

// BuildAttendanceRows projects students against the columns, filling in
// any marks already recorded for the week. Records without a slot
// reference cannot be placed on the grid and are ignored.
func BuildAttendanceRows(students []*models.Student, columns []AttendanceColumn, records []*models.AttendanceRecord) []AttendanceRow {
	marked := make(map[string]models.AttendanceStatus)
	for _, r := range records {
		if r.TimetableSlotID == nil {
			continue
		}
		key := fmt.Sprintf("%d_%s_%d", r.StudentID, r.Date.Format(dateLayout), *r.TimetableSlotID)
		marked[key] = r.Status
	}

	rows := make([]AttendanceRow, 0, len(students))
	for _, student := range students {
		row := AttendanceRow{Student: student, Cells: make([]AttendanceCell, 0, len(columns))}
		for _, col := range columns {
			key := fmt.Sprintf("%d_%s_%d", student.UserID, col.Date, col.SlotID)
			row.Cells = append(row.Cells, AttendanceCell{
				Status:    marked[key],
				InputName: fmt.Sprintf("attendance_%d_%s_%d", student.UserID, col.Date, col.SlotID),
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// GetWeeklyAttendanceGrid builds the attendance-taking grid for a subject
// and semester, for the week containing refDate.
func GetWeeklyAttendanceGrid(db *sql.DB, subjectID, semesterID int64, refDate time.Time) (*AttendanceGrid, error) {
	if _, err := database.GetSubjectByID(db, subjectID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := database.GetSemesterByID(db, semesterID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	monday, saturday := WeekSpan(refDate)

	entries, err := database.GetTimetableBySubject(db, subjectID)
	if err != nil {
		return nil, err
	}
	students, err := database.GetStudentsBySemester(db, semesterID)
	if err != nil {
		return nil, err
	}
	records, err := database.GetAttendanceForWeek(db, subjectID, semesterID, monday, saturday)
	if err != nil {
		return nil, err
	}

	columns := BuildAttendanceColumns(entries, monday)
	return &AttendanceGrid{
		WeekStart: monday.Format(dateLayout),
		WeekEnd:   saturday.Format(dateLayout),
		Columns:   columns,
		Rows:      BuildAttendanceRows(students, columns, records),
	}, nil
}

// ParseAttendanceKey parses a submission key of the form
// attendance_{studentID}_{date}_{slotID}. Anything else is malformed.
func ParseAttendanceKey(key string) (int64, time.Time, int64, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 4 || parts[0] != "attendance" {
		return 0, time.Time{}, 0, &ValidationError{Field: key, Message: "malformed attendance key"}
	}
	studentID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, time.Time{}, 0, &ValidationError{Field: key, Message: "student id is not numeric"}
	}
	date, err := time.Parse(dateLayout, parts[2])
	if err != nil {
		return 0, time.Time{}, 0, &ValidationError{Field: key, Message: "invalid date"}
	}
	slotID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return 0, time.Time{}, 0, &ValidationError{Field: key, Message: "slot id is not numeric"}
	}
	return studentID, date, slotID, nil
}

// SubmissionResult reports how a batch submission fared. Skipped counts
// malformed keys and invalid statuses; Failed counts entries that parsed
// fine but could not be stored.
type SubmissionResult struct {
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// AttendanceStore is the storage surface batch submission needs. The SQL
// layer satisfies it in production; tests use an in-memory double.
type AttendanceStore interface {
	GetSubjectByID(subjectID int64) (*models.Subject, error)
	UpsertAttendance(record *models.AttendanceRecord) error
}

type sqlAttendanceStore struct {
	db *sql.DB
}

func (s sqlAttendanceStore) GetSubjectByID(subjectID int64) (*models.Subject, error) {
	return database.GetSubjectByID(s.db, subjectID)
}

func (s sqlAttendanceStore) UpsertAttendance(record *models.AttendanceRecord) error {
	return database.UpsertAttendance(s.db, record)
}

// SubmitAttendance upserts one record per well-formed entry, keyed by
// (student, subject, date, slot). Malformed keys and invalid statuses are
// skipped individually, storage failures are counted separately; the
// batch never aborts because of either.
func SubmitAttendance(db *sql.DB, subjectID, markedBy int64, entries map[string]string) (*SubmissionResult, error) {
	return submitAttendance(sqlAttendanceStore{db}, subjectID, markedBy, entries)
}

func submitAttendance(store AttendanceStore, subjectID, markedBy int64, entries map[string]string) (*SubmissionResult, error) {
	if _, err := store.GetSubjectByID(subjectID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result := &SubmissionResult{}
	for key, status := range entries {
		if !strings.HasPrefix(key, "attendance_") {
			continue
		}
		studentID, date, slotID, err := ParseAttendanceKey(key)
		if err != nil {
			result.Skipped++
			continue
		}
		st := models.AttendanceStatus(status)
		if !st.IsValid() {
			result.Skipped++
			continue
		}

		record := &models.AttendanceRecord{
			StudentID:       studentID,
			SubjectID:       subjectID,
			Date:            date,
			Status:          st,
			MarkedBy:        markedBy,
			TimetableSlotID: &slotID,
		}
		if err := store.UpsertAttendance(record); err != nil {
			log.Printf("Attendance storage failed for %s: %v", key, err)
			result.Failed++
			continue
		}
		result.Accepted++
	}
	return result, nil
}

// Percentage returns present/total as a percentage rounded to two
// decimals. A zero total yields 0, never a division error.
func Percentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(present) / float64(total) * 100
	return float64(int(rate*100+0.5)) / 100
}

// GetAttendanceRate returns a student's attendance percentage, across all
// subjects or for one subject when subjectID is non-zero.
func GetAttendanceRate(db *sql.DB, studentID, subjectID int64) (float64, error) {
	if _, err := database.GetStudentByUserID(db, studentID); err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrNotFound
		}
		return 0, err
	}
	present, total, err := database.CountAttendance(db, studentID, subjectID)
	if err != nil {
		return 0, err
	}
	return Percentage(present, total), nil
}

// SubjectAttendance is a per-subject attendance summary for a student.
type SubjectAttendance struct {
	SubjectID   int64   `json:"subject_id"`
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	Present     int     `json:"present"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
}

// GetStudentAttendanceSummary returns the per-subject breakdown for a
// student, percentages included.
func GetStudentAttendanceSummary(db *sql.DB, studentID int64) ([]*SubjectAttendance, error) {
	if _, err := database.GetStudentByUserID(db, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	counts, err := database.GetAttendanceCountsBySubject(db, studentID)
	if err != nil {
		return nil, err
	}
	summary := make([]*SubjectAttendance, 0, len(counts))
	for _, c := range counts {
		summary = append(summary, &SubjectAttendance{
			SubjectID:   c.SubjectID,
			SubjectCode: c.SubjectCode,
			SubjectName: c.SubjectName,
			Present:     c.Present,
			Total:       c.Total,
			Percentage:  Percentage(c.Present, c.Total),
		})
	}
	return summary, nil
}
