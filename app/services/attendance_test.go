package services

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWeekSpan(t *testing.T) {
	tests := []struct {
		name       string
		ref        string
		wantMonday string
	}{
		{"monday maps to itself", "2024-05-06", "2024-05-06"},
		{"wednesday maps back", "2024-05-08", "2024-05-06"},
		{"saturday maps back", "2024-05-11", "2024-05-06"},
		{"sunday belongs to the ending week", "2024-05-12", "2024-05-06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, saturday := WeekSpan(date(tt.ref))
			assert.Equal(t, tt.wantMonday, monday.Format("2006-01-02"))
			assert.Equal(t, monday.AddDate(0, 0, 5), saturday)
		})
	}
}

func TestParseAttendanceKey(t *testing.T) {
	studentID, d, slotID, err := ParseAttendanceKey("attendance_12_2024-05-06_7")
	require.NoError(t, err)
	assert.Equal(t, int64(12), studentID)
	assert.Equal(t, "2024-05-06", d.Format("2006-01-02"))
	assert.Equal(t, int64(7), slotID)
}

func TestParseAttendanceKeyMalformed(t *testing.T) {
	bad := []string{
		"attendance_bad",
		"attendance_12_2024-05-06",           // wrong arity
		"attendance_12_2024-05-06_7_extra",   // wrong arity
		"attendance_abc_2024-05-06_7",        // non-numeric student
		"attendance_12_notadate_7",           // invalid date
		"attendance_12_2024-05-06_slot",      // non-numeric slot
		"something_12_2024-05-06_7",          // wrong prefix
	}
	for _, key := range bad {
		_, _, _, err := ParseAttendanceKey(key)
		assert.Error(t, err, "key %q", key)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "key %q", key)
	}
}

func TestBuildAttendanceColumns(t *testing.T) {
	monday := date("2024-05-06")
	entries := []*models.TimetableEntry{
		{ID: 7, DayOfWeek: models.Wednesday, StartTime: "09:00"},
		{ID: 3, DayOfWeek: models.Monday, StartTime: "14:00"},
		{ID: 4, DayOfWeek: models.Monday, StartTime: "09:00"},
	}

	columns := BuildAttendanceColumns(entries, monday)
	require.Len(t, columns, 3)

	// Chronological: Monday's slots by start time, then Wednesday's.
	assert.Equal(t, int64(4), columns[0].SlotID)
	assert.Equal(t, "2024-05-06", columns[0].Date)
	assert.Equal(t, "MON", columns[0].ShortDay)
	assert.Equal(t, "09:00", columns[0].StartTime)

	assert.Equal(t, int64(3), columns[1].SlotID)
	assert.Equal(t, "14:00", columns[1].StartTime)

	assert.Equal(t, int64(7), columns[2].SlotID)
	assert.Equal(t, "2024-05-08", columns[2].Date)
	assert.Equal(t, "WED", columns[2].ShortDay)
}

func TestBuildAttendanceRows(t *testing.T) {
	columns := []AttendanceColumn{
		{Date: "2024-05-06", Day: "MONDAY", StartTime: "09:00", SlotID: 4},
		{Date: "2024-05-08", Day: "WEDNESDAY", StartTime: "09:00", SlotID: 7},
	}
	students := []*models.Student{
		{UserID: 12, EnrollmentNumber: "EN001"},
		{UserID: 15, EnrollmentNumber: "EN002"},
	}
	slot4 := int64(4)
	records := []*models.AttendanceRecord{
		{StudentID: 12, Date: date("2024-05-06"), Status: models.Present, TimetableSlotID: &slot4},
		{StudentID: 15, Date: date("2024-05-06"), Status: models.Absent, TimetableSlotID: nil}, // no slot: not placeable
	}

	rows := BuildAttendanceRows(students, columns, records)
	require.Len(t, rows, 2)
	require.Len(t, rows[0].Cells, 2)

	assert.Equal(t, models.Present, rows[0].Cells[0].Status)
	assert.Equal(t, "attendance_12_2024-05-06_4", rows[0].Cells[0].InputName)
	assert.Empty(t, rows[0].Cells[1].Status)

	// the slot-less record must not leak into any cell
	assert.Empty(t, rows[1].Cells[0].Status)
	assert.Equal(t, "attendance_15_2024-05-06_4", rows[1].Cells[0].InputName)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		present, total int
		want           float64
	}{
		{0, 0, 0}, // zero denominator must not divide
		{0, 10, 0},
		{10, 10, 100},
		{1, 2, 50},
		{2, 3, 66.67},
		{1, 3, 33.33},
		{7, 9, 77.78},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.present, tt.total), "%d/%d", tt.present, tt.total)
	}
}

// memAttendanceStore mimics the upsert semantics of the attendance table:
// one row per (student, subject, date, slot), last writer wins.
type memAttendanceStore struct {
	subjects map[int64]*models.Subject
	records  map[string]*models.AttendanceRecord
	failFor  map[int64]error
}

func newMemAttendanceStore(subjectIDs ...int64) *memAttendanceStore {
	m := &memAttendanceStore{
		subjects: make(map[int64]*models.Subject),
		records:  make(map[string]*models.AttendanceRecord),
		failFor:  make(map[int64]error),
	}
	for _, id := range subjectIDs {
		m.subjects[id] = &models.Subject{ID: id}
	}
	return m
}

func (m *memAttendanceStore) GetSubjectByID(subjectID int64) (*models.Subject, error) {
	s, ok := m.subjects[subjectID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return s, nil
}

func (m *memAttendanceStore) UpsertAttendance(r *models.AttendanceRecord) error {
	if err := m.failFor[r.StudentID]; err != nil {
		return err
	}
	key := fmt.Sprintf("%d_%d_%s_%d", r.StudentID, r.SubjectID, r.Date.Format("2006-01-02"), *r.TimetableSlotID)
	if existing, ok := m.records[key]; ok {
		existing.Status = r.Status
		existing.MarkedBy = r.MarkedBy
		return nil
	}
	cp := *r
	m.records[key] = &cp
	return nil
}

func TestSubmitAttendanceMixedBatch(t *testing.T) {
	store := newMemAttendanceStore(3)

	result, err := submitAttendance(store, 3, 99, map[string]string{
		"attendance_12_2024-05-06_7": "PRESENT",
		"attendance_bad":             "PRESENT",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	require.Len(t, store.records, 1)
	rec := store.records["12_3_2024-05-06_7"]
	require.NotNil(t, rec)
	assert.Equal(t, models.Present, rec.Status)
	assert.Equal(t, int64(99), rec.MarkedBy)
}

func TestSubmitAttendanceOverwritesSameKey(t *testing.T) {
	store := newMemAttendanceStore(3)
	entry := map[string]string{"attendance_12_2024-05-06_7": "PRESENT"}

	result, err := submitAttendance(store, 3, 99, entry)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)

	entry["attendance_12_2024-05-06_7"] = "ABSENT"
	result, err = submitAttendance(store, 3, 100, entry)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)

	// still one row; the second submission won
	require.Len(t, store.records, 1)
	rec := store.records["12_3_2024-05-06_7"]
	assert.Equal(t, models.Absent, rec.Status)
	assert.Equal(t, int64(100), rec.MarkedBy)
}

func TestSubmitAttendanceInvalidStatusSkipped(t *testing.T) {
	store := newMemAttendanceStore(3)

	result, err := submitAttendance(store, 3, 99, map[string]string{
		"attendance_12_2024-05-06_7": "LATE",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Accepted)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, store.records)
}

func TestSubmitAttendanceUnknownSubject(t *testing.T) {
	store := newMemAttendanceStore()

	_, err := submitAttendance(store, 42, 99, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAttendanceStorageFailureCountedSeparately(t *testing.T) {
	store := newMemAttendanceStore(3)
	store.failFor[12] = errors.New("fk violation")

	result, err := submitAttendance(store, 3, 99, map[string]string{
		"attendance_12_2024-05-06_7": "PRESENT",
		"attendance_15_2024-05-06_7": "PRESENT",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, store.records, 1)
}
