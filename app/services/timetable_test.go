package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func entry(id int64, day models.DayOfWeek, start string) *models.TimetableEntry {
	return &models.TimetableEntry{
		ID:        id,
		DayOfWeek: day,
		StartTime: start,
		SubjectID: 1,
		TeacherID: 1,
	}
}

func TestBuildTimetableGrid(t *testing.T) {
	entries := []*models.TimetableEntry{
		entry(10, models.Monday, "09:00"),
		entry(11, models.Wednesday, "14:00"),
	}

	grid := BuildTimetableGrid(entries)
	require.Len(t, grid, 6)

	monday := grid[0]
	assert.Equal(t, models.Monday, monday.Day)
	require.Len(t, monday.Cells, 8)

	// 09:00 holds the scheduled entry
	require.NotNil(t, monday.Cells[0].Entry)
	assert.Equal(t, int64(10), monday.Cells[0].Entry.ID)

	// 10:30 is the fixed break placeholder, never populated
	assert.True(t, monday.Cells[2].Slot.IsBreak)
	assert.Nil(t, monday.Cells[2].Entry)

	// free class slot stays empty
	assert.Nil(t, monday.Cells[1].Entry)

	wednesday := grid[2]
	require.NotNil(t, wednesday.Cells[6].Entry)
	assert.Equal(t, int64(11), wednesday.Cells[6].Entry.ID)
}

func TestBuildTimetableGridEmpty(t *testing.T) {
	grid := BuildTimetableGrid(nil)
	require.Len(t, grid, 6)
	for _, day := range grid {
		require.Len(t, day.Cells, 8)
		for _, cell := range day.Cells {
			assert.Nil(t, cell.Entry)
		}
	}
}

func TestBuildTimetableGridDuplicateSlot(t *testing.T) {
	// Two entries collide on (MONDAY, 09:00); the lowest id must win
	// regardless of input order.
	entries := []*models.TimetableEntry{
		entry(7, models.Monday, "09:00"),
		entry(3, models.Monday, "09:00"),
		entry(5, models.Monday, "09:00"),
	}

	grid := BuildTimetableGrid(entries)
	require.NotNil(t, grid[0].Cells[0].Entry)
	assert.Equal(t, int64(3), grid[0].Cells[0].Entry.ID)
}

func TestEntriesFromSubmission(t *testing.T) {
	cells := []TimetableCell{
		{Day: "MONDAY", StartTime: "09:00", SubjectID: 1, TeacherID: 2},
		{Day: "MONDAY", StartTime: "10:00", SubjectID: 3},             // no teacher: skipped
		{Day: "TUESDAY", StartTime: "11:00", TeacherID: 2},            // no subject: skipped
		{Day: "TUESDAY", StartTime: "10:30", SubjectID: 1, TeacherID: 2}, // break slot: skipped
		{Day: "FUNDAY", StartTime: "09:00", SubjectID: 1, TeacherID: 2},  // bad day: skipped
		{Day: "SATURDAY", StartTime: "15:00", SubjectID: 4, TeacherID: 5},
	}

	entries := EntriesFromSubmission(42, cells)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(42), entries[0].SemesterID)
	assert.Equal(t, models.Monday, entries[0].DayOfWeek)
	assert.Equal(t, "09:00", entries[0].StartTime)
	assert.Equal(t, "10:00", entries[0].EndTime)

	assert.Equal(t, models.Saturday, entries[1].DayOfWeek)
	assert.Equal(t, "16:00", entries[1].EndTime)
}

func TestEntriesFromSubmissionEmpty(t *testing.T) {
	assert.Empty(t, EntriesFromSubmission(1, nil))
}
