package services

import (
	"database/sql"
	"log"

	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

// GridCell is one slot on one day. Break slots carry no entry ever;
// class slots carry the scheduled entry or nil when the slot is free.
type GridCell struct {
	Slot  Slot                   `json:"slot"`
	Entry *models.TimetableEntry `json:"entry"`
}

// GridDay is one day of the timetable grid, cells in calendar order.
type GridDay struct {
	Day   models.DayOfWeek `json:"day"`
	Cells []GridCell       `json:"cells"`
}

// matchEntry returns the entry scheduled for (day, start) out of the full
// entry set. When duplicates collide on the same slot the lowest id wins,
// so the grid is deterministic regardless of storage order.
func matchEntry(entries []*models.TimetableEntry, day models.DayOfWeek, start string) *models.TimetableEntry {
	var match *models.TimetableEntry
	for _, e := range entries {
		if e.DayOfWeek != day || e.StartTime != start {
			continue
		}
		if match == nil || e.ID < match.ID {
			match = e
		}
	}
	return match
}

// BuildTimetableGrid lays the given entries (already filtered to one
// semester or one teacher) onto the fixed slot calendar. Day-major order:
// Monday..Saturday, each with every slot in daily sequence.
func BuildTimetableGrid(entries []*models.TimetableEntry) []GridDay {
	grid := make([]GridDay, 0, len(weekDays))
	for _, day := range weekDays {
		gd := GridDay{Day: day, Cells: make([]GridCell, 0, len(daySlots))}
		for _, slot := range daySlots {
			cell := GridCell{Slot: slot}
			if !slot.IsBreak {
				cell.Entry = matchEntry(entries, day, slot.Start)
			}
			gd.Cells = append(gd.Cells, cell)
		}
		grid = append(grid, gd)
	}
	return grid
}

// GetTimetableGridForSemester builds the semester's weekly grid.
func GetTimetableGridForSemester(db *sql.DB, semesterID int64) ([]GridDay, error) {
	if _, err := database.GetSemesterByID(db, semesterID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	entries, err := database.GetTimetableBySemester(db, semesterID)
	if err != nil {
		return nil, err
	}
	return BuildTimetableGrid(entries), nil
}

// GetTimetableGridForTeacher builds a teacher's weekly grid across all
// semesters they teach.
func GetTimetableGridForTeacher(db *sql.DB, teacherID int64) ([]GridDay, error) {
	entries, err := database.GetTimetableByTeacher(db, teacherID)
	if err != nil {
		return nil, err
	}
	return BuildTimetableGrid(entries), nil
}

// TimetableCell is one submitted cell of the admin grid editor.
type TimetableCell struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	SubjectID int64  `json:"subject_id"`
	TeacherID int64  `json:"teacher_id"`
}

// EntriesFromSubmission converts a full grid submission into the entries
// to persist. Cells without both a subject and a teacher are skipped, as
// are break slots and cells that name no known slot or day.
func EntriesFromSubmission(semesterID int64, cells []TimetableCell) []*models.TimetableEntry {
	slotEnds := make(map[string]string, len(daySlots))
	for _, s := range daySlots {
		if !s.IsBreak {
			slotEnds[s.Start] = s.End
		}
	}

	var entries []*models.TimetableEntry
	for _, cell := range cells {
		if cell.SubjectID == 0 || cell.TeacherID == 0 {
			continue
		}
		if !models.ValidateDayOfWeek(cell.Day) {
			continue
		}
		end, ok := slotEnds[cell.StartTime]
		if !ok {
			continue
		}
		entries = append(entries, &models.TimetableEntry{
			SubjectID:  cell.SubjectID,
			TeacherID:  cell.TeacherID,
			SemesterID: semesterID,
			DayOfWeek:  models.DayOfWeek(cell.Day),
			StartTime:  cell.StartTime,
			EndTime:    end,
		})
	}
	return entries
}

// ReplaceTimetableForSemester replaces the semester's entire timetable
// with the submitted grid: delete everything, insert the valid cells,
// all inside one transaction so a failure leaves the old grid intact.
func ReplaceTimetableForSemester(db *sql.DB, semesterID int64, cells []TimetableCell) error {
	if _, err := database.GetSemesterByID(db, semesterID); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	entries := EntriesFromSubmission(semesterID, cells)

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := database.DeleteTimetableBySemester(tx, semesterID); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := database.CreateTimetableEntry(tx, entry); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("Replaced timetable for semester %d: %d entries", semesterID, len(entries))
	return nil
}
