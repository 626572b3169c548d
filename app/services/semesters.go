package services

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

// SemesterNumbers returns the semester sequence for a course duration:
// two semesters per year, numbered from 1.
func SemesterNumbers(durationYears int) []int {
	if durationYears < 1 {
		return nil
	}
	numbers := make([]int, 0, durationYears*2)
	for i := 1; i <= durationYears*2; i++ {
		numbers = append(numbers, i)
	}
	return numbers
}

// generateSemestersHandler materializes the semester rows for a newly
// created course. It runs inside the course-creation transaction and is
// critical: if it fails, the course must not be created either. It is not
// idempotent; the uniqueness constraint on (course, number) rejects a
// second invocation.
func generateSemestersHandler(q database.DBTX, e Event) error {
	course, ok := e.Payload.(*models.Course)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}
	if course.DurationYears < 1 {
		return &ValidationError{Field: "duration_years", Message: "must be at least 1"}
	}

	for _, n := range SemesterNumbers(course.DurationYears) {
		sem := &models.Semester{CourseID: course.ID, SemesterNumber: n}
		if err := database.CreateSemester(q, sem); err != nil {
			return fmt.Errorf("create semester %d: %w", n, err)
		}
	}
	return nil
}

// CreateCourse creates a course and its full semester sequence in one
// transaction. Semester generation failing fails the whole operation.
func CreateCourse(db *sql.DB, course *models.Course) ([]*models.Semester, error) {
	if course.DurationYears < 1 {
		return nil, &ValidationError{Field: "duration_years", Message: "must be at least 1"}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := database.CreateCourse(tx, course); err != nil {
		return nil, err
	}
	if _, err := dispatcher.Emit(tx, Event{Name: CourseCreated, Payload: course}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Printf("Created course %d with %d semesters", course.ID, course.TotalSemesters())
	return database.GetSemestersByCourse(db, course.ID)
}
