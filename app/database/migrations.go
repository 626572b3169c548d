package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every
// statement is idempotent so the function is safe to run on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			name VARCHAR(100) NOT NULL,
			role VARCHAR(10) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS departments (
			id SERIAL PRIMARY KEY,
			department_name VARCHAR(100) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id SERIAL PRIMARY KEY,
			department_id INTEGER NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
			course_name VARCHAR(100) NOT NULL,
			duration_years INTEGER NOT NULL CHECK (duration_years >= 1)
		)`,
		`CREATE TABLE IF NOT EXISTS semesters (
			id SERIAL PRIMARY KEY,
			course_id INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			semester_number INTEGER NOT NULL,
			UNIQUE (course_id, semester_number)
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id SERIAL PRIMARY KEY,
			semester_id INTEGER NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
			subject_code VARCHAR(20) NOT NULL UNIQUE,
			subject_name VARCHAR(100) NOT NULL,
			credits INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS teacher_subject_assignment (
			id SERIAL PRIMARY KEY,
			teacher_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			subject_id INTEGER NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			UNIQUE (teacher_id, subject_id)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			course_id INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			semester_id INTEGER NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
			enrollment_number VARCHAR(50) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS timetable (
			id SERIAL PRIMARY KEY,
			subject_id INTEGER NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			teacher_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			semester_id INTEGER NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
			day_of_week VARCHAR(10) NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(user_id) ON DELETE CASCADE,
			subject_id INTEGER NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			marked_by INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			timetable_slot_id INTEGER REFERENCES timetable(id) ON DELETE SET NULL,
			UNIQUE NULLS NOT DISTINCT (student_id, subject_id, date, timetable_slot_id)
		)`,
		`CREATE TABLE IF NOT EXISTS fee_structure (
			id SERIAL PRIMARY KEY,
			course_id INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			semester_id INTEGER NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
			total_amount NUMERIC(10,2) NOT NULL,
			due_date DATE NOT NULL,
			UNIQUE (course_id, semester_id)
		)`,
		`CREATE TABLE IF NOT EXISTS student_fees (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(user_id) ON DELETE CASCADE,
			fee_structure_id INTEGER NOT NULL REFERENCES fee_structure(id) ON DELETE CASCADE,
			payable_amount NUMERIC(10,2) NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'PENDING',
			UNIQUE (student_id, fee_structure_id)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			student_fee_id INTEGER NOT NULL REFERENCES student_fees(id) ON DELETE CASCADE,
			amount_paid NUMERIC(10,2) NOT NULL,
			payment_method VARCHAR(50) NOT NULL,
			transaction_reference VARCHAR(100) NOT NULL UNIQUE,
			payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_timetable_semester ON timetable(semester_id)`,
		`CREATE INDEX IF NOT EXISTS idx_timetable_teacher ON timetable(teacher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_subject_date ON attendance(subject_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_student_fees_student ON student_fees(student_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
