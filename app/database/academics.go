package database

import (
	"database/sql"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func CreateDepartment(db *sql.DB, dept *models.Department) error {
	query := `INSERT INTO departments (department_name) VALUES ($1) RETURNING id`
	return db.QueryRow(query, dept.DepartmentName).Scan(&dept.ID)
}

func GetDepartments(db *sql.DB) ([]*models.Department, error) {
	rows, err := db.Query(`SELECT id, department_name FROM departments ORDER BY department_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.DepartmentName); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// CreateCourse inserts a course. It accepts a DBTX so course creation and
// semester generation can share one transaction.
func CreateCourse(q DBTX, course *models.Course) error {
	query := `INSERT INTO courses (department_id, course_name, duration_years)
			  VALUES ($1, $2, $3) RETURNING id`
	return q.QueryRow(query, course.DepartmentID, course.CourseName, course.DurationYears).
		Scan(&course.ID)
}

func GetCourses(db *sql.DB) ([]*models.Course, error) {
	query := `SELECT c.id, c.department_id, c.course_name, c.duration_years, d.department_name
			  FROM courses c
			  JOIN departments d ON d.id = c.department_id
			  ORDER BY c.course_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(&c.ID, &c.DepartmentID, &c.CourseName, &c.DurationYears, &c.DepartmentName); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// CreateSemester inserts one semester row. The (course_id, semester_number)
// uniqueness constraint rejects regeneration attempts.
func CreateSemester(q DBTX, sem *models.Semester) error {
	query := `INSERT INTO semesters (course_id, semester_number) VALUES ($1, $2) RETURNING id`
	return q.QueryRow(query, sem.CourseID, sem.SemesterNumber).Scan(&sem.ID)
}

func GetSemestersByCourse(db *sql.DB, courseID int64) ([]*models.Semester, error) {
	query := `SELECT id, course_id, semester_number FROM semesters
			  WHERE course_id = $1 ORDER BY semester_number`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		s := &models.Semester{}
		if err := rows.Scan(&s.ID, &s.CourseID, &s.SemesterNumber); err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	return semesters, rows.Err()
}

func GetSemesterByID(db *sql.DB, semesterID int64) (*models.Semester, error) {
	s := &models.Semester{}
	query := `SELECT s.id, s.course_id, s.semester_number, c.course_name
			  FROM semesters s
			  JOIN courses c ON c.id = s.course_id
			  WHERE s.id = $1`
	err := db.QueryRow(query, semesterID).Scan(&s.ID, &s.CourseID, &s.SemesterNumber, &s.CourseName)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (semester_id, subject_code, subject_name, credits)
			  VALUES ($1, $2, $3, $4) RETURNING id`
	return db.QueryRow(query, subject.SemesterID, subject.SubjectCode, subject.SubjectName, subject.Credits).
		Scan(&subject.ID)
}

func GetSubjectByID(db *sql.DB, subjectID int64) (*models.Subject, error) {
	s := &models.Subject{}
	query := `SELECT id, semester_id, subject_code, subject_name, credits FROM subjects WHERE id = $1`
	err := db.QueryRow(query, subjectID).Scan(&s.ID, &s.SemesterID, &s.SubjectCode, &s.SubjectName, &s.Credits)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetSubjectsBySemester(db *sql.DB, semesterID int64) ([]*models.Subject, error) {
	query := `SELECT id, semester_id, subject_code, subject_name, credits
			  FROM subjects WHERE semester_id = $1 ORDER BY subject_code`

	rows, err := db.Query(query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.SemesterID, &s.SubjectCode, &s.SubjectName, &s.Credits); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// AssignTeacherToSubject is idempotent: re-assigning an existing pair is a no-op.
func AssignTeacherToSubject(db *sql.DB, teacherID, subjectID int64) error {
	query := `INSERT INTO teacher_subject_assignment (teacher_id, subject_id)
			  VALUES ($1, $2)
			  ON CONFLICT (teacher_id, subject_id) DO NOTHING`
	_, err := db.Exec(query, teacherID, subjectID)
	return err
}

// GetTeacherSubjects returns the subjects a teacher can take attendance
// for: explicit assignments plus any subject they appear against in the
// timetable.
func GetTeacherSubjects(db *sql.DB, teacherID int64) ([]*models.Subject, error) {
	query := `SELECT DISTINCT s.id, s.semester_id, s.subject_code, s.subject_name, s.credits
			  FROM subjects s
			  LEFT JOIN teacher_subject_assignment tsa ON tsa.subject_id = s.id AND tsa.teacher_id = $1
			  LEFT JOIN timetable t ON t.subject_id = s.id AND t.teacher_id = $1
			  WHERE tsa.id IS NOT NULL OR t.id IS NOT NULL
			  ORDER BY s.subject_code`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.SemesterID, &s.SubjectCode, &s.SubjectName, &s.Credits); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}
