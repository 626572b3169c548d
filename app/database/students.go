package database

import (
	"database/sql"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func CreateStudent(q DBTX, student *models.Student) error {
	query := `INSERT INTO students (user_id, course_id, semester_id, enrollment_number)
			  VALUES ($1, $2, $3, $4)`
	_, err := q.Exec(query, student.UserID, student.CourseID, student.SemesterID, student.EnrollmentNumber)
	return err
}

func GetStudentByUserID(db *sql.DB, userID int64) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT st.user_id, st.course_id, st.semester_id, st.enrollment_number, u.name
			  FROM students st
			  JOIN users u ON u.id = st.user_id
			  WHERE st.user_id = $1`
	err := db.QueryRow(query, userID).Scan(&s.UserID, &s.CourseID, &s.SemesterID, &s.EnrollmentNumber, &s.Name)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudentsBySemester returns all students enrolled in a semester,
// ordered by enrollment number. The attendance grid relies on this order.
func GetStudentsBySemester(db *sql.DB, semesterID int64) ([]*models.Student, error) {
	query := `SELECT st.user_id, st.course_id, st.semester_id, st.enrollment_number, u.name
			  FROM students st
			  JOIN users u ON u.id = st.user_id
			  WHERE st.semester_id = $1
			  ORDER BY st.enrollment_number`

	rows, err := db.Query(query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT st.user_id, st.course_id, st.semester_id, st.enrollment_number, u.name
			  FROM students st
			  JOIN users u ON u.id = st.user_id
			  ORDER BY st.enrollment_number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

func scanStudents(rows *sql.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.UserID, &s.CourseID, &s.SemesterID, &s.EnrollmentNumber, &s.Name); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
