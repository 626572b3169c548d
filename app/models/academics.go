package models

// Department represents an academic department.
type Department struct {
	ID             int64  `json:"id" db:"id"`
	DepartmentName string `json:"department_name" db:"department_name"`
}

// Course represents a course offered by a department. The course duration
// determines how many semesters it has (two per year).
type Course struct {
	ID             int64  `json:"id" db:"id"`
	DepartmentID   int64  `json:"department_id" db:"department_id"`
	CourseName     string `json:"course_name" db:"course_name"`
	DurationYears  int    `json:"duration_years" db:"duration_years"`
	DepartmentName string `json:"department_name,omitempty"`
}

// TotalSemesters returns the number of semesters the course runs for.
func (c *Course) TotalSemesters() int {
	return c.DurationYears * 2
}

// Semester represents one semester within a course. Semesters are created
// in bulk when the course is created and are never regenerated.
type Semester struct {
	ID             int64  `json:"id" db:"id"`
	CourseID       int64  `json:"course_id" db:"course_id"`
	SemesterNumber int    `json:"semester_number" db:"semester_number"`
	CourseName     string `json:"course_name,omitempty"`
}

// Subject represents a subject taught in a semester.
type Subject struct {
	ID          int64  `json:"id" db:"id"`
	SemesterID  int64  `json:"semester_id" db:"semester_id"`
	SubjectCode string `json:"subject_code" db:"subject_code"`
	SubjectName string `json:"subject_name" db:"subject_name"`
	Credits     int    `json:"credits" db:"credits"`
}

// TeacherSubjectAssignment links a teacher to a subject they teach.
type TeacherSubjectAssignment struct {
	ID        int64 `json:"id" db:"id"`
	TeacherID int64 `json:"teacher_id" db:"teacher_id"`
	SubjectID int64 `json:"subject_id" db:"subject_id"`
}

// Student represents a student profile. The ID is the owning user's ID.
type Student struct {
	UserID           int64  `json:"user_id" db:"user_id"`
	CourseID         int64  `json:"course_id" db:"course_id"`
	SemesterID       int64  `json:"semester_id" db:"semester_id"`
	EnrollmentNumber string `json:"enrollment_number" db:"enrollment_number"`
	Name             string `json:"name,omitempty"`
}
