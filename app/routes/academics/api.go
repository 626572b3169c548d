package academics

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/config"
	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/apiutil"
	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

var validate = validator.New()

func CreateDepartmentAPI(c *fiber.Ctx) error {
	type CreateDepartmentRequest struct {
		DepartmentName string `json:"department_name" validate:"required,max=100"`
	}

	var req CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	dept := &models.Department{DepartmentName: req.DepartmentName}
	if err := database.CreateDepartment(config.GetDB(), dept); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Department already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create department"})
	}

	return c.Status(201).JSON(dept)
}

func GetDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.GetDepartments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}
	return c.JSON(fiber.Map{"departments": departments, "count": len(departments)})
}

// CreateCourseAPI creates a course and, through the engine, its full
// semester sequence. If semester generation fails nothing is created.
func CreateCourseAPI(c *fiber.Ctx) error {
	type CreateCourseRequest struct {
		DepartmentID  int64  `json:"department_id" validate:"required"`
		CourseName    string `json:"course_name" validate:"required,max=100"`
		DurationYears int    `json:"duration_years" validate:"required,min=1"`
	}

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	course := &models.Course{
		DepartmentID:  req.DepartmentID,
		CourseName:    req.CourseName,
		DurationYears: req.DurationYears,
	}
	semesters, err := services.CreateCourse(config.GetDB(), course)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"course": course, "semesters": semesters})
}

func GetCoursesAPI(c *fiber.Ctx) error {
	courses, err := database.GetCourses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(fiber.Map{"courses": courses, "count": len(courses)})
}

func GetCourseSemestersAPI(c *fiber.Ctx) error {
	courseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	semesters, err := database.GetSemestersByCourse(config.GetDB(), courseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch semesters"})
	}
	return c.JSON(fiber.Map{"semesters": semesters, "count": len(semesters)})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type CreateSubjectRequest struct {
		SemesterID  int64  `json:"semester_id" validate:"required"`
		SubjectCode string `json:"subject_code" validate:"required,max=20"`
		SubjectName string `json:"subject_name" validate:"required,max=100"`
		Credits     int    `json:"credits" validate:"required,min=1"`
	}

	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subject := &models.Subject{
		SemesterID:  req.SemesterID,
		SubjectCode: req.SubjectCode,
		SubjectName: req.SubjectName,
		Credits:     req.Credits,
	}
	if err := database.CreateSubject(config.GetDB(), subject); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Subject code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(201).JSON(subject)
}

func GetSemesterSubjectsAPI(c *fiber.Ctx) error {
	semesterID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid semester ID"})
	}

	subjects, err := database.GetSubjectsBySemester(config.GetDB(), semesterID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

// GetTeachersAPI lists teacher accounts, for the timetable editor and
// subject assignment dropdowns.
func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{"teachers": teachers, "count": len(teachers)})
}

func AssignTeacherAPI(c *fiber.Ctx) error {
	subjectID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject ID"})
	}

	type AssignTeacherRequest struct {
		TeacherID int64 `json:"teacher_id" validate:"required"`
	}
	var req AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.AssignTeacherToSubject(config.GetDB(), req.TeacherID, subjectID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign teacher"})
	}
	return c.JSON(fiber.Map{"message": "Teacher assigned successfully"})
}

func GetTeacherSubjectsAPI(c *fiber.Ctx) error {
	teacherID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	subjects, err := database.GetTeacherSubjects(config.GetDB(), teacherID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}
