package students

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/config"
	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/apiutil"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/auth"
	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

var validate = validator.New()

// CreateStudentAPI creates the user account and student profile. Fee
// materialization runs as a side effect; its warnings are reported but
// never fail the request.
func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		Email            string `json:"email" validate:"required,email"`
		Password         string `json:"password" validate:"required,min=8"`
		Name             string `json:"name" validate:"required,max=100"`
		CourseID         int64  `json:"course_id" validate:"required"`
		SemesterID       int64  `json:"semester_id" validate:"required"`
		EnrollmentNumber string `json:"enrollment_number" validate:"required,max=50"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{Email: req.Email, Password: hashed, Name: req.Name}
	student := &models.Student{
		CourseID:         req.CourseID,
		SemesterID:       req.SemesterID,
		EnrollmentNumber: req.EnrollmentNumber,
	}

	warnings, err := services.CreateStudent(config.GetDB(), user, student)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}

	resp := fiber.Map{"student": student}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	return c.Status(201).JSON(resp)
}

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"students": students, "count": len(students)})
}

func GetStudentAPI(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	student, err := database.GetStudentByUserID(config.GetDB(), studentID)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.JSON(student)
}

// GetStudentAttendanceAPI returns the student's overall attendance rate
// and per-subject breakdown.
func GetStudentAttendanceAPI(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	rate, err := services.GetAttendanceRate(config.GetDB(), studentID, 0)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	summary, err := services.GetStudentAttendanceSummary(config.GetDB(), studentID)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}

	return c.JSON(fiber.Map{"attendance_rate": rate, "subjects": summary})
}

func GetStudentFeesAPI(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	fees, err := database.GetStudentFees(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}

	type feeResponse struct {
		*models.StudentFee
		RemainingAmount float64 `json:"remaining_amount"`
	}
	resp := make([]feeResponse, 0, len(fees))
	for _, f := range fees {
		resp = append(resp, feeResponse{StudentFee: f, RemainingAmount: f.RemainingAmount()})
	}

	return c.JSON(fiber.Map{"fees": resp, "count": len(resp)})
}
