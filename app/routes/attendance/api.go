package attendance

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/config"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/apiutil"
	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

var validate = validator.New()

// GetAttendanceGridAPI returns the weekly attendance-taking grid for a
// subject and semester. The week defaults to the current one; pass
// ?date=YYYY-MM-DD to view another week.
func GetAttendanceGridAPI(c *fiber.Ctx) error {
	subjectID, err := strconv.ParseInt(c.Query("subject"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid or missing subject"})
	}
	semesterID, err := strconv.ParseInt(c.Query("semester"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid or missing semester"})
	}

	refDate := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		refDate, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
	}

	grid, err := services.GetWeeklyAttendanceGrid(config.GetDB(), subjectID, semesterID, refDate)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.JSON(grid)
}

// SubmitAttendanceAPI accepts a batch of attendance entries keyed by
// attendance_{student}_{date}_{slot}. Well-formed entries are upserted;
// malformed ones are skipped and counted, never failing the batch.
func SubmitAttendanceAPI(c *fiber.Ctx) error {
	type SubmitAttendanceRequest struct {
		SubjectID int64             `json:"subject_id" validate:"required"`
		Entries   map[string]string `json:"entries" validate:"required"`
	}

	var req SubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := c.Locals("user").(*models.User)

	result, err := services.SubmitAttendance(config.GetDB(), req.SubjectID, user.ID, req.Entries)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.JSON(result)
}

// GetAttendanceRateAPI returns a student's attendance percentage, overall
// or scoped to ?subject=.
func GetAttendanceRateAPI(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(c.Params("studentId"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var subjectID int64
	if s := c.Query("subject"); s != "" {
		subjectID, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid subject"})
		}
	}

	rate, err := services.GetAttendanceRate(config.GetDB(), studentID, subjectID)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"student_id": studentID, "rate": rate})
}
