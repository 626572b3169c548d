package timetable

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/config"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/apiutil"
	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

// GetSlotCalendarAPI returns the fixed daily slot calendar and the
// schedulable days.
func GetSlotCalendarAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"days":  services.ListDays(),
		"slots": services.ListSlots(),
	})
}

func GetSemesterTimetableAPI(c *fiber.Ctx) error {
	semesterID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid semester ID"})
	}

	grid, err := services.GetTimetableGridForSemester(config.GetDB(), semesterID)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"grid": grid})
}

func GetTeacherTimetableAPI(c *fiber.Ctx) error {
	teacherID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	grid, err := services.GetTimetableGridForTeacher(config.GetDB(), teacherID)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"grid": grid})
}

// ReplaceSemesterTimetableAPI saves a full grid submission for one
// semester. This is a full replace, not a diff: existing entries are
// cleared and the submitted cells inserted in one transaction.
func ReplaceSemesterTimetableAPI(c *fiber.Ctx) error {
	semesterID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid semester ID"})
	}

	type ReplaceTimetableRequest struct {
		Cells []services.TimetableCell `json:"cells"`
	}
	var req ReplaceTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := services.ReplaceTimetableForSemester(config.GetDB(), semesterID, req.Cells); err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Timetable saved successfully"})
}
