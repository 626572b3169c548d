package timetable

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)

	api.Get("/slots", GetSlotCalendarAPI)
	api.Get("/semester/:id", GetSemesterTimetableAPI)
	api.Post("/semester/:id", ReplaceSemesterTimetableAPI)
	api.Get("/teacher/:id", GetTeacherTimetableAPI)
}
