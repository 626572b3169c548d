package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/grid", GetAttendanceGridAPI)
	api.Post("/submit", SubmitAttendanceAPI)
	api.Get("/rate/:studentId", GetAttendanceRateAPI)
}
