package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rosemaria96/SmartCampusSystem/app/config"
	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/academics"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/attendance"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/auth"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/fees"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/students"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/timetable"
	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

func main() {
	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		AppName: "Smart Campus System",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	academics.SetupAcademicsRoutes(app)
	students.SetupStudentRoutes(app)
	timetable.SetupTimetableRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	fees.SetupFeesRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
