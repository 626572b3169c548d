package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/structures", GetFeeStructuresAPI)
	api.Post("/structures", CreateFeeStructureAPI)
	api.Post("/payments", RecordPaymentAPI)
	api.Get("/:id/payments", GetPaymentsAPI)
	api.Post("/reconcile", ReconcileFeesAPI)
}
