package fees

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/config"
	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
	"github.com/rosemaria96/SmartCampusSystem/app/routes/apiutil"
	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

var validate = validator.New()

// CreateFeeStructureAPI creates the structure and materializes fees for
// every matching enrolled student.
func CreateFeeStructureAPI(c *fiber.Ctx) error {
	type CreateFeeStructureRequest struct {
		CourseID    int64   `json:"course_id" validate:"required"`
		SemesterID  int64   `json:"semester_id" validate:"required"`
		TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
		DueDate     string  `json:"due_date" validate:"required"`
	}

	var req CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date. Use YYYY-MM-DD"})
	}

	fs := &models.FeeStructure{
		CourseID:    req.CourseID,
		SemesterID:  req.SemesterID,
		TotalAmount: req.TotalAmount,
		DueDate:     dueDate,
	}
	warnings, err := services.CreateFeeStructure(config.GetDB(), fs)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}

	resp := fiber.Map{"fee_structure": fs}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	return c.Status(201).JSON(resp)
}

func GetFeeStructuresAPI(c *fiber.Ctx) error {
	structures, err := database.GetFeeStructures(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee structures"})
	}
	return c.JSON(fiber.Map{"fee_structures": structures, "count": len(structures)})
}

// RecordPaymentAPI records a simulated payment against a student fee.
func RecordPaymentAPI(c *fiber.Ctx) error {
	type RecordPaymentRequest struct {
		StudentFeeID  int64   `json:"student_fee_id" validate:"required"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	payment, err := services.RecordPayment(config.GetDB(), req.StudentFeeID, req.Amount, req.PaymentMethod)
	if err != nil {
		return apiutil.ServiceError(c, err)
	}
	return c.Status(201).JSON(payment)
}

func GetPaymentsAPI(c *fiber.Ctx) error {
	feeID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee ID"})
	}

	payments, err := database.GetPaymentsByStudentFee(config.GetDB(), feeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"payments": payments, "count": len(payments)})
}

// ReconcileFeesAPI runs the full fee backfill on demand.
func ReconcileFeesAPI(c *fiber.Ctx) error {
	created, err := services.ReconcileFees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Reconciliation failed"})
	}
	return c.JSON(fiber.Map{"created": created})
}
