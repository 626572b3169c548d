package models

import "time"

// FeeStructure defines the amount due for one (course, semester) pair.
type FeeStructure struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	SemesterID  int64     `json:"semester_id" db:"semester_id"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
}

// StudentFee is the obligation a fee structure creates for one enrolled
// student. The payable amount is copied from the structure at creation
// time and is not rewritten afterwards.
type StudentFee struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"student_id" db:"student_id"`
	FeeStructureID int64     `json:"fee_structure_id" db:"fee_structure_id"`
	PayableAmount  float64   `json:"payable_amount" db:"payable_amount"`
	Status         FeeStatus `json:"status" db:"status"`
	TotalPaid      float64   `json:"total_paid"`
	CourseName     string    `json:"course_name,omitempty"`
	SemesterNumber int       `json:"semester_number,omitempty"`
}

// RemainingAmount returns how much of the fee is still unpaid.
func (f *StudentFee) RemainingAmount() float64 {
	return f.PayableAmount - f.TotalPaid
}

// Payment is a simulated payment transaction against a student fee.
type Payment struct {
	ID                   int64     `json:"id" db:"id"`
	StudentFeeID         int64     `json:"student_fee_id" db:"student_fee_id"`
	AmountPaid           float64   `json:"amount_paid" db:"amount_paid"`
	PaymentMethod        string    `json:"payment_method" db:"payment_method"`
	TransactionReference string    `json:"transaction_reference" db:"transaction_reference"`
	PaymentDate          time.Time `json:"payment_date" db:"payment_date"`
}
