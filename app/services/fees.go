package services

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/rosemaria96/SmartCampusSystem/app/database"
	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

// assignFeesToStudentHandler materializes StudentFee rows for every fee
// structure matching a newly created student. Best-effort: a failure here
// must never break student creation, so the handler is non-critical and
// the reconciliation job repairs any gap later.
func assignFeesToStudentHandler(q database.DBTX, e Event) error {
	student, ok := e.Payload.(*models.Student)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}

	structures, err := database.GetMatchingFeeStructures(q, student.CourseID, student.SemesterID)
	if err != nil {
		return err
	}
	for _, fs := range structures {
		if _, err := database.GetOrCreateStudentFee(q, student.UserID, fs.ID, fs.TotalAmount); err != nil {
			return err
		}
	}
	return nil
}

// assignFeesForStructureHandler is the reverse trigger: a new fee
// structure is applied to every already-enrolled matching student.
func assignFeesForStructureHandler(q database.DBTX, e Event) error {
	fs, ok := e.Payload.(*models.FeeStructure)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}

	students, err := database.GetMatchingStudents(q, fs.CourseID, fs.SemesterID)
	if err != nil {
		return err
	}
	for _, student := range students {
		if _, err := database.GetOrCreateStudentFee(q, student.UserID, fs.ID, fs.TotalAmount); err != nil {
			return err
		}
	}
	return nil
}

// CreateStudent creates the user account and student profile in one
// transaction, then triggers fee materialization. Fee-sync warnings are
// returned for logging but never fail the creation.
func CreateStudent(db *sql.DB, user *models.User, student *models.Student) ([]string, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	user.Role = models.StudentRole
	if err := database.CreateUser(tx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, &ConflictError{Message: "email already registered"}
		}
		return nil, err
	}
	student.UserID = user.ID
	if err := database.CreateStudent(tx, student); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, &ConflictError{Message: "enrollment number already exists"}
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	warnings, _ := dispatcher.Emit(db, Event{Name: StudentCreated, Payload: student})
	return warnings, nil
}

// CreateFeeStructure creates the structure, then materializes fees for
// matching students already on the books.
func CreateFeeStructure(db *sql.DB, fs *models.FeeStructure) ([]string, error) {
	if fs.TotalAmount <= 0 {
		return nil, &ValidationError{Field: "total_amount", Message: "must be positive"}
	}

	if err := database.CreateFeeStructure(db, fs); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, &ConflictError{Message: "fee structure already exists for this course and semester"}
		}
		return nil, err
	}

	warnings, _ := dispatcher.Emit(db, Event{Name: FeeStructureCreated, Payload: fs})
	return warnings, nil
}

// FeeStore is the storage surface reconciliation needs. The SQL layer
// satisfies it in production; tests use an in-memory double.
type FeeStore interface {
	GetAllStudents() ([]*models.Student, error)
	GetFeeStructures() ([]*models.FeeStructure, error)
	GetOrCreateStudentFee(studentID, feeStructureID int64, payableAmount float64) (bool, error)
}

type sqlFeeStore struct {
	db *sql.DB
}

func (s sqlFeeStore) GetAllStudents() ([]*models.Student, error) {
	return database.GetAllStudents(s.db)
}

func (s sqlFeeStore) GetFeeStructures() ([]*models.FeeStructure, error) {
	return database.GetFeeStructures(s.db)
}

func (s sqlFeeStore) GetOrCreateStudentFee(studentID, feeStructureID int64, payableAmount float64) (bool, error) {
	return database.GetOrCreateStudentFee(s.db, studentID, feeStructureID, payableAmount)
}

// ReconcileFees scans the full Student × FeeStructure cross product and
// materializes every missing StudentFee row. Existing rows are untouched,
// so running it twice creates nothing the second time.
func ReconcileFees(db *sql.DB) (int, error) {
	return reconcileFees(sqlFeeStore{db})
}

func reconcileFees(store FeeStore) (int, error) {
	students, err := store.GetAllStudents()
	if err != nil {
		return 0, err
	}
	structures, err := store.GetFeeStructures()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, student := range students {
		for _, fs := range structures {
			if fs.CourseID != student.CourseID || fs.SemesterID != student.SemesterID {
				continue
			}
			inserted, err := store.GetOrCreateStudentFee(student.UserID, fs.ID, fs.TotalAmount)
			if err != nil {
				return created, err
			}
			if inserted {
				created++
			}
		}
	}

	log.Printf("Fee reconciliation created %d student fee records", created)
	return created, nil
}

// FeeStatusFor derives the fee status from the payable amount and the sum
// of payments so far.
func FeeStatusFor(payable, totalPaid float64) models.FeeStatus {
	switch {
	case totalPaid <= 0:
		return models.FeePending
	case totalPaid >= payable:
		return models.FeePaid
	default:
		return models.FeePartial
	}
}

// RecordPayment records a simulated payment against a student fee and
// recomputes the fee status from the new payment total. No gateway is
// involved; the transaction reference is generated here.
func RecordPayment(db *sql.DB, feeID int64, amount float64, method string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "must be positive"}
	}

	fee, err := database.GetStudentFeeByID(db, feeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if amount > fee.RemainingAmount() {
		return nil, &ValidationError{Field: "amount", Message: "exceeds remaining amount"}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	payment := &models.Payment{
		StudentFeeID:         feeID,
		AmountPaid:           amount,
		PaymentMethod:        method,
		TransactionReference: "TXN-" + uuid.NewString(),
	}
	if err := database.CreatePayment(tx, payment); err != nil {
		return nil, err
	}

	status := FeeStatusFor(fee.PayableAmount, fee.TotalPaid+amount)
	if err := database.UpdateStudentFeeStatus(tx, feeID, status); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return payment, nil
}
