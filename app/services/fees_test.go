package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func TestFeeStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		payable float64
		paid    float64
		want    models.FeeStatus
	}{
		{"nothing paid", 50000, 0, models.FeePending},
		{"partially paid", 50000, 20000, models.FeePartial},
		{"fully paid", 50000, 50000, models.FeePaid},
		{"overpaid still counts as paid", 50000, 60000, models.FeePaid},
		{"negative total stays pending", 50000, -5, models.FeePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeeStatusFor(tt.payable, tt.paid))
		})
	}
}

func TestStudentFeeRemainingAmount(t *testing.T) {
	fee := &models.StudentFee{PayableAmount: 50000, TotalPaid: 20000}
	assert.Equal(t, float64(30000), fee.RemainingAmount())

	// a payment equal to the payable amount leaves exactly zero
	fee.TotalPaid = 50000
	assert.Equal(t, float64(0), fee.RemainingAmount())
}

// memFeeStore mimics the get-or-create semantics of the student_fees
// table: one row per (student, fee structure), existing rows untouched.
type memFeeStore struct {
	students   []*models.Student
	structures []*models.FeeStructure
	fees       map[string]float64
}

func newMemFeeStore() *memFeeStore {
	return &memFeeStore{fees: make(map[string]float64)}
}

func (m *memFeeStore) GetAllStudents() ([]*models.Student, error) {
	return m.students, nil
}

func (m *memFeeStore) GetFeeStructures() ([]*models.FeeStructure, error) {
	return m.structures, nil
}

func (m *memFeeStore) GetOrCreateStudentFee(studentID, feeStructureID int64, payableAmount float64) (bool, error) {
	key := fmt.Sprintf("%d_%d", studentID, feeStructureID)
	if _, ok := m.fees[key]; ok {
		return false, nil
	}
	m.fees[key] = payableAmount
	return true, nil
}

func TestReconcileFeesCreatesOnlyMissingRows(t *testing.T) {
	store := newMemFeeStore()
	store.students = []*models.Student{
		{UserID: 10, CourseID: 1, SemesterID: 1},
		{UserID: 11, CourseID: 1, SemesterID: 1},
		{UserID: 12, CourseID: 1, SemesterID: 2}, // different semester, no match
	}
	store.structures = []*models.FeeStructure{
		{ID: 5, CourseID: 1, SemesterID: 1, TotalAmount: 50000},
	}
	// student 10 already got its row from the creation-time trigger
	store.fees["10_5"] = 50000

	created, err := reconcileFees(store)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, float64(50000), store.fees["11_5"])
	require.Len(t, store.fees, 2)
}

func TestReconcileFeesIsIdempotent(t *testing.T) {
	store := newMemFeeStore()
	store.students = []*models.Student{{UserID: 10, CourseID: 1, SemesterID: 1}}
	store.structures = []*models.FeeStructure{{ID: 5, CourseID: 1, SemesterID: 1, TotalAmount: 50000}}

	created, err := reconcileFees(store)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = reconcileFees(store)
	require.NoError(t, err)
	assert.Equal(t, 0, created, "a second pass must create nothing")
	require.Len(t, store.fees, 1)
}
