package database

import (
	"database/sql"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func CreateFeeStructure(db *sql.DB, fs *models.FeeStructure) error {
	query := `INSERT INTO fee_structure (course_id, semester_id, total_amount, due_date)
			  VALUES ($1, $2, $3, $4) RETURNING id`
	return db.QueryRow(query, fs.CourseID, fs.SemesterID, fs.TotalAmount, fs.DueDate).Scan(&fs.ID)
}

func GetFeeStructures(db *sql.DB) ([]*models.FeeStructure, error) {
	query := `SELECT id, course_id, semester_id, total_amount, due_date
			  FROM fee_structure ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeeStructures(rows)
}

// GetMatchingFeeStructures returns the structures that apply to a student
// enrolled in the given (course, semester) pair.
func GetMatchingFeeStructures(q DBTX, courseID, semesterID int64) ([]*models.FeeStructure, error) {
	query := `SELECT id, course_id, semester_id, total_amount, due_date
			  FROM fee_structure WHERE course_id = $1 AND semester_id = $2`

	rows, err := q.Query(query, courseID, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeeStructures(rows)
}

func scanFeeStructures(rows *sql.Rows) ([]*models.FeeStructure, error) {
	var structures []*models.FeeStructure
	for rows.Next() {
		fs := &models.FeeStructure{}
		if err := rows.Scan(&fs.ID, &fs.CourseID, &fs.SemesterID, &fs.TotalAmount, &fs.DueDate); err != nil {
			return nil, err
		}
		structures = append(structures, fs)
	}
	return structures, rows.Err()
}

// GetMatchingStudents returns students enrolled in the structure's
// (course, semester) pair.
func GetMatchingStudents(q DBTX, courseID, semesterID int64) ([]*models.Student, error) {
	query := `SELECT st.user_id, st.course_id, st.semester_id, st.enrollment_number, u.name
			  FROM students st
			  JOIN users u ON u.id = st.user_id
			  WHERE st.course_id = $1 AND st.semester_id = $2
			  ORDER BY st.enrollment_number`

	rows, err := q.Query(query, courseID, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetOrCreateStudentFee materializes the fee for a (student, structure)
// pair. Existing rows are never overwritten; it reports whether a new row
// was created. Racing triggers are safe: the loser's insert hits the
// uniqueness constraint and falls through to the existing row.
func GetOrCreateStudentFee(q DBTX, studentID, feeStructureID int64, payableAmount float64) (bool, error) {
	query := `INSERT INTO student_fees (student_id, fee_structure_id, payable_amount, status)
			  VALUES ($1, $2, $3, 'PENDING')
			  ON CONFLICT (student_id, fee_structure_id) DO NOTHING
			  RETURNING id`

	var id int64
	err := q.QueryRow(query, studentID, feeStructureID, payableAmount).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetStudentFees returns a student's fee rows with paid totals and
// course/semester context.
func GetStudentFees(db *sql.DB, studentID int64) ([]*models.StudentFee, error) {
	query := `SELECT sf.id, sf.student_id, sf.fee_structure_id, sf.payable_amount, sf.status,
					 COALESCE(SUM(p.amount_paid), 0), c.course_name, s.semester_number
			  FROM student_fees sf
			  JOIN fee_structure fs ON fs.id = sf.fee_structure_id
			  JOIN courses c ON c.id = fs.course_id
			  JOIN semesters s ON s.id = fs.semester_id
			  LEFT JOIN payments p ON p.student_fee_id = sf.id
			  WHERE sf.student_id = $1
			  GROUP BY sf.id, c.course_name, s.semester_number
			  ORDER BY sf.id`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.StudentFee
	for rows.Next() {
		f := &models.StudentFee{}
		err := rows.Scan(&f.ID, &f.StudentID, &f.FeeStructureID, &f.PayableAmount, &f.Status,
			&f.TotalPaid, &f.CourseName, &f.SemesterNumber)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func GetStudentFeeByID(db *sql.DB, feeID int64) (*models.StudentFee, error) {
	f := &models.StudentFee{}
	query := `SELECT sf.id, sf.student_id, sf.fee_structure_id, sf.payable_amount, sf.status,
					 COALESCE(SUM(p.amount_paid), 0)
			  FROM student_fees sf
			  LEFT JOIN payments p ON p.student_fee_id = sf.id
			  WHERE sf.id = $1
			  GROUP BY sf.id`

	err := db.QueryRow(query, feeID).Scan(&f.ID, &f.StudentID, &f.FeeStructureID,
		&f.PayableAmount, &f.Status, &f.TotalPaid)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func UpdateStudentFeeStatus(q DBTX, feeID int64, status models.FeeStatus) error {
	_, err := q.Exec(`UPDATE student_fees SET status = $1 WHERE id = $2`, status, feeID)
	return err
}

func CreatePayment(q DBTX, payment *models.Payment) error {
	query := `INSERT INTO payments (student_fee_id, amount_paid, payment_method, transaction_reference)
			  VALUES ($1, $2, $3, $4) RETURNING id, payment_date`
	return q.QueryRow(query, payment.StudentFeeID, payment.AmountPaid,
		payment.PaymentMethod, payment.TransactionReference).Scan(&payment.ID, &payment.PaymentDate)
}

func GetPaymentsByStudentFee(db *sql.DB, feeID int64) ([]*models.Payment, error) {
	query := `SELECT id, student_fee_id, amount_paid, payment_method, transaction_reference, payment_date
			  FROM payments WHERE student_fee_id = $1 ORDER BY payment_date`

	rows, err := db.Query(query, feeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.StudentFeeID, &p.AmountPaid, &p.PaymentMethod, &p.TransactionReference, &p.PaymentDate); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
