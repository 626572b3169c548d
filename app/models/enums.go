package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "PRESENT"
	Absent  AttendanceStatus = "ABSENT"
)

// IsValid reports whether the status is one of the accepted values.
func (s AttendanceStatus) IsValid() bool {
	return s == Present || s == Absent
}

// FeeStatus defines the payment status of a student fee.
type FeeStatus string

const (
	FeePending FeeStatus = "PENDING"
	FeePartial FeeStatus = "PARTIAL"
	FeePaid    FeeStatus = "PAID"
)

// UserRole defines the role assigned to a user account.
type UserRole string

const (
	AdminRole   UserRole = "ADMIN"
	TeacherRole UserRole = "TEACHER"
	StudentRole UserRole = "STUDENT"
)

// DayOfWeek defines the days on which classes can be scheduled.
// Sunday is intentionally absent: the academic week runs Monday to Saturday.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// ValidateDayOfWeek validates a day-of-week value.
func ValidateDayOfWeek(day string) bool {
	switch DayOfWeek(day) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}
