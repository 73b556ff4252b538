package employee

import "time"

// Role enum
type Role string

const (
	RoleStoreEmployee Role = "STORE_EMPLOYEE"
	RoleReceptionist  Role = "RECEPTIONIST"
	RoleAcupuncturist Role = "ACUPUNCTURIST"
	RoleManager       Role = "MANAGER"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Employee - Staff member record. The rate fields are per-session and
// per-hour compensation rates; nil means the employee is not paid for
// that session type and calculators treat it as 0.
type Employee struct {
	ID              int
	Username        string
	PasswordHash    string
	FirstName       string
	LastName        string
	Gender          Gender
	Role            Role
	BodyRate        *float64
	FeetRate        *float64
	AcupunctureRate *float64
	PerHour         *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
