package schedule

import (
	"time"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/employee"
)

// TipMethod enum
type TipMethod string

const (
	TipMethodCash    TipMethod = "CASH"
	TipMethodMachine TipMethod = "MACHINE"
	TipMethodHalf    TipMethod = "HALF"
)

// Service - Catalog entry for a bookable treatment. Body, Feet and
// Acupuncture are the session units one booking of this service counts
// for; a service counts toward at most these three unit types.
type Service struct {
	ID           int
	Name         string
	Shorthand    string
	Time         int // nominal duration in minutes
	Money        float64
	Body         int
	Feet         int
	Acupuncture  int
	BedsRequired int
	Color        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type Customer struct {
	ID          int
	Name        *string
	PhoneNumber *string
}

// Reservation - A booked appointment. ReservedDate is the actual start
// timestamp in the store's operating time zone. Payment amounts are nil
// when that instrument was not used; amounts are never negative when
// present.
type Reservation struct {
	ID                int
	EmployeeID        int
	Date              time.Time
	ReservedDate      time.Time
	Service           Service
	Time              *int // duration override, minutes
	BedsRequired      *int
	Customer          *Customer
	RequestedGender   *employee.Gender
	RequestedEmployee bool
	Cash              *float64
	Machine           *float64
	Vip               *float64
	GiftCard          *float64
	Insurance         *float64
	CashOut           *float64
	Tips              *float64
	TipMethod         *TipMethod
	Message           *string
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedBy         string
	UpdatedAt         time.Time
}

// EffectiveDuration returns the override duration when set, otherwise
// the service's nominal duration, in minutes.
func (r Reservation) EffectiveDuration() int {
	if r.Time != nil {
		return *r.Time
	}
	return r.Service.Time
}

// EffectiveBeds returns the override beds-required when set, otherwise
// the service's nominal beds-required.
func (r Reservation) EffectiveBeds() int {
	if r.BedsRequired != nil {
		return *r.BedsRequired
	}
	return r.Service.BedsRequired
}

// SessionUnits reports the total body+feet+acupuncture units this
// reservation counts for.
func (r Reservation) SessionUnits() float64 {
	return float64(r.Service.Acupuncture) + float64(r.Service.Feet) + float64(r.Service.Body)
}

// VipPackage - A sold VIP membership whose commission is split evenly
// across the credited employees.
type VipPackage struct {
	ID               int
	Serial           string
	SoldAmount       float64
	CommissionAmount float64
	EmployeeIDs      []int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CommissionShare returns one employee's even share of the package
// commission.
func (v VipPackage) CommissionShare() float64 {
	if len(v.EmployeeIDs) == 0 {
		return 0
	}
	return v.CommissionAmount / float64(len(v.EmployeeIDs))
}

// Schedule - One employee's plan for one calendar day. Signing is a
// one-way transition: once signed it cannot be unsigned from the client.
type Schedule struct {
	Date         time.Time
	Employee     employee.Employee
	IsWorking    bool
	OnCall       bool
	Start        *time.Time
	End          *time.Time
	Priority     *int
	AddAward     bool
	Award        float64 // reservation count toward the award bonus
	Reservations []Reservation
	VipPackages  []VipPackage
	Signed       bool
}
