package payroll

import (
	"time"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/employee"
)

// Part enum - which half of the month a payroll document covers.
type Part string

const (
	Part1 Part = "PART_1" // days 1-15
	Part2 Part = "PART_2" // day 16 through end of month
)

// Option enum - the role-dependent payroll shape. The set is closed;
// calculators dispatch exhaustively and reject unknown values.
type Option string

const (
	OptionAcupuncturist                Option = "ACUPUNCTURIST"
	OptionReceptionist                 Option = "RECEPTIONIST"
	OptionStoreEmployee                Option = "STORE_EMPLOYEE"
	OptionStoreEmployeeWithTipsAndCash Option = "STORE_EMPLOYEE_WITH_TIPS_AND_CASH"
)

// Row - One calendar day's aggregated figures for one employee,
// produced by the back end per half-month period. Immutable fact for
// the calculators.
type Row struct {
	Date                         time.Time
	BodySessions                 float64
	FeetSessions                 float64
	AcupunctureSessions          float64
	RequestedBodySessions        float64
	RequestedFeetSessions        float64
	RequestedAcupunctureSessions float64
	Start                        *time.Time
	End                          *time.Time
	AwardAmount                  float64
	VipAmount                    float64
	TotalCashOut                 float64
	Tips                         float64
}

// Payroll - A half-month payroll document for one employee. Days in the
// part's range with no matching Row are treated as zero rows.
type Payroll struct {
	Year         int
	Month        int
	Part         Part
	Option       Option
	Employee     employee.Employee
	Data         []Row
	ChequeAmount *float64 // override; nil means cheque = full total
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReportRow - One day's session quantities inside an acupuncture
// commission report.
type ReportRow struct {
	Date                      time.Time
	Acupuncture               float64
	Massage                   float64
	Insurance                 float64
	NonAcupuncturistInsurance float64
}

// AcupunctureReport - A full-month commission document. Percentages are
// fractions in [0,1]. Legacy documents without the non-acupuncturist
// insurance split carry 0 for that quantity and rate, which computes
// identically to the older three-term formula.
type AcupunctureReport struct {
	Year                                int
	Month                               int
	Employee                            employee.Employee
	AcupuncturePercentage               float64
	MassagePercentage                   float64
	InsurancePercentage                 float64
	NonAcupuncturistInsurancePercentage float64
	Data                                []ReportRow
	CreatedAt                           time.Time
	UpdatedAt                           time.Time
}
