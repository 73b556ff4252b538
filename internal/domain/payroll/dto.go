package payroll

import "time"

// ========== ROLE BREAKDOWN DTOs ==========
//
// Per-day figures plus the period totals each payroll table renders.
// All arithmetic lives in internal/service/payroll; these carry exact
// numeric results so display formatting stays separable.

type AcupuncturistDay struct {
	Day         int     `json:"day"`
	Body        float64 `json:"body"`
	Feet        float64 `json:"feet"`
	Acupuncture float64 `json:"acupuncture"`
}

type AcupuncturistBreakdown struct {
	Days                     []AcupuncturistDay `json:"days"`
	TotalBodySessions        float64            `json:"total_body_sessions"`
	TotalFeetSessions        float64            `json:"total_feet_sessions"`
	TotalAcupunctureSessions float64            `json:"total_acupuncture_sessions"`
	BodyRate                 float64            `json:"body_rate"`
	FeetRate                 float64            `json:"feet_rate"`
	AcupunctureRate          float64            `json:"acupuncture_rate"`
	TotalBodyMoney           float64            `json:"total_body_money"`
	TotalFeetMoney           float64            `json:"total_feet_money"`
	TotalAcupunctureMoney    float64            `json:"total_acupuncture_money"`
	Cheque                   float64            `json:"cheque"`
}

// StoreEmployeeDay folds acupuncture sessions into the body bucket;
// non-acupuncturists are paid the body rate for acupuncture-adjacent
// work.
type StoreEmployeeDay struct {
	Day  int     `json:"day"`
	Body float64 `json:"body"`
	Feet float64 `json:"feet"`
}

type StoreEmployeeBreakdown struct {
	Days              []StoreEmployeeDay `json:"days"`
	TotalBodySessions float64            `json:"total_body_sessions"`
	TotalFeetSessions float64            `json:"total_feet_sessions"`
	BodyRate          float64            `json:"body_rate"`
	FeetRate          float64            `json:"feet_rate"`
	TotalBodyMoney    float64            `json:"total_body_money"`
	TotalFeetMoney    float64            `json:"total_feet_money"`
	Cheque            float64            `json:"cheque"`
}

type ReceptionistDay struct {
	Day                int        `json:"day"`
	Start              *time.Time `json:"start"`
	End                *time.Time `json:"end"`
	Hours              float64    `json:"hours"`
	Body               float64    `json:"body"`
	Feet               float64    `json:"feet"`
	HoursMinusSessions float64    `json:"hours_minus_sessions"`
	Holiday            bool       `json:"holiday"`
	TotalHours         float64    `json:"total_hours"`
}

type ReceptionistBreakdown struct {
	Days                    []ReceptionistDay `json:"days"`
	TotalBodySessions       float64           `json:"total_body_sessions"`
	TotalFeetSessions       float64           `json:"total_feet_sessions"`
	TotalHours              float64           `json:"total_hours"`
	TotalHoursMinusSessions float64           `json:"total_hours_minus_sessions"`
	TotalHoursFinal         float64           `json:"total_hours_final"`
	BodyRate                float64           `json:"body_rate"`
	FeetRate                float64           `json:"feet_rate"`
	HourlyRate              float64           `json:"hourly_rate"`
	TotalBodyMoney          float64           `json:"total_body_money"`
	TotalFeetMoney          float64           `json:"total_feet_money"`
	TotalHourlyMoney        float64           `json:"total_hourly_money"`
	Cheque                  float64           `json:"cheque"`
}

type CashAndTipsDay struct {
	Day   int     `json:"day"`
	Cash  float64 `json:"cash"`
	Tips  float64 `json:"tips"`
	Total float64 `json:"total"`
}

type CashAndTipsBreakdown struct {
	Days      []CashAndTipsDay `json:"days"`
	TotalCash float64          `json:"total_cash"`
	TotalTips float64          `json:"total_tips"`
	Total     float64          `json:"total"`
}

type StoreEmployeeWithTipsAndCashDay struct {
	Day  int     `json:"day"`
	Body float64 `json:"body"`
	Feet float64 `json:"feet"`
	Tips float64 `json:"tips"`
	Cash float64 `json:"cash"`
}

type StoreEmployeeWithTipsAndCashBreakdown struct {
	Days              []StoreEmployeeWithTipsAndCashDay `json:"days"`
	TotalBodySessions float64                           `json:"total_body_sessions"`
	TotalFeetSessions float64                           `json:"total_feet_sessions"`
	BodyRate          float64                           `json:"body_rate"`
	FeetRate          float64                           `json:"feet_rate"`
	TotalBodyMoney    float64                           `json:"total_body_money"`
	TotalFeetMoney    float64                           `json:"total_feet_money"`
	TotalTips         float64                           `json:"total_tips"`
	TotalCash         float64                           `json:"total_cash"`
	Total             float64                           `json:"total"`
	Cheque            float64                           `json:"cheque"`
	// CashOutAfterCheque is the residual paid in cash when an explicit
	// cheque amount is below the full total; shown only when positive.
	CashOutAfterCheque float64 `json:"cash_out_after_cheque"`
}

// Breakdown is the result of the exhaustive role dispatch. Exactly one
// of the role pointers is set, matching Option.
type Breakdown struct {
	Option                       Option                                 `json:"option"`
	Cheque                       float64                                `json:"cheque"`
	Acupuncturist                *AcupuncturistBreakdown                `json:"acupuncturist,omitempty"`
	Receptionist                 *ReceptionistBreakdown                 `json:"receptionist,omitempty"`
	StoreEmployee                *StoreEmployeeBreakdown                `json:"store_employee,omitempty"`
	StoreEmployeeWithTipsAndCash *StoreEmployeeWithTipsAndCashBreakdown `json:"store_employee_with_tips_and_cash,omitempty"`
}

// ========== REPORT BREAKDOWN DTOs ==========

type ReportDay struct {
	Day                       int     `json:"day"`
	Acupuncture               float64 `json:"acupuncture"`
	Massage                   float64 `json:"massage"`
	Insurance                 float64 `json:"insurance"`
	NonAcupuncturistInsurance float64 `json:"non_acupuncturist_insurance"`
	Total                     float64 `json:"total"`
}

type ReportBreakdown struct {
	Days                           []ReportDay `json:"days"`
	TotalAcupuncture               float64     `json:"total_acupuncture"`
	TotalMassage                   float64     `json:"total_massage"`
	TotalInsurance                 float64     `json:"total_insurance"`
	TotalNonAcupuncturistInsurance float64     `json:"total_non_acupuncturist_insurance"`
	AcupunctureMoney               float64     `json:"acupuncture_money"`
	MassageMoney                   float64     `json:"massage_money"`
	InsuranceMoney                 float64     `json:"insurance_money"`
	NonAcupuncturistInsuranceMoney float64     `json:"non_acupuncturist_insurance_money"`
	Cheque                         float64     `json:"cheque"`
}

// ========== RESPONSE DTOs ==========

type PayrollResponse struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Part      Part      `json:"part"`
	Option    Option    `json:"option"`
	Breakdown Breakdown `json:"breakdown"`
}

type CashAndTipsResponse struct {
	Year      int                  `json:"year"`
	Month     int                  `json:"month"`
	Part      Part                 `json:"part"`
	Breakdown CashAndTipsBreakdown `json:"breakdown"`
}

type ReportResponse struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Breakdown ReportBreakdown `json:"breakdown"`
}
