// Package payroll computes the per-period financial breakdowns shown to
// employees. Every calculator is a pure function of the payroll
// document it is given: no I/O, no clock, no shared state, so results
// are safe to recompute on every refresh.
package payroll

import (
	"time"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/holiday"
)

// daysInMonth returns the number of days in the given month, handling
// leap years via the zeroth-day-of-next-month trick.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// periodDays returns the calendar days a payroll part covers:
// PART_1 is days 1-15, PART_2 is day 16 through the end of the month.
func periodDays(year, month int, part payroll.Part) []int {
	var first, last int
	if part == payroll.Part1 {
		first, last = 1, 15
	} else {
		first, last = 16, daysInMonth(year, month)
	}

	days := make([]int, 0, last-first+1)
	for d := first; d <= last; d++ {
		days = append(days, d)
	}
	return days
}

// findRow returns the payroll row for a calendar day, or nil when the
// day has no data. A missing day contributes zero to every sum.
func findRow(rows []payroll.Row, day int) *payroll.Row {
	for i := range rows {
		if rows[i].Date.Day() == day {
			return &rows[i]
		}
	}
	return nil
}

// rateOrZero maps an absent employee rate to 0; a nil rate means the
// employee is never paid for that session type, not an error.
func rateOrZero(rate *float64) float64 {
	if rate == nil {
		return 0
	}
	return *rate
}

// Calculate dispatches on the payroll's role option and returns its
// cheque breakdown. Unknown options fail loudly.
func Calculate(p payroll.Payroll) (payroll.Breakdown, error) {
	switch p.Option {
	case payroll.OptionAcupuncturist:
		b := CalculateAcupuncturist(p)
		return payroll.Breakdown{Option: p.Option, Cheque: b.Cheque, Acupuncturist: &b}, nil
	case payroll.OptionReceptionist:
		b := CalculateReceptionist(p)
		return payroll.Breakdown{Option: p.Option, Cheque: b.Cheque, Receptionist: &b}, nil
	case payroll.OptionStoreEmployee:
		b := CalculateStoreEmployee(p)
		return payroll.Breakdown{Option: p.Option, Cheque: b.Cheque, StoreEmployee: &b}, nil
	case payroll.OptionStoreEmployeeWithTipsAndCash:
		b := CalculateStoreEmployeeWithTipsAndCash(p)
		return payroll.Breakdown{Option: p.Option, Cheque: b.Cheque, StoreEmployeeWithTipsAndCash: &b}, nil
	default:
		return payroll.Breakdown{}, payroll.ErrUnknownOption
	}
}

// CalculateAcupuncturist pays each session type at its own rate:
// cheque = body*bodyRate + feet*feetRate + acupuncture*acupunctureRate.
func CalculateAcupuncturist(p payroll.Payroll) payroll.AcupuncturistBreakdown {
	days := periodDays(p.Year, p.Month, p.Part)

	b := payroll.AcupuncturistBreakdown{
		Days:            make([]payroll.AcupuncturistDay, 0, len(days)),
		BodyRate:        rateOrZero(p.Employee.BodyRate),
		FeetRate:        rateOrZero(p.Employee.FeetRate),
		AcupunctureRate: rateOrZero(p.Employee.AcupunctureRate),
	}

	for _, day := range days {
		d := payroll.AcupuncturistDay{Day: day}
		if row := findRow(p.Data, day); row != nil {
			d.Body = row.BodySessions
			d.Feet = row.FeetSessions
			d.Acupuncture = row.AcupunctureSessions
		}
		b.Days = append(b.Days, d)
	}

	for _, d := range b.Days {
		b.TotalBodySessions += d.Body
		b.TotalFeetSessions += d.Feet
		b.TotalAcupunctureSessions += d.Acupuncture
	}

	b.TotalBodyMoney = b.TotalBodySessions * b.BodyRate
	b.TotalFeetMoney = b.TotalFeetSessions * b.FeetRate
	b.TotalAcupunctureMoney = b.TotalAcupunctureSessions * b.AcupunctureRate
	b.Cheque = b.TotalBodyMoney + b.TotalFeetMoney + b.TotalAcupunctureMoney

	return b
}

// CalculateStoreEmployee folds acupuncture sessions into the body
// bucket and pays two rates: cheque = (body+acu)*bodyRate +
// feet*feetRate.
func CalculateStoreEmployee(p payroll.Payroll) payroll.StoreEmployeeBreakdown {
	days := periodDays(p.Year, p.Month, p.Part)

	b := payroll.StoreEmployeeBreakdown{
		Days:     make([]payroll.StoreEmployeeDay, 0, len(days)),
		BodyRate: rateOrZero(p.Employee.BodyRate),
		FeetRate: rateOrZero(p.Employee.FeetRate),
	}

	for _, day := range days {
		d := payroll.StoreEmployeeDay{Day: day}
		if row := findRow(p.Data, day); row != nil {
			d.Body = row.BodySessions + row.AcupunctureSessions
			d.Feet = row.FeetSessions
		}
		b.Days = append(b.Days, d)
	}

	for _, d := range b.Days {
		b.TotalBodySessions += d.Body
		b.TotalFeetSessions += d.Feet
	}

	b.TotalBodyMoney = b.TotalBodySessions * b.BodyRate
	b.TotalFeetMoney = b.TotalFeetSessions * b.FeetRate
	b.Cheque = b.TotalBodyMoney + b.TotalFeetMoney

	return b
}

// CalculateReceptionist pays sessions at per-session rates plus the
// shift hours not consumed by session work at the hourly rate. Session
// units count 1:1 against worked hours; holiday remainders are paid at
// 1.5x.
func CalculateReceptionist(p payroll.Payroll) payroll.ReceptionistBreakdown {
	days := periodDays(p.Year, p.Month, p.Part)

	b := payroll.ReceptionistBreakdown{
		Days:       make([]payroll.ReceptionistDay, 0, len(days)),
		BodyRate:   rateOrZero(p.Employee.BodyRate),
		FeetRate:   rateOrZero(p.Employee.FeetRate),
		HourlyRate: rateOrZero(p.Employee.PerHour),
	}

	for _, day := range days {
		d := payroll.ReceptionistDay{
			Day:     day,
			Holiday: holiday.IsHoliday(p.Year, time.Month(p.Month), day),
		}

		if row := findRow(p.Data, day); row != nil {
			d.Start = row.Start
			d.End = row.End
			if row.Start != nil && row.End != nil {
				d.Hours = row.End.Sub(*row.Start).Hours()
			}

			d.Body = row.BodySessions + row.AcupunctureSessions
			d.Feet = row.FeetSessions

			d.HoursMinusSessions = max(d.Hours-d.Body-d.Feet, 0)

			totalHours := d.HoursMinusSessions
			if d.Holiday {
				totalHours = 1.5 * d.HoursMinusSessions
			}
			d.TotalHours = max(totalHours, 0)
		}

		b.Days = append(b.Days, d)
	}

	for _, d := range b.Days {
		b.TotalBodySessions += d.Body
		b.TotalFeetSessions += d.Feet
		b.TotalHours += d.Hours
		b.TotalHoursMinusSessions += d.HoursMinusSessions
		b.TotalHoursFinal += d.TotalHours
	}

	b.TotalBodyMoney = b.TotalBodySessions * b.BodyRate
	b.TotalFeetMoney = b.TotalFeetSessions * b.FeetRate
	b.TotalHourlyMoney = b.TotalHoursFinal * b.HourlyRate
	b.Cheque = b.TotalBodyMoney + b.TotalFeetMoney + b.TotalHourlyMoney

	return b
}

// CalculateStoreEmployeeWithTipsAndCash combines the store-employee
// session pay with the per-day cash and tip figures from the shared
// cash-and-tips routine. The combined total is split into the cheque
// portion (an explicit override when present, otherwise the full total)
// and a residual cash-out portion.
func CalculateStoreEmployeeWithTipsAndCash(p payroll.Payroll) payroll.StoreEmployeeWithTipsAndCashBreakdown {
	days := periodDays(p.Year, p.Month, p.Part)

	b := payroll.StoreEmployeeWithTipsAndCashBreakdown{
		Days:     make([]payroll.StoreEmployeeWithTipsAndCashDay, 0, len(days)),
		BodyRate: rateOrZero(p.Employee.BodyRate),
		FeetRate: rateOrZero(p.Employee.FeetRate),
	}

	for _, day := range days {
		d := payroll.StoreEmployeeWithTipsAndCashDay{Day: day}
		if row := findRow(p.Data, day); row != nil {
			d.Body = row.BodySessions + row.AcupunctureSessions
			d.Feet = row.FeetSessions
			d.Cash = dayCash(p.Year, p.Month, day, row)
			d.Tips = dayTips(row)
		}
		b.Days = append(b.Days, d)
	}

	for _, d := range b.Days {
		b.TotalBodySessions += d.Body
		b.TotalFeetSessions += d.Feet
		b.TotalTips += d.Tips
		b.TotalCash += d.Cash
	}

	b.TotalBodyMoney = b.TotalBodySessions * b.BodyRate
	b.TotalFeetMoney = b.TotalFeetSessions * b.FeetRate
	b.Total = b.TotalBodyMoney + b.TotalFeetMoney + b.TotalTips + b.TotalCash

	b.Cheque = b.Total
	if p.ChequeAmount != nil {
		b.Cheque = *p.ChequeAmount
	}
	b.CashOutAfterCheque = b.Total - b.Cheque

	return b
}
