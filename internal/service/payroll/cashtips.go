package payroll

import (
	"time"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/holiday"
)

// dayCash computes one day's cash-equivalent payout: the flat
// requested-client bonus, the holiday bonus on all sessions that day,
// the award amount, the VIP commission share, and money already paid
// out in cash.
func dayCash(year, month, day int, row *payroll.Row) float64 {
	totalSessions := row.AcupunctureSessions + row.BodySessions + row.FeetSessions
	requestedSessions := row.RequestedAcupunctureSessions + row.RequestedBodySessions + row.RequestedFeetSessions

	holidayPay := 0.0
	if holiday.IsHoliday(year, time.Month(month), day) {
		holidayPay = payroll.HolidayBonusPerSession * totalSessions
	}

	return requestedSessions*payroll.RequestedBonusPerSession +
		holidayPay +
		row.AwardAmount +
		row.VipAmount +
		row.TotalCashOut
}

// dayTips returns the employee's share of one day's tips.
func dayTips(row *payroll.Row) float64 {
	return row.Tips * payroll.TipShare
}

// CalculateCashAndTips builds the per-day cash/tips view of a payroll
// period for roles paid partly in cash.
func CalculateCashAndTips(p payroll.Payroll) payroll.CashAndTipsBreakdown {
	days := periodDays(p.Year, p.Month, p.Part)

	b := payroll.CashAndTipsBreakdown{
		Days: make([]payroll.CashAndTipsDay, 0, len(days)),
	}

	for _, day := range days {
		d := payroll.CashAndTipsDay{Day: day}
		if row := findRow(p.Data, day); row != nil {
			d.Cash = dayCash(p.Year, p.Month, day, row)
			d.Tips = dayTips(row)
			d.Total = d.Cash + d.Tips
		}
		b.Days = append(b.Days, d)
	}

	for _, d := range b.Days {
		b.TotalCash += d.Cash
		b.TotalTips += d.Tips
	}
	b.Total = b.TotalCash + b.TotalTips

	return b
}
