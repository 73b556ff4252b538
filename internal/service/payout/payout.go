// Package payout computes the running daily payout an employee sees
// before the pay period closes: the same requested/holiday/cash-out/
// tips/VIP formula as period payroll, but evaluated live against
// today's completed reservations. The evaluation time is an explicit
// input, not ambient clock state, so recomputing with the same inputs
// is idempotent.
package payout

import (
	"time"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/schedule"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/holiday"
)

// Input carries everything the live payout depends on. Date is the
// schedule day (store zone) and Now the evaluation instant; both are
// explicit so callers re-derive the summary on every data refresh.
type Input struct {
	Date           time.Time
	Reservations   []schedule.Reservation
	VipPackages    []schedule.VipPackage
	Award          float64
	AwardThreshold float64
	Now            time.Time
}

// Summary is the daily footer an employee sees under their schedule.
type Summary struct {
	BodyTotal                 float64 `json:"body_total"`
	FeetTotal                 float64 `json:"feet_total"`
	AcupunctureTotal          float64 `json:"acupuncture_total"`
	InsuranceAcupunctureTotal float64 `json:"insurance_acupuncture_total"`
	RequestedPay              float64 `json:"requested_pay"`
	HolidayPay                float64 `json:"holiday_pay"`
	CashOutTotal              float64 `json:"cash_out_total"`
	TipsTotal                 float64 `json:"tips_total"`
	TipsPayout                float64 `json:"tips_payout"`
	VipCommissionTotal        float64 `json:"vip_commission_total"`
	AwardMoney                float64 `json:"award_money"`
	Total                     float64 `json:"total"`
}

// Completed filters to reservations whose end time (start + effective
// duration) has passed, evaluated in the store zone.
func Completed(reservations []schedule.Reservation, now time.Time) []schedule.Reservation {
	now = now.In(holiday.Location())

	completed := make([]schedule.Reservation, 0, len(reservations))
	for _, r := range reservations {
		end := r.ReservedDate.Add(time.Duration(r.EffectiveDuration()) * time.Minute)
		if !end.After(now) {
			completed = append(completed, r)
		}
	}
	return completed
}

func isSessionReservation(r schedule.Reservation) bool {
	return r.Service.Body > 0 || r.Service.Feet > 0 || r.Service.Acupuncture > 0
}

func countsTips(r schedule.Reservation) bool {
	if r.TipMethod == nil || r.Tips == nil {
		return false
	}
	return *r.TipMethod == schedule.TipMethodHalf || *r.TipMethod == schedule.TipMethodMachine
}

// Calculate derives the live payout from today's completed
// reservations. Callers are expected to pre-filter with Completed; the
// function itself applies no time filtering.
func Calculate(in Input) Summary {
	var s Summary

	for _, r := range in.Reservations {
		if r.Service.Body > 0 {
			s.BodyTotal += float64(r.Service.Body)
		}
		if r.Service.Feet > 0 {
			s.FeetTotal += float64(r.Service.Feet)
		}
		if r.Service.Acupuncture > 0 {
			if r.Insurance != nil && *r.Insurance > 0 {
				s.InsuranceAcupunctureTotal += float64(r.Service.Acupuncture)
			} else {
				s.AcupunctureTotal += float64(r.Service.Acupuncture)
			}
		}
	}

	var requestedUnits, holidayUnits float64
	for _, r := range in.Reservations {
		if !isSessionReservation(r) {
			continue
		}
		holidayUnits += r.SessionUnits()
		if r.RequestedEmployee {
			requestedUnits += r.SessionUnits()
		}
	}

	s.RequestedPay = requestedUnits * payroll.RequestedBonusPerSession
	if holiday.IsHolidayDate(in.Date) {
		s.HolidayPay = holidayUnits * payroll.HolidayBonusPerSession
	}

	for _, r := range in.Reservations {
		if r.CashOut != nil {
			s.CashOutTotal += *r.CashOut
		}
	}

	for _, r := range in.Reservations {
		if countsTips(r) {
			s.TipsTotal += *r.Tips
		}
	}
	s.TipsPayout = s.TipsTotal * payroll.TipShare

	for _, v := range in.VipPackages {
		s.VipCommissionTotal += v.CommissionShare()
	}

	s.AwardMoney = max(in.Award-in.AwardThreshold, 0)

	s.Total = s.RequestedPay + s.HolidayPay + s.CashOutTotal + s.TipsPayout + s.VipCommissionTotal + s.AwardMoney

	return s
}
