package payout

import (
	"context"
	"time"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/schedule"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/holiday"
)

type Service struct {
	scheduleRepo   schedule.ScheduleRepository
	awardThreshold float64
}

func NewService(scheduleRepo schedule.ScheduleRepository, awardThreshold float64) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		awardThreshold: awardThreshold,
	}
}

// ScheduleResponse pairs the raw schedule with its live payout summary.
type ScheduleResponse struct {
	Date   time.Time `json:"date"`
	Signed bool      `json:"signed"`
	Payout Summary   `json:"payout"`
}

// GetForDate fetches the employee's schedule for a date and computes
// the live payout against reservations completed as of now.
func (s *Service) GetForDate(ctx context.Context, employeeID int, date, now time.Time) (ScheduleResponse, error) {
	sched, err := s.scheduleRepo.GetByDate(ctx, employeeID, date)
	if err != nil {
		return ScheduleResponse{}, err
	}

	summary := Calculate(Input{
		Date:           sched.Date,
		Reservations:   Completed(sched.Reservations, now),
		VipPackages:    sched.VipPackages,
		Award:          sched.Award,
		AwardThreshold: s.awardThreshold,
		Now:            now,
	})

	return ScheduleResponse{
		Date:   sched.Date,
		Signed: sched.Signed,
		Payout: summary,
	}, nil
}

// ListForRange fetches the employee's schedules between two dates
// inclusive, each with its payout computed as of now.
func (s *Service) ListForRange(ctx context.Context, employeeID int, start, end, now time.Time) ([]ScheduleResponse, error) {
	scheds, err := s.scheduleRepo.ListForEmployee(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]ScheduleResponse, 0, len(scheds))
	for _, sched := range scheds {
		summary := Calculate(Input{
			Date:           sched.Date,
			Reservations:   Completed(sched.Reservations, now),
			VipPackages:    sched.VipPackages,
			Award:          sched.Award,
			AwardThreshold: s.awardThreshold,
			Now:            now,
		})
		responses = append(responses, ScheduleResponse{
			Date:   sched.Date,
			Signed: sched.Signed,
			Payout: summary,
		})
	}

	return responses, nil
}

// Sign marks the employee's schedule for a date as signed. Signing is
// one-way; an already signed schedule returns ErrAlreadySigned.
func (s *Service) Sign(ctx context.Context, employeeID int, date time.Time) error {
	sched, err := s.scheduleRepo.GetByDate(ctx, employeeID, date)
	if err != nil {
		return err
	}
	if sched.Signed {
		return schedule.ErrAlreadySigned
	}
	return s.scheduleRepo.Sign(ctx, employeeID, date)
}

// Today returns the current instant in the store's operating zone.
func Today() time.Time {
	return time.Now().In(holiday.Location())
}
