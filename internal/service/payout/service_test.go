package payout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/schedule"
)

type fakeScheduleRepo struct {
	schedules map[string]schedule.Schedule
	signed    []time.Time
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (f *fakeScheduleRepo) GetByDate(ctx context.Context, employeeID int, date time.Time) (schedule.Schedule, error) {
	s, ok := f.schedules[dateKey(date)]
	if !ok {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) ListForEmployee(ctx context.Context, employeeID int, start, end time.Time) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, s := range f.schedules {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeScheduleRepo) Sign(ctx context.Context, employeeID int, date time.Time) error {
	f.signed = append(f.signed, date)
	return nil
}

func TestService_GetForDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	date := at(2025, time.March, 3, 0, 0)
	start := at(2025, time.March, 3, 10, 0)

	repo := &fakeScheduleRepo{
		schedules: map[string]schedule.Schedule{
			dateKey(date): {
				Date:  date,
				Award: 45,
				Reservations: []schedule.Reservation{
					{ID: 1, ReservedDate: start, Service: schedule.Service{Body: 1, Time: 60}, CashOut: ptrF(12)},
					{ID: 2, ReservedDate: start.Add(3 * time.Hour), Service: schedule.Service{Body: 1, Time: 60}, CashOut: ptrF(99)},
				},
			},
		},
	}
	svc := NewService(repo, 40)

	// Only the first reservation has finished by noon, so the second
	// one's cash-out must not appear yet.
	got, err := svc.GetForDate(ctx, 1, date, at(2025, time.March, 3, 12, 0))
	require.NoError(t, err)

	assert.Equal(t, date, got.Date)
	assert.False(t, got.Signed)
	assert.InDelta(t, 12.0, got.Payout.CashOutTotal, 1e-9)
	assert.InDelta(t, 5.0, got.Payout.AwardMoney, 1e-9)
	assert.InDelta(t, 17.0, got.Payout.Total, 1e-9)
}

func TestService_GetForDate_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(&fakeScheduleRepo{schedules: map[string]schedule.Schedule{}}, 40)

	_, err := svc.GetForDate(ctx, 1, at(2025, time.March, 3, 0, 0), at(2025, time.March, 3, 12, 0))
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestService_Sign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	date := at(2025, time.March, 3, 0, 0)
	repo := &fakeScheduleRepo{
		schedules: map[string]schedule.Schedule{
			dateKey(date): {Date: date},
		},
	}
	svc := NewService(repo, 40)

	require.NoError(t, svc.Sign(ctx, 1, date))
	require.Len(t, repo.signed, 1)
}

func TestService_Sign_AlreadySigned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	date := at(2025, time.March, 3, 0, 0)
	repo := &fakeScheduleRepo{
		schedules: map[string]schedule.Schedule{
			dateKey(date): {Date: date, Signed: true},
		},
	}
	svc := NewService(repo, 40)

	err := svc.Sign(ctx, 1, date)
	assert.ErrorIs(t, err, schedule.ErrAlreadySigned)
	assert.Empty(t, repo.signed)
}
