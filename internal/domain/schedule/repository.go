package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	GetByDate(ctx context.Context, employeeID int, date time.Time) (Schedule, error)
	ListForEmployee(ctx context.Context, employeeID int, start, end time.Time) ([]Schedule, error)
	Sign(ctx context.Context, employeeID int, date time.Time) error
}
