package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
)

func TestDayCash(t *testing.T) {
	t.Parallel()

	row := &payroll.Row{
		BodySessions:                 3,
		FeetSessions:                 2,
		AcupunctureSessions:          1,
		RequestedBodySessions:        1,
		RequestedFeetSessions:        1,
		RequestedAcupunctureSessions: 0,
		AwardAmount:                  5,
		VipAmount:                    4,
		TotalCashOut:                 10,
	}

	// Jan 1 2025 is a statutory holiday: every session that day earns
	// the holiday bonus, requested or not.
	onHoliday := dayCash(2025, 1, 1, row)
	assert.InDelta(t, 2+12+5+4+10, onHoliday, 1e-9)

	// Jan 2 2025 is a regular day.
	regular := dayCash(2025, 1, 2, row)
	assert.InDelta(t, 2+0+5+4+10, regular, 1e-9)
}

func TestDayTips_AppliesShare(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 9.0, dayTips(&payroll.Row{Tips: 10}), 1e-9)
	assert.Zero(t, dayTips(&payroll.Row{}))
}

func TestCalculateCashAndTips(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Year:  2025,
		Month: 1,
		Part:  payroll.Part1,
		Data: []payroll.Row{
			{
				Date:                  day(2025, 1, 1), // holiday
				BodySessions:          2,
				RequestedBodySessions: 1,
				Tips:                  10,
			},
			{
				Date:         day(2025, 1, 9),
				FeetSessions: 1,
				TotalCashOut: 7,
				Tips:         20,
			},
		},
	}

	b := CalculateCashAndTips(p)
	require.Len(t, b.Days, 15)

	// Holiday day: requested bonus 1 + holiday bonus 2*2 sessions.
	assert.InDelta(t, 5.0, b.Days[0].Cash, 1e-9)
	assert.InDelta(t, 9.0, b.Days[0].Tips, 1e-9)
	assert.InDelta(t, 14.0, b.Days[0].Total, 1e-9)

	// Regular day: just the cash-out.
	assert.InDelta(t, 7.0, b.Days[8].Cash, 1e-9)
	assert.InDelta(t, 18.0, b.Days[8].Tips, 1e-9)

	// Empty days contribute nothing.
	assert.Zero(t, b.Days[2].Total)

	assert.InDelta(t, 12.0, b.TotalCash, 1e-9)
	assert.InDelta(t, 27.0, b.TotalTips, 1e-9)
	assert.InDelta(t, 39.0, b.Total, 1e-9)
}
