package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/employee"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
)

func ptrF(v float64) *float64 { return &v }

func ptrT(v time.Time) *time.Time { return &v }

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAcupuncturist(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Year:   2025,
		Month:  1,
		Part:   payroll.Part1,
		Option: payroll.OptionAcupuncturist,
		Employee: employee.Employee{
			BodyRate:        ptrF(20),
			FeetRate:        ptrF(15),
			AcupunctureRate: ptrF(30),
		},
		Data: []payroll.Row{
			{Date: day(2025, 1, 3), BodySessions: 6, FeetSessions: 2, AcupunctureSessions: 1},
			{Date: day(2025, 1, 10), BodySessions: 4, AcupunctureSessions: 1},
		},
	}

	b := CalculateAcupuncturist(p)

	require.Len(t, b.Days, 15)
	assert.Equal(t, 1, b.Days[0].Day)
	assert.Equal(t, 15, b.Days[14].Day)

	// Days without data are zero rows.
	assert.Zero(t, b.Days[0].Body)
	assert.Equal(t, 6.0, b.Days[2].Body)
	assert.Equal(t, 2.0, b.Days[2].Feet)
	assert.Equal(t, 1.0, b.Days[2].Acupuncture)

	assert.Equal(t, 10.0, b.TotalBodySessions)
	assert.Equal(t, 2.0, b.TotalFeetSessions)
	assert.Equal(t, 2.0, b.TotalAcupunctureSessions)

	assert.Equal(t, 200.0, b.TotalBodyMoney)
	assert.Equal(t, 30.0, b.TotalFeetMoney)
	assert.Equal(t, 60.0, b.TotalAcupunctureMoney)
	assert.Equal(t, 290.0, b.Cheque)
}

func TestCalculateAcupuncturist_NilRatesPayNothing(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Year:   2025,
		Month:  1,
		Part:   payroll.Part1,
		Option: payroll.OptionAcupuncturist,
		Data: []payroll.Row{
			{Date: day(2025, 1, 5), BodySessions: 8, FeetSessions: 3, AcupunctureSessions: 2},
		},
	}

	b := CalculateAcupuncturist(p)

	assert.Equal(t, 8.0, b.TotalBodySessions)
	assert.Zero(t, b.BodyRate)
	assert.Zero(t, b.Cheque)
}

func TestCalculateAcupuncturist_Additivity(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Year:   2025,
		Month:  4,
		Part:   payroll.Part2,
		Option: payroll.OptionAcupuncturist,
		Employee: employee.Employee{
			BodyRate:        ptrF(40),
			FeetRate:        ptrF(30),
			AcupunctureRate: ptrF(50),
		},
		Data: []payroll.Row{
			{Date: day(2025, 4, 17), BodySessions: 1, FeetSessions: 2},
			{Date: day(2025, 4, 22), BodySessions: 3, AcupunctureSessions: 1},
			{Date: day(2025, 4, 30), FeetSessions: 1, AcupunctureSessions: 2},
		},
	}

	b := CalculateAcupuncturist(p)

	// The cheque equals the sum of independent per-day contributions;
	// there are no cross-day interaction terms.
	var perDay float64
	for _, d := range b.Days {
		perDay += d.Body*b.BodyRate + d.Feet*b.FeetRate + d.Acupuncture*b.AcupunctureRate
	}
	assert.InDelta(t, perDay, b.Cheque, 1e-9)
}

func TestCalculateStoreEmployee_FoldsAcupunctureIntoBody(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Year:   2025,
		Month:  3,
		Part:   payroll.Part1,
		Option: payroll.OptionStoreEmployee,
		Employee: employee.Employee{
			BodyRate: ptrF(10),
			FeetRate: ptrF(8),
		},
		Data: []payroll.Row{
			{Date: day(2025, 3, 7), BodySessions: 3, FeetSessions: 1, AcupunctureSessions: 2},
		},
	}

	b := CalculateStoreEmployee(p)

	assert.Equal(t, 5.0, b.Days[6].Body)
	assert.Equal(t, 5.0, b.TotalBodySessions)
	assert.Equal(t, 1.0, b.TotalFeetSessions)
	assert.Equal(t, 50.0, b.TotalBodyMoney)
	assert.Equal(t, 8.0, b.TotalFeetMoney)
	assert.Equal(t, 58.0, b.Cheque)
}

func TestCalculateReceptionist(t *testing.T) {
	t.Parallel()

	shift := func(d int) (start, end time.Time) {
		return time.Date(2025, 1, d, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, d, 19, 0, 0, 0, time.UTC)
	}

	start1, end1 := shift(1)
	start2, end2 := shift(2)

	p := payroll.Payroll{
		Year:   2025,
		Month:  1,
		Part:   payroll.Part1,
		Option: payroll.OptionReceptionist,
		Employee: employee.Employee{
			BodyRate: ptrF(10),
			FeetRate: ptrF(8),
			PerHour:  ptrF(20),
		},
		Data: []payroll.Row{
			{Date: day(2025, 1, 1), Start: ptrT(start1), End: ptrT(end1), BodySessions: 2, FeetSessions: 1},
			{Date: day(2025, 1, 2), Start: ptrT(start2), End: ptrT(end2), BodySessions: 2, FeetSessions: 1},
		},
	}

	b := CalculateReceptionist(p)
	require.Len(t, b.Days, 15)

	// Jan 1 is a statutory holiday: the remainder hours are paid at 1.5x.
	assert.True(t, b.Days[0].Holiday)
	assert.Equal(t, 9.0, b.Days[0].Hours)
	assert.Equal(t, 6.0, b.Days[0].HoursMinusSessions)
	assert.Equal(t, 9.0, b.Days[0].TotalHours)

	// Jan 2 is a regular day.
	assert.False(t, b.Days[1].Holiday)
	assert.Equal(t, 6.0, b.Days[1].TotalHours)

	assert.Equal(t, 4.0, b.TotalBodySessions)
	assert.Equal(t, 2.0, b.TotalFeetSessions)
	assert.Equal(t, 18.0, b.TotalHours)
	assert.Equal(t, 12.0, b.TotalHoursMinusSessions)
	assert.Equal(t, 15.0, b.TotalHoursFinal)

	assert.Equal(t, 40.0, b.TotalBodyMoney)
	assert.Equal(t, 16.0, b.TotalFeetMoney)
	assert.Equal(t, 300.0, b.TotalHourlyMoney)
	assert.Equal(t, 356.0, b.Cheque)
}

func TestCalculateReceptionist_HolidayDoublesRemainder(t *testing.T) {
	t.Parallel()

	// One 8 hour shift with one body and one feet session leaves 6
	// remainder hours. On a regular day that pays 40 + 30 + 6*20 = 190;
	// on a holiday the remainder runs at 1.5x for 40 + 30 + 9*20 = 250.
	build := func(d int) payroll.Payroll {
		start := time.Date(2025, 1, d, 10, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, d, 18, 0, 0, 0, time.UTC)
		return payroll.Payroll{
			Year:   2025,
			Month:  1,
			Part:   payroll.Part1,
			Option: payroll.OptionReceptionist,
			Employee: employee.Employee{
				BodyRate: ptrF(40),
				FeetRate: ptrF(30),
				PerHour:  ptrF(20),
			},
			Data: []payroll.Row{
				{Date: day(2025, 1, d), Start: ptrT(start), End: ptrT(end), BodySessions: 1, FeetSessions: 1},
			},
		}
	}

	regular := CalculateReceptionist(build(2))
	assert.Equal(t, 190.0, regular.Cheque)

	onHoliday := CalculateReceptionist(build(1))
	assert.Equal(t, 250.0, onHoliday.Cheque)
}

func TestCalculateReceptionist_SessionsExceedHours(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 6, 13, 0, 0, 0, time.UTC)

	p := payroll.Payroll{
		Year:     2025,
		Month:    1,
		Part:     payroll.Part1,
		Option:   payroll.OptionReceptionist,
		Employee: employee.Employee{PerHour: ptrF(20)},
		Data: []payroll.Row{
			{Date: day(2025, 1, 6), Start: ptrT(start), End: ptrT(end), BodySessions: 4},
		},
	}

	b := CalculateReceptionist(p)

	// The remainder clamps at zero instead of going negative.
	assert.Equal(t, 3.0, b.Days[5].Hours)
	assert.Zero(t, b.Days[5].HoursMinusSessions)
	assert.Zero(t, b.Days[5].TotalHours)
	assert.Zero(t, b.TotalHourlyMoney)
}

func TestCalculateStoreEmployeeWithTipsAndCash(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Year:   2025,
		Month:  2,
		Part:   payroll.Part1,
		Option: payroll.OptionStoreEmployeeWithTipsAndCash,
		Employee: employee.Employee{
			BodyRate: ptrF(10),
			FeetRate: ptrF(8),
		},
		Data: []payroll.Row{
			{
				Date:                  day(2025, 2, 4),
				BodySessions:          2,
				FeetSessions:          1,
				AcupunctureSessions:   1,
				RequestedBodySessions: 1,
				Tips:                  10,
				AwardAmount:           5,
				VipAmount:             4,
				TotalCashOut:          6,
			},
		},
	}

	b := CalculateStoreEmployeeWithTipsAndCash(p)

	assert.Equal(t, 3.0, b.TotalBodySessions)
	assert.Equal(t, 1.0, b.TotalFeetSessions)
	assert.Equal(t, 30.0, b.TotalBodyMoney)
	assert.Equal(t, 8.0, b.TotalFeetMoney)
	assert.InDelta(t, 9.0, b.TotalTips, 1e-9)
	assert.Equal(t, 16.0, b.TotalCash)
	assert.InDelta(t, 63.0, b.Total, 1e-9)

	// Without an explicit cheque amount the whole total goes on the
	// cheque.
	assert.InDelta(t, 63.0, b.Cheque, 1e-9)
	assert.InDelta(t, 0.0, b.CashOutAfterCheque, 1e-9)
}

func TestCalculateStoreEmployeeWithTipsAndCash_ChequeOverride(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Year:   2025,
		Month:  2,
		Part:   payroll.Part1,
		Option: payroll.OptionStoreEmployeeWithTipsAndCash,
		Employee: employee.Employee{
			BodyRate: ptrF(10),
			FeetRate: ptrF(8),
		},
		Data: []payroll.Row{
			{
				Date:                  day(2025, 2, 4),
				BodySessions:          2,
				FeetSessions:          1,
				AcupunctureSessions:   1,
				RequestedBodySessions: 1,
				Tips:                  10,
				AwardAmount:           5,
				VipAmount:             4,
				TotalCashOut:          6,
			},
		},
		ChequeAmount: ptrF(50),
	}

	b := CalculateStoreEmployeeWithTipsAndCash(p)

	assert.Equal(t, 50.0, b.Cheque)
	assert.InDelta(t, 13.0, b.CashOutAfterCheque, 1e-9)
}

func TestCalculate_DispatchesOnOption(t *testing.T) {
	t.Parallel()

	base := payroll.Payroll{Year: 2025, Month: 1, Part: payroll.Part1}

	tests := []struct {
		option payroll.Option
		check  func(t *testing.T, b payroll.Breakdown)
	}{
		{payroll.OptionAcupuncturist, func(t *testing.T, b payroll.Breakdown) {
			assert.NotNil(t, b.Acupuncturist)
		}},
		{payroll.OptionReceptionist, func(t *testing.T, b payroll.Breakdown) {
			assert.NotNil(t, b.Receptionist)
		}},
		{payroll.OptionStoreEmployee, func(t *testing.T, b payroll.Breakdown) {
			assert.NotNil(t, b.StoreEmployee)
		}},
		{payroll.OptionStoreEmployeeWithTipsAndCash, func(t *testing.T, b payroll.Breakdown) {
			assert.NotNil(t, b.StoreEmployeeWithTipsAndCash)
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.option), func(t *testing.T) {
			t.Parallel()
			p := base
			p.Option = tt.option

			b, err := Calculate(p)
			require.NoError(t, err)
			assert.Equal(t, tt.option, b.Option)
			assert.Zero(t, b.Cheque)
			tt.check(t, b)
		})
	}
}

func TestCalculate_UnknownOption(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{Year: 2025, Month: 1, Part: payroll.Part1, Option: "MANAGER"}

	_, err := Calculate(p)
	assert.ErrorIs(t, err, payroll.ErrUnknownOption)
}

func TestPeriodDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		year      int
		month     int
		part      payroll.Part
		wantFirst int
		wantLast  int
		wantLen   int
	}{
		{"part 1 always 1-15", 2025, 1, payroll.Part1, 1, 15, 15},
		{"part 1 february", 2025, 2, payroll.Part1, 1, 15, 15},
		{"part 2 january", 2025, 1, payroll.Part2, 16, 31, 16},
		{"part 2 april", 2025, 4, payroll.Part2, 16, 30, 15},
		{"part 2 leap february", 2024, 2, payroll.Part2, 16, 29, 14},
		{"part 2 regular february", 2025, 2, payroll.Part2, 16, 28, 13},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			days := periodDays(tt.year, tt.month, tt.part)
			require.Len(t, days, tt.wantLen)
			assert.Equal(t, tt.wantFirst, days[0])
			assert.Equal(t, tt.wantLast, days[len(days)-1])
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 31, daysInMonth(2025, 1))
	assert.Equal(t, 28, daysInMonth(2025, 2))
	assert.Equal(t, 29, daysInMonth(2024, 2))
	assert.Equal(t, 30, daysInMonth(2025, 11))
	assert.Equal(t, 31, daysInMonth(2025, 12))
}
