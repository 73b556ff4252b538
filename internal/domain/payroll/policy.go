package payroll

// Compensation policy constants. The tip share in particular is applied
// at three independent call sites (period cash-and-tips, the
// store-employee-with-tips-and-cash cheque, and the live shift payout);
// keeping them here means the sites cannot drift apart.
const (
	// TipShare is the fraction of tips the employee keeps; the store
	// retains the remainder.
	TipShare = 0.9

	// RequestedBonusPerSession is the flat bonus paid per session unit
	// when the customer specifically requested the employee.
	RequestedBonusPerSession = 1.0

	// HolidayBonusPerSession is the flat bonus paid per session unit on
	// recognized statutory holidays, on all sessions that day.
	HolidayBonusPerSession = 2.0

	// DefaultAwardReservationCountThreshold is the reservation count an
	// employee must exceed before award money is paid out.
	DefaultAwardReservationCountThreshold = 40
)
