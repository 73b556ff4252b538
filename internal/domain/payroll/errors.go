package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll not found")
	ErrReportNotFound  = errors.New("acupuncture report not found")

	// ErrUnknownOption is returned when a payroll carries an option
	// outside the closed role set. This is a caller-contract violation,
	// never silently coerced to a default role.
	ErrUnknownOption = errors.New("unknown payroll option")

	// ErrInvalidPeriod is returned for a month outside 1-12.
	ErrInvalidPeriod = errors.New("invalid payroll period")
)
