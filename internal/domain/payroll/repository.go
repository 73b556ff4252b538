package payroll

import "context"

type PayrollRepository interface {
	ListForEmployee(ctx context.Context, employeeID, year, month int) ([]Payroll, error)
	ListReportsForEmployee(ctx context.Context, employeeID, year, month int) ([]AcupunctureReport, error)
}
