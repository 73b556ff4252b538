package payroll

import (
	"context"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
)

type Service struct {
	payrollRepo payroll.PayrollRepository
}

func NewService(payrollRepo payroll.PayrollRepository) *Service {
	return &Service{payrollRepo: payrollRepo}
}

// GetPayrolls returns the computed breakdowns for every payroll
// document the employee has in the given month (typically one per
// part).
func (s *Service) GetPayrolls(ctx context.Context, employeeID, year, month int) ([]payroll.PayrollResponse, error) {
	if month < 1 || month > 12 {
		return nil, payroll.ErrInvalidPeriod
	}

	payrolls, err := s.payrollRepo.ListForEmployee(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		breakdown, err := Calculate(p)
		if err != nil {
			return nil, err
		}
		responses = append(responses, payroll.PayrollResponse{
			Year:      p.Year,
			Month:     p.Month,
			Part:      p.Part,
			Option:    p.Option,
			Breakdown: breakdown,
		})
	}

	return responses, nil
}

// GetCashAndTips returns the per-day cash and tips view of the
// employee's payroll periods for the month.
func (s *Service) GetCashAndTips(ctx context.Context, employeeID, year, month int) ([]payroll.CashAndTipsResponse, error) {
	if month < 1 || month > 12 {
		return nil, payroll.ErrInvalidPeriod
	}

	payrolls, err := s.payrollRepo.ListForEmployee(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.CashAndTipsResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, payroll.CashAndTipsResponse{
			Year:      p.Year,
			Month:     p.Month,
			Part:      p.Part,
			Breakdown: CalculateCashAndTips(p),
		})
	}

	return responses, nil
}

// GetAcupunctureReports returns the computed monthly commission
// breakdowns for the employee.
func (s *Service) GetAcupunctureReports(ctx context.Context, employeeID, year, month int) ([]payroll.ReportResponse, error) {
	if month < 1 || month > 12 {
		return nil, payroll.ErrInvalidPeriod
	}

	reports, err := s.payrollRepo.ListReportsForEmployee(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, payroll.ReportResponse{
			Year:      r.Year,
			Month:     r.Month,
			Breakdown: CalculateAcupunctureReport(r),
		})
	}

	return responses, nil
}
