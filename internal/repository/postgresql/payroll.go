package postgresql

import (
	"context"
	"fmt"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) ListForEmployee(ctx context.Context, employeeID, year, month int) ([]payroll.Payroll, error) {
	query := `
		SELECT p.year, p.month, p.part, p.option, p.cheque_amount,
			   p.created_at, p.updated_at,
			   e.employee_id, e.username, e.password_hash, e.first_name, e.last_name,
			   e.gender, e.role, e.body_rate, e.feet_rate, e.acupuncture_rate, e.per_hour,
			   e.created_at, e.updated_at, e.deleted_at
		FROM payrolls p
		JOIN employees e ON e.employee_id = p.employee_id
		WHERE p.employee_id = $1 AND p.year = $2 AND p.month = $3
		ORDER BY p.part
	`

	rows, err := r.db.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.Year, &p.Month, &p.Part, &p.Option, &p.ChequeAmount,
			&p.CreatedAt, &p.UpdatedAt,
			&p.Employee.ID, &p.Employee.Username, &p.Employee.PasswordHash,
			&p.Employee.FirstName, &p.Employee.LastName,
			&p.Employee.Gender, &p.Employee.Role, &p.Employee.BodyRate, &p.Employee.FeetRate,
			&p.Employee.AcupunctureRate, &p.Employee.PerHour,
			&p.Employee.CreatedAt, &p.Employee.UpdatedAt, &p.Employee.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}

	for i := range payrolls {
		payrolls[i].Data, err = r.listRows(ctx, employeeID, year, month, payrolls[i].Part)
		if err != nil {
			return nil, err
		}
	}

	return payrolls, nil
}

func (r *payrollRepository) listRows(ctx context.Context, employeeID, year, month int, part payroll.Part) ([]payroll.Row, error) {
	query := `
		SELECT date, body_sessions, feet_sessions, acupuncture_sessions,
			   requested_body_sessions, requested_feet_sessions, requested_acupuncture_sessions,
			   start, "end", award_amount, vip_amount, total_cash_out, tips
		FROM payroll_rows
		WHERE employee_id = $1 AND year = $2 AND month = $3 AND part = $4
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, employeeID, year, month, part)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll rows: %w", err)
	}
	defer rows.Close()

	var data []payroll.Row
	for rows.Next() {
		var row payroll.Row
		err := rows.Scan(
			&row.Date, &row.BodySessions, &row.FeetSessions, &row.AcupunctureSessions,
			&row.RequestedBodySessions, &row.RequestedFeetSessions, &row.RequestedAcupunctureSessions,
			&row.Start, &row.End, &row.AwardAmount, &row.VipAmount, &row.TotalCashOut, &row.Tips,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payroll rows: %w", err)
	}

	return data, nil
}

func (r *payrollRepository) ListReportsForEmployee(ctx context.Context, employeeID, year, month int) ([]payroll.AcupunctureReport, error) {
	query := `
		SELECT ar.year, ar.month,
			   ar.acupuncture_percentage, ar.massage_percentage, ar.insurance_percentage,
			   COALESCE(ar.non_acupuncturist_insurance_percentage, 0),
			   ar.created_at, ar.updated_at,
			   e.employee_id, e.username, e.password_hash, e.first_name, e.last_name,
			   e.gender, e.role, e.body_rate, e.feet_rate, e.acupuncture_rate, e.per_hour,
			   e.created_at, e.updated_at, e.deleted_at
		FROM acupuncture_reports ar
		JOIN employees e ON e.employee_id = ar.employee_id
		WHERE ar.employee_id = $1 AND ar.year = $2 AND ar.month = $3
	`

	rows, err := r.db.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list acupuncture reports: %w", err)
	}
	defer rows.Close()

	var reports []payroll.AcupunctureReport
	for rows.Next() {
		var rep payroll.AcupunctureReport
		err := rows.Scan(
			&rep.Year, &rep.Month,
			&rep.AcupuncturePercentage, &rep.MassagePercentage, &rep.InsurancePercentage,
			&rep.NonAcupuncturistInsurancePercentage,
			&rep.CreatedAt, &rep.UpdatedAt,
			&rep.Employee.ID, &rep.Employee.Username, &rep.Employee.PasswordHash,
			&rep.Employee.FirstName, &rep.Employee.LastName,
			&rep.Employee.Gender, &rep.Employee.Role, &rep.Employee.BodyRate, &rep.Employee.FeetRate,
			&rep.Employee.AcupunctureRate, &rep.Employee.PerHour,
			&rep.Employee.CreatedAt, &rep.Employee.UpdatedAt, &rep.Employee.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan acupuncture report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list acupuncture reports: %w", err)
	}

	for i := range reports {
		reports[i].Data, err = r.listReportRows(ctx, employeeID, year, month)
		if err != nil {
			return nil, err
		}
	}

	return reports, nil
}

func (r *payrollRepository) listReportRows(ctx context.Context, employeeID, year, month int) ([]payroll.ReportRow, error) {
	query := `
		SELECT date, acupuncture, massage, insurance,
			   COALESCE(non_acupuncturist_insurance, 0)
		FROM acupuncture_report_rows
		WHERE employee_id = $1 AND year = $2 AND month = $3
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list acupuncture report rows: %w", err)
	}
	defer rows.Close()

	var data []payroll.ReportRow
	for rows.Next() {
		var row payroll.ReportRow
		err := rows.Scan(
			&row.Date, &row.Acupuncture, &row.Massage, &row.Insurance,
			&row.NonAcupuncturistInsurance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan acupuncture report row: %w", err)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list acupuncture report rows: %w", err)
	}

	return data, nil
}
