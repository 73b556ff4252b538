package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/schedule"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) GetByDate(ctx context.Context, employeeID int, date time.Time) (schedule.Schedule, error) {
	query := `
		SELECT s.date, s.is_working, s.on_call, s.start, s."end", s.priority,
			   s.add_award, s.award, s.signed,
			   e.employee_id, e.username, e.password_hash, e.first_name, e.last_name,
			   e.gender, e.role, e.body_rate, e.feet_rate, e.acupuncture_rate, e.per_hour,
			   e.created_at, e.updated_at, e.deleted_at
		FROM schedules s
		JOIN employees e ON e.employee_id = s.employee_id
		WHERE s.employee_id = $1 AND s.date = $2::date
	`

	var s schedule.Schedule
	err := r.db.QueryRow(ctx, query, employeeID, date).Scan(
		&s.Date, &s.IsWorking, &s.OnCall, &s.Start, &s.End, &s.Priority,
		&s.AddAward, &s.Award, &s.Signed,
		&s.Employee.ID, &s.Employee.Username, &s.Employee.PasswordHash,
		&s.Employee.FirstName, &s.Employee.LastName,
		&s.Employee.Gender, &s.Employee.Role, &s.Employee.BodyRate, &s.Employee.FeetRate,
		&s.Employee.AcupunctureRate, &s.Employee.PerHour,
		&s.Employee.CreatedAt, &s.Employee.UpdatedAt, &s.Employee.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	if s.Reservations, err = r.listReservations(ctx, employeeID, date); err != nil {
		return schedule.Schedule{}, err
	}
	if s.VipPackages, err = r.listVipPackages(ctx, employeeID, date); err != nil {
		return schedule.Schedule{}, err
	}

	return s, nil
}

func (r *scheduleRepository) ListForEmployee(ctx context.Context, employeeID int, start, end time.Time) ([]schedule.Schedule, error) {
	query := `
		SELECT date
		FROM schedules
		WHERE employee_id = $1 AND date BETWEEN $2::date AND $3::date
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan schedule date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	schedules := make([]schedule.Schedule, 0, len(dates))
	for _, d := range dates {
		s, err := r.GetByDate(ctx, employeeID, d)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

func (r *scheduleRepository) Sign(ctx context.Context, employeeID int, date time.Time) error {
	query := `
		UPDATE schedules
		SET signed = TRUE, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2::date AND signed = FALSE
	`

	tag, err := r.db.Exec(ctx, query, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to sign schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAlreadySigned
	}

	return nil
}

func (r *scheduleRepository) listReservations(ctx context.Context, employeeID int, date time.Time) ([]schedule.Reservation, error) {
	query := `
		SELECT res.reservation_id, res.employee_id, res.date, res.reserved_date,
			   res.time, res.beds_required, res.requested_gender, res.requested_employee,
			   res.cash, res.machine, res.vip, res.gift_card, res.insurance,
			   res.cash_out, res.tips, res.tip_method, res.message,
			   res.created_by, res.created_at, res.updated_by, res.updated_at,
			   srv.service_id, srv.service_name, srv.shorthand, srv.time, srv.money,
			   srv.body, srv.feet, srv.acupuncture, srv.beds_required, srv.color,
			   srv.created_at, srv.updated_at, srv.deleted_at
		FROM reservations res
		JOIN services srv ON srv.service_id = res.service_id
		WHERE res.employee_id = $1 AND res.date = $2::date
		ORDER BY res.reserved_date
	`

	rows, err := r.db.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []schedule.Reservation
	for rows.Next() {
		var res schedule.Reservation
		err := rows.Scan(
			&res.ID, &res.EmployeeID, &res.Date, &res.ReservedDate,
			&res.Time, &res.BedsRequired, &res.RequestedGender, &res.RequestedEmployee,
			&res.Cash, &res.Machine, &res.Vip, &res.GiftCard, &res.Insurance,
			&res.CashOut, &res.Tips, &res.TipMethod, &res.Message,
			&res.CreatedBy, &res.CreatedAt, &res.UpdatedBy, &res.UpdatedAt,
			&res.Service.ID, &res.Service.Name, &res.Service.Shorthand, &res.Service.Time, &res.Service.Money,
			&res.Service.Body, &res.Service.Feet, &res.Service.Acupuncture, &res.Service.BedsRequired, &res.Service.Color,
			&res.Service.CreatedAt, &res.Service.UpdatedAt, &res.Service.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return reservations, nil
}

func (r *scheduleRepository) listVipPackages(ctx context.Context, employeeID int, date time.Time) ([]schedule.VipPackage, error) {
	query := `
		SELECT v.vip_package_id, v.serial, v.sold_amount, v.commission_amount,
			   ARRAY(
				   SELECT ve.employee_id FROM vip_package_employees ve
				   WHERE ve.vip_package_id = v.vip_package_id
				   ORDER BY ve.employee_id
			   ),
			   v.created_at, v.updated_at
		FROM vip_packages v
		WHERE v.date = $2::date
		  AND EXISTS (
			  SELECT 1 FROM vip_package_employees ve
			  WHERE ve.vip_package_id = v.vip_package_id AND ve.employee_id = $1
		  )
		ORDER BY v.serial
	`

	rows, err := r.db.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list vip packages: %w", err)
	}
	defer rows.Close()

	var packages []schedule.VipPackage
	for rows.Next() {
		var v schedule.VipPackage
		err := rows.Scan(
			&v.ID, &v.Serial, &v.SoldAmount, &v.CommissionAmount,
			&v.EmployeeIDs,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vip package: %w", err)
		}
		packages = append(packages, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list vip packages: %w", err)
	}

	return packages, nil
}
