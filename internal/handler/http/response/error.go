package response

import (
	"errors"
	"net/http"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/auth"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/employee"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/schedule"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrReportNotFound):
		NotFound(w, "Acupuncture report not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrUnknownOption):
		InternalServerError(w, "Payroll has an unknown role option")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrAlreadySigned):
		Conflict(w, "Schedule already signed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
