package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lotus-wellness/payroll-backend-go/internal/domain/auth"
	"github.com/lotus-wellness/payroll-backend-go/internal/handler/http/response"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/holiday"
	payoutservice "github.com/lotus-wellness/payroll-backend-go/internal/service/payout"
)

type ScheduleHandler interface {
	GetSchedule(w http.ResponseWriter, r *http.Request)
	GetScheduleRange(w http.ResponseWriter, r *http.Request)
	SignSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandler struct {
	payoutService *payoutservice.Service
}

func NewScheduleHandler(payoutService *payoutservice.Service) ScheduleHandler {
	return &scheduleHandler{payoutService: payoutService}
}

// GetSchedule returns the schedule for the requested date, or today's
// schedule when the date query parameter is absent, together with the
// live payout computed against completed reservations.
func (h *scheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID, err := EmployeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := payoutservice.Today()
	date, err := parseScheduleDate(r, now)
	if err != nil {
		response.BadRequest(w, "Query parameter date must be formatted as YYYY-MM-DD", nil)
		return
	}

	sched, err := h.payoutService.GetForDate(r.Context(), employeeID, date, now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sched)
}

// GetScheduleRange returns the schedules between the start and end
// query parameters inclusive.
func (h *scheduleHandler) GetScheduleRange(w http.ResponseWriter, r *http.Request) {
	employeeID, err := EmployeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("start"), holiday.Location())
	if err != nil {
		response.BadRequest(w, "Query parameters start and end must be formatted as YYYY-MM-DD", nil)
		return
	}
	end, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("end"), holiday.Location())
	if err != nil {
		response.BadRequest(w, "Query parameters start and end must be formatted as YYYY-MM-DD", nil)
		return
	}

	scheds, err := h.payoutService.ListForRange(r.Context(), employeeID, start, end, payoutservice.Today())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, scheds)
}

func (h *scheduleHandler) SignSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID, err := EmployeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", chi.URLParam(r, "date"), holiday.Location())
	if err != nil {
		response.BadRequest(w, "Path parameter date must be formatted as YYYY-MM-DD", nil)
		return
	}

	if err := h.payoutService.Sign(r.Context(), employeeID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule signed", nil)
}

func parseScheduleDate(r *http.Request, now time.Time) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, holiday.Location()), nil
	}
	return time.ParseInLocation("2006-01-02", raw, holiday.Location())
}

// EmployeeIDFromContext extracts the authenticated employee's id from
// the verified token claims. Claim numbers decode as float64.
func EmployeeIDFromContext(ctx context.Context) (int, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	id, ok := claims["employee_id"].(float64)
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return int(id), nil
}
