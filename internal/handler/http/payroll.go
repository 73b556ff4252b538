package http

import (
	"net/http"
	"strconv"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"
	"github.com/lotus-wellness/payroll-backend-go/internal/handler/http/response"
	payrollservice "github.com/lotus-wellness/payroll-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	GetPayrolls(w http.ResponseWriter, r *http.Request)
	GetCashAndTips(w http.ResponseWriter, r *http.Request)
	GetAcupunctureReports(w http.ResponseWriter, r *http.Request)
}

type payrollHandler struct {
	payrollService *payrollservice.Service
}

func NewPayrollHandler(payrollService *payrollservice.Service) PayrollHandler {
	return &payrollHandler{payrollService: payrollService}
}

func (h *payrollHandler) GetPayrolls(w http.ResponseWriter, r *http.Request) {
	employeeID, err := EmployeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, "Query parameters year and month must be integers", nil)
		return
	}

	payrolls, err := h.payrollService.GetPayrolls(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payrolls)
}

func (h *payrollHandler) GetCashAndTips(w http.ResponseWriter, r *http.Request) {
	employeeID, err := EmployeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, "Query parameters year and month must be integers", nil)
		return
	}

	breakdowns, err := h.payrollService.GetCashAndTips(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdowns)
}

func (h *payrollHandler) GetAcupunctureReports(w http.ResponseWriter, r *http.Request) {
	employeeID, err := EmployeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, "Query parameters year and month must be integers", nil)
		return
	}

	reports, err := h.payrollService.GetAcupunctureReports(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

func parsePeriod(r *http.Request) (year, month int, err error) {
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, payroll.ErrInvalidPeriod
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, payroll.ErrInvalidPeriod
	}
	return year, month, nil
}
