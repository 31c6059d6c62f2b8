package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/payroll"
	"github.com/smilepoint-dental/clinic-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	allowance := decimal.Zero
	if v := q.Get("transportation_allowance"); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			response.BadRequest(w, "transportation_allowance must be a number", nil)
			return
		}
		allowance = parsed
	}

	req := payroll.SummarizeRequest{
		EmployeeID:              q.Get("employee_id"),
		EmployeeName:            q.Get("employee_name"),
		EmployeeType:            q.Get("employee_type"),
		StartDate:               q.Get("start_date"),
		EndDate:                 q.Get("end_date"),
		TransportationAllowance: allowance,
	}

	result, err := h.payrollService.Summarize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
