package http

import (
	"encoding/json"
	"net/http"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/handler/http/response"
)

type CommissionHandler interface {
	RecordBilledService(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type commissionHandlerImpl struct {
	commissionService commission.Service
}

func NewCommissionHandler(commissionService commission.Service) CommissionHandler {
	return &commissionHandlerImpl{commissionService: commissionService}
}

func (h *commissionHandlerImpl) RecordBilledService(w http.ResponseWriter, r *http.Request) {
	var req commission.BilledServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.commissionService.RecordBilledService(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Commission records created", result)
}

func (h *commissionHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := commission.Filter{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	result, err := h.commissionService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
