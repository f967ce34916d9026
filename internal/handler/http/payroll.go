package http

import (
	"encoding/json"
	"net/http"

	"github.com/choongman-erp/erp-backend-go/internal/domain/payroll"
	"github.com/choongman-erp/erp-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Preview implements PayrollHandler.
func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	req := payroll.PreviewRequest{
		Month: r.URL.Query().Get("month"),
	}
	if storeID := r.URL.Query().Get("store_id"); storeID != "" {
		req.StoreID = &storeID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Save implements PayrollHandler.
func (h *payrollHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll saved successfully", results)
}

// Records implements PayrollHandler.
func (h *payrollHandlerImpl) Records(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	var storeID *string
	if s := r.URL.Query().Get("store_id"); s != "" {
		storeID = &s
	}

	req := payroll.PreviewRequest{Month: month, StoreID: storeID}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.Records(r.Context(), month, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Confirm implements PayrollHandler.
func (h *payrollHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	var req payroll.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.payrollService.Confirm(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll confirmed successfully", nil)
}
