package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/holiday"
	"github.com/choongman-erp/erp-backend-go/internal/domain/schedule"
	"github.com/choongman-erp/erp-backend-go/internal/handler/http/response"
	"github.com/choongman-erp/erp-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Store handlers
	ListStores(w http.ResponseWriter, r *http.Request)
	GetStore(w http.ResponseWriter, r *http.Request)

	// Shift handlers
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpsertShift(w http.ResponseWriter, r *http.Request)

	// Holiday handlers
	ListHolidays(w http.ResponseWriter, r *http.Request)
	UpsertHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== STORE HANDLERS ====================

func (h *masterHandlerImpl) ListStores(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListStores(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) GetStore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetStore(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ==================== SHIFT HANDLERS ====================

func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	filter := schedule.ShiftListFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if storeID := r.URL.Query().Get("store_id"); storeID != "" {
		filter.StoreID = &storeID
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	results, err := h.masterService.ListShifts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpsertShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpsertShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift saved successfully", result)
}

// ==================== HOLIDAY HANDLERS ====================

func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	results, err := h.masterService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpsertHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpsertHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpsertHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday saved successfully", result)
}

func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}
