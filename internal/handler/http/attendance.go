package http

import (
	"encoding/json"
	"net/http"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	SubmitEvent(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DailySummaries(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ForceClockOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// SubmitEvent implements AttendanceHandler.
func (h *attendanceHandlerImpl) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.SubmitEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !result.Accepted {
		// A duplicate is a definite answer, not a failure.
		response.SuccessWithMessage(w, result.Message, result)
		return
	}
	response.Created(w, result.Message, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DailySummaries implements AttendanceHandler.
func (h *attendanceHandlerImpl) DailySummaries(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.DailySummaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve implements AttendanceHandler.
func (h *attendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.Approve(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance event processed successfully", nil)
}

// ForceClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ForceClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ForceClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ForceClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

func listFilterFromQuery(r *http.Request) attendance.ListFilter {
	filter := attendance.ListFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if storeID := r.URL.Query().Get("store_id"); storeID != "" {
		filter.StoreID = &storeID
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	return filter
}
