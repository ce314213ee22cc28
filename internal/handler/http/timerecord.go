package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/audit"
	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
	"github.com/kintai-app/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/kintai-app/timeclock-backend-go/internal/handler/http/response"
	"github.com/kintai-app/timeclock-backend-go/internal/service/export"
	"github.com/go-chi/chi/v5"
)

type TimeRecordHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Cleanup(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	ListAudit(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
	exportService     export.Service
	auditRepo         audit.AuditRepository
}

func NewTimeRecordHandler(
	timeRecordService timerecord.TimeRecordService,
	exportService export.Service,
	auditRepo audit.AuditRepository,
) TimeRecordHandler {
	return &timeRecordHandlerImpl{
		timeRecordService: timeRecordService,
		exportService:     exportService,
		auditRepo:         auditRepo,
	}
}

// ClockIn implements TimeRecordHandler. The employee is taken from the
// session, not the request body.
func (h *timeRecordHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req := timerecord.ClockInRequest{EmployeeID: middleware.SessionEmployeeID(r.Context())}

	resp, err := h.timeRecordService.ClockIn(r.Context(), req, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked in", resp)
}

// ClockOut implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req := timerecord.ClockOutRequest{EmployeeID: middleware.SessionEmployeeID(r.Context())}

	resp, err := h.timeRecordService.ClockOut(r.Context(), req, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", resp)
}

// GetToday implements TimeRecordHandler. Responds with null data when no
// record exists yet.
func (h *timeRecordHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.SessionEmployeeID(r.Context())

	rec, err := h.timeRecordService.GetTodayRecord(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// ListByEmployee implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year := r.URL.Query().Get("year")
	month := r.URL.Query().Get("month")

	recs, err := h.timeRecordService.ListEmployeeRecords(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recs)
}

// List implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.timeRecordService.ListRecords(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recs)
}

// ExportCSV implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="time_records_%s.csv"`, time.Now().Format("20060102")))

	err := h.exportService.WriteRecordsCSV(r.Context(), w,
		query.Get("employee_id"), query.Get("year"), query.Get("month"))
	if err != nil {
		// Headers may already be out; nothing sensible left to send.
		return
	}
}

// Correct implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CorrectRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timeRecordService.CorrectRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record corrected", resp)
}

// Delete implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	var req timerecord.DeleteRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timeRecordService.DeleteRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", resp)
}

// Cleanup implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) Cleanup(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CleanupRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	resp, err := h.timeRecordService.CleanupIncomplete(r.Context(), req.WindowDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cleanup complete", resp)
}

// Recalculate implements TimeRecordHandler.
func (h *timeRecordHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timeRecordService.RecalculateAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recalculation complete", resp)
}

// ListAudit implements TimeRecordHandler. The record ID is the composite
// "<employee_id>-<record_date>" key.
func (h *timeRecordHandlerImpl) ListAudit(w http.ResponseWriter, r *http.Request) {
	recordID := r.URL.Query().Get("record_id")
	if recordID == "" {
		response.BadRequest(w, "record_id query parameter is required", nil)
		return
	}

	entries, err := h.auditRepo.ListByRecord(r.Context(), recordID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
