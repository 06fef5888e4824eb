package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/payroll"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/api"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/middleware"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequirePrivileged)
		r.Post("/records/compute", h.handleCompute)
		r.Get("/records", h.handleListRecords)
		r.Get("/records/{recordID}", h.handleGetRecord)
		r.Get("/records/{recordID}/payslip.pdf", h.handlePayslipPDF)
		r.Post("/records/{recordID}/finalize", h.handleFinalize)
		r.Post("/records/{recordID}/mark-paid", h.handleMarkPaid)
		r.Delete("/records/{recordID}", h.handleDeleteDraft)
	})
}

type computePayload struct {
	StaffID    string  `json:"staffId"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Commission float64 `json:"commission"`
}

func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload computePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("staffId", payload.StaffID, "staff id is required")
	v.IntRange("month", payload.Month, 1, 12, "month must be between 1 and 12")
	v.IntRange("year", payload.Year, 2000, 2100, "year must be a plausible calendar year")
	if payload.Commission < 0 {
		v.Add("commission", "must not be negative")
	}
	if v.Reject(w, requestID) {
		return
	}

	record, err := h.Service.ComputeDraft(r.Context(), payload.StaffID, payload.Month, payload.Year, payload.Commission)
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filter := payroll.RecordFilter{
		StaffID: r.URL.Query().Get("staffId"),
		Status:  r.URL.Query().Get("status"),
	}
	for name, target := range map[string]*int{"month": &filter.Month, "year": &filter.Year} {
		if raw := r.URL.Query().Get(name); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				api.Fail(w, http.StatusBadRequest, "invalid_payload", name+" must be an integer", requestID)
				return
			}
			*target = parsed
		}
	}

	records, err := h.Service.List(r.Context(), filter)
	if err != nil {
		slog.Warn("payroll list failed", "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "payroll_list_failed", "failed to list salary records", requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	record, err := h.Service.Get(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	record, err := h.Service.Get(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}

	pdfBytes, err := payroll.PayslipPDF(record)
	if err != nil {
		slog.Warn("payslip render failed", "requestId", requestID, "recordId", record.ID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%04d-%02d.pdf"`, record.Year, record.Month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) handleFinalize(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.Service.Finalize(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": payroll.StatusFinalized}, requestID)
}

func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.Service.MarkPaid(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": payroll.StatusPaid}, requestID)
}

func (h *Handler) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.Service.DeleteDraft(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func failPayroll(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, payroll.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "salary_record_not_found", "salary record not found", requestID)
	case errors.Is(err, staff.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "staff_not_found", "staff member not found", requestID)
	case errors.Is(err, payroll.ErrConflict):
		api.Fail(w, http.StatusConflict, "payroll_conflict", "salary record is not in the required status", requestID)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month must be between 1 and 12", requestID)
	default:
		slog.Warn("payroll operation failed", "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "payroll operation failed", requestID)
	}
}
