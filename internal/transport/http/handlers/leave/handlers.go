package leavehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/leave"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/api"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/middleware"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequireAuth).Post("/requests", h.handleCreateRequest)
		r.With(middleware.RequireAuth).Get("/requests", h.handleListRequests)
		r.With(middleware.RequireAuth).Get("/requests/{requestID}", h.handleGetRequest)
		r.With(middleware.RequireAuth).Get("/quota", h.handleQuota)
		r.With(middleware.RequirePrivileged).Patch("/requests/{requestID}", h.handleUpdateRequest)
		r.With(middleware.RequirePrivileged).Delete("/requests/{requestID}", h.handleDeleteRequest)
	})
}

type createRequestPayload struct {
	StaffID   string `json:"staffId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Kind      string `json:"kind"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("staffId", payload.StaffID, "staff id is required")
	v.Enum("kind", payload.Kind, []string{leave.KindPaid, leave.KindUnpaid}, "kind must be paid or unpaid")
	v.Required("kind", payload.Kind, "kind is required")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Service.CreateRequest(r.Context(), leave.CreateRequestInput{
		StaffID:   payload.StaffID,
		StartDate: start,
		EndDate:   end,
		Kind:      strings.ToLower(strings.TrimSpace(payload.Kind)),
		Reason:    payload.Reason,
	})
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filter := leave.RequestFilter{
		StaffID: r.URL.Query().Get("staffId"),
		Kind:    r.URL.Query().Get("kind"),
		Status:  r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "year must be an integer", requestID)
			return
		}
		filter.Year = year
	}

	requests, err := h.Service.ListRequests(r.Context(), filter)
	if err != nil {
		slog.Warn("leave list failed", "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, err := h.Service.GetRequest(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, req, requestID)
}

func (h *Handler) handleQuota(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	staffID := r.URL.Query().Get("staffId")
	if staffID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "staffId is required", requestID)
		return
	}
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "year must be an integer", requestID)
			return
		}
		year = parsed
	}

	summary, err := h.Service.Quota(r.Context(), staffID, year)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, summary, requestID)
}

type updateRequestPayload struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Kind      *string `json:"kind"`
	Reason    *string `json:"reason"`
	Status    *string `json:"status"`
}

func (h *Handler) handleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload updateRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	input := leave.UpdateRequestInput{Reason: payload.Reason}
	if payload.StartDate != nil {
		if start, ok := v.Date("startDate", *payload.StartDate); ok {
			input.StartDate = &start
		}
	}
	if payload.EndDate != nil {
		if end, ok := v.Date("endDate", *payload.EndDate); ok {
			input.EndDate = &end
		}
	}
	if payload.Kind != nil {
		kind := strings.ToLower(strings.TrimSpace(*payload.Kind))
		v.Enum("kind", kind, []string{leave.KindPaid, leave.KindUnpaid}, "kind must be paid or unpaid")
		input.Kind = &kind
	}
	if payload.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*payload.Status))
		v.Enum("status", status, []string{leave.StatusPending, leave.StatusApproved, leave.StatusRejected}, "status must be pending, approved or rejected")
		input.Status = &status
	}
	if v.Reject(w, requestID) {
		return
	}

	updated, err := h.Service.UpdateRequest(r.Context(), chi.URLParam(r, "requestID"), input)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.Service.DeleteRequest(r.Context(), chi.URLParam(r, "requestID")); err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func failLeave(w http.ResponseWriter, err error, requestID string) {
	var quotaErr *leave.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "quota_exceeded", quotaErr.Error(), map[string]int{
			"requestedDays":  quotaErr.Requested,
			"usedQuota":      quotaErr.Used,
			"totalQuota":     quotaErr.Total,
			"remainingQuota": quotaErr.Remaining,
		}, requestID)
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "leave_not_found", "leave request not found", requestID)
	case errors.Is(err, staff.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "staff_not_found", "staff member not found", requestID)
	case errors.Is(err, leave.ErrStaffInactive):
		api.Fail(w, http.StatusBadRequest, "staff_inactive", "staff member is not active", requestID)
	case errors.Is(err, leave.ErrInvalidSpan):
		api.Fail(w, http.StatusBadRequest, "invalid_span", "end date must not be before start date", requestID)
	default:
		slog.Warn("leave operation failed", "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "leave_request_failed", "leave operation failed", requestID)
	}
}
