package staffhandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/api"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/middleware"
)

// Handler exposes the read-only staff directory view. Staff records are
// managed by the upstream directory, never written from here.
type Handler struct {
	Store *staff.Store
}

func NewHandler(store *staff.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/staff", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/{staffID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	members, err := h.Store.List(r.Context())
	if err != nil {
		slog.Warn("staff list failed", "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "staff_list_failed", "failed to list staff", requestID)
		return
	}
	api.Success(w, members, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	member, err := h.Store.Get(r.Context(), chi.URLParam(r, "staffID"))
	if errors.Is(err, staff.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "staff_not_found", "staff member not found", requestID)
		return
	}
	if err != nil {
		slog.Warn("staff get failed", "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "staff_get_failed", "failed to load staff member", requestID)
		return
	}
	api.Success(w, member, requestID)
}
