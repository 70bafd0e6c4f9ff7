// Package rest exposes the loan application HTTP API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crediya/loan-service/internal/domain/errs"
	"github.com/crediya/loan-service/internal/domain/model"
	"github.com/crediya/loan-service/pkg/auth"
)

// applicationSubmitter runs the loan submission pipeline.
type applicationSubmitter interface {
	Execute(ctx context.Context, a *model.Application) (*model.Application, error)
}

// pendingLister serves the advisor review queue.
type pendingLister interface {
	Execute(ctx context.Context, criteria model.PendingCriteria) (model.Page[model.PendingRow], error)
}

// ApplicationHandler serves the loan application endpoints.
type ApplicationHandler struct {
	submit  applicationSubmitter
	pending pendingLister
	logger  *slog.Logger
}

// NewApplicationHandler creates the loan application HTTP handler.
func NewApplicationHandler(submit applicationSubmitter, pending pendingLister, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		submit:  submit,
		pending: pending,
		logger:  logger,
	}
}

// RegisterRoutes attaches the application routes to the given mux. The
// pending listing is restricted to advisors.
func (h *ApplicationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/solicitud", h.create)
	mux.Handle("GET /api/v1/solicitud/pending", auth.RequireRole(auth.RoleAdvisor, h.listPending))
}

func (h *ApplicationHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto applicationSaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			h.writeError(r.Context(), w, errs.NewValidation("", errs.MsgBodyRequired))
			return
		}
		h.writeError(r.Context(), w, errs.NewValidation("", "malformed request body"))
		return
	}

	app, err := dto.toModel()
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	saved, err := h.submit.Execute(r.Context(), app)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(saved))
}

func (h *ApplicationHandler) listPending(w http.ResponseWriter, r *http.Request) {
	criteria, err := parsePendingCriteria(r)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	page, err := h.pending.Execute(r.Context(), criteria)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// parsePendingCriteria reads listing parameters from the query string.
// Out-of-range page and size values are normalized downstream; only
// non-numeric input is rejected here.
func parsePendingCriteria(r *http.Request) (model.PendingCriteria, error) {
	q := r.URL.Query()
	criteria := model.PendingCriteria{Filter: q.Get("filter")}

	var err error
	if criteria.Page, err = queryInt(q.Get("page"), 0); err != nil {
		return model.PendingCriteria{}, errs.NewValidation("page", "page must be an integer")
	}
	if criteria.Size, err = queryInt(q.Get("size"), 0); err != nil {
		return model.PendingCriteria{}, errs.NewValidation("size", "size must be an integer")
	}

	if v := q.Get("stateId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return model.PendingCriteria{}, errs.NewValidation("stateId", "stateId must be an integer")
		}
		criteria.StateID = &id
	}
	if v := q.Get("loanTypeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return model.PendingCriteria{}, errs.NewValidation("loanTypeId", "loanTypeId must be an integer")
		}
		criteria.LoanTypeID = &id
	}
	return criteria, nil
}

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// writeError maps domain errors to HTTP statuses: validation failures are
// the caller's fault, configuration failures and everything else are ours.
func (h *ApplicationHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if vErr, ok := errs.AsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Field: vErr.Field, Message: vErr.Message})
		return
	}
	if cErr, ok := errs.AsConfiguration(err); ok {
		h.logger.ErrorContext(ctx, "configuration error", "error", cErr.Message)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: cErr.Message})
		return
	}

	h.logger.ErrorContext(ctx, "request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}
