package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"lexi/internal/jagriti/models"
	"lexi/internal/jagriti/service"
	dErrors "lexi/pkg/domain-errors"
	"lexi/pkg/platform/httputil"
	"lexi/pkg/requestcontext"
)

// Service defines the reference-data and case search operations the handler exposes.
type Service interface {
	States(ctx context.Context) ([]models.State, error)
	Commissions(ctx context.Context, stateID int) ([]models.Commission, error)
	StateByName(ctx context.Context, name string) (*models.State, error)
	StateByID(ctx context.Context, id int) (*models.State, error)
	CommissionByName(ctx context.Context, name string, stateID int) (*models.Commission, error)
	Search(ctx context.Context, req service.SearchRequest) ([]models.Case, error)
}

// Handler wires the jagriti endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a jagriti handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the jagriti endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/states", h.HandleListStates)
	r.Get("/states/lookup", h.HandleLookupState)
	r.Get("/states/{stateID}", h.HandleGetState)
	r.Get("/states/{stateID}/commissions", h.HandleListCommissions)
	r.Get("/states/{stateID}/commissions/lookup", h.HandleLookupCommission)
	r.Post("/cases/search", h.HandleSearch)
	r.Get("/search-types", h.HandleSearchTypes)
}

// HandleListStates handles GET /states.
func (h *Handler) HandleListStates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	states, err := h.service.States(ctx)
	if err != nil {
		h.fail(ctx, w, "list states failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, StatesResponse{States: states})
}

// HandleLookupState handles GET /states/lookup?name=.
func (h *Handler) HandleLookupState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, ok := requiredQuery(w, r, "name")
	if !ok {
		return
	}
	state, err := h.service.StateByName(ctx, name)
	if err != nil {
		h.fail(ctx, w, "state lookup failed", err, "name", name)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state)
}

// HandleGetState handles GET /states/{stateID}.
func (h *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stateID, ok := stateIDParam(w, r)
	if !ok {
		return
	}
	state, err := h.service.StateByID(ctx, stateID)
	if err != nil {
		h.fail(ctx, w, "state lookup failed", err, "state_id", stateID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state)
}

// HandleListCommissions handles GET /states/{stateID}/commissions.
func (h *Handler) HandleListCommissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stateID, ok := stateIDParam(w, r)
	if !ok {
		return
	}
	commissions, err := h.service.Commissions(ctx, stateID)
	if err != nil {
		h.fail(ctx, w, "list commissions failed", err, "state_id", stateID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CommissionsResponse{StateID: stateID, Commissions: commissions})
}

// HandleLookupCommission handles GET /states/{stateID}/commissions/lookup?name=.
func (h *Handler) HandleLookupCommission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stateID, ok := stateIDParam(w, r)
	if !ok {
		return
	}
	name, ok := requiredQuery(w, r, "name")
	if !ok {
		return
	}
	commission, err := h.service.CommissionByName(ctx, name, stateID)
	if err != nil {
		h.fail(ctx, w, "commission lookup failed", err, "state_id", stateID, "name", name)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, commission)
}

// HandleSearch handles POST /cases/search.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SearchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cases, err := h.service.Search(ctx, req.ToService())
	if err != nil {
		h.fail(ctx, w, "case search failed", err, "search_type", req.SearchType)
		return
	}

	h.logger.InfoContext(ctx, "case search served",
		"request_id", requestID,
		"search_type", req.SearchType,
		"results", len(cases),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromCases(cases))
}

// HandleSearchTypes handles GET /search-types.
func (h *Handler) HandleSearchTypes(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromSearchTypes(models.SearchTypes()))
}

// fail logs err at a level matching its class and writes the error response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	args := append([]any{"request_id", requestcontext.RequestID(ctx), "error", err}, attrs...)
	switch dErrors.CodeOf(err) {
	case dErrors.CodeNotFound, dErrors.CodeValidation, dErrors.CodeBadRequest:
		h.logger.InfoContext(ctx, msg, args...)
	default:
		h.logger.ErrorContext(ctx, msg, args...)
	}
	httputil.WriteError(w, err)
}

func stateIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "stateID")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "state ID must be a positive integer"))
		return 0, false
	}
	return id, true
}

func requiredQuery(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, key+" is required"))
		return "", false
	}
	return v, true
}
