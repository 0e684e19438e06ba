package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lexi/pkg/platform/httputil"
	"lexi/pkg/requestcontext"
)

// CacheInvalidator drops cached reference data.
type CacheInvalidator interface {
	Invalidate()
}

// AdminHandler exposes operator endpoints. Callers mount it behind
// admin.RequireAdminToken.
type AdminHandler struct {
	cache  CacheInvalidator
	logger *slog.Logger
}

// NewAdmin constructs the admin handler.
func NewAdmin(cache CacheInvalidator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{cache: cache, logger: logger}
}

// Register mounts admin endpoints on the router.
func (h *AdminHandler) Register(r chi.Router) {
	r.Post("/admin/cache/invalidate", h.HandleInvalidate)
}

// HandleInvalidate handles POST /admin/cache/invalidate. The next lookup
// refetches states and commissions from upstream.
func (h *AdminHandler) HandleInvalidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.cache.Invalidate()
	h.logAction(ctx, "reference cache invalidated")
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}

func (h *AdminHandler) logAction(ctx context.Context, msg string) {
	h.logger.InfoContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"client_ip", requestcontext.ClientIP(ctx),
	)
}
