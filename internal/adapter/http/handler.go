package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"spend-guard/internal/core/port"
	"spend-guard/internal/metrics"
)

// Options carries the optional collaborators of a Handler.
type Options struct {
	// Metrics is exposed on MetricsPath when non-nil and also records
	// request counts and latencies.
	Metrics     *metrics.Metrics
	MetricsPath string
	// Ping backs /healthz. A nil Ping always reports healthy.
	Ping func(ctx context.Context) error
	// Now and Location produce the instant handed to the control
	// endpoints. They default to time.Now and UTC.
	Now      func() time.Time
	Location *time.Location
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the admin, ledger and control use cases and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	admin   port.Admin
	ledger  port.SpendLedger
	control port.Controller
	opts    Options
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(admin port.Admin, ledger port.SpendLedger, control port.Controller, logger *slog.Logger, opts Options) *Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	h := &Handler{
		admin:   admin,
		ledger:  ledger,
		control: control,
		opts:    opts,
		logger:  logger.With("component", "http"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.observe)

	r.Get("/healthz", h.handleHealth)
	if opts.Metrics != nil {
		r.Handle(opts.MetricsPath, opts.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", h.handleListBrands)
			r.Post("/", h.handleCreateBrand)
			r.Get("/{id}", h.handleGetBrand)
			r.Put("/{id}", h.handleUpdateBrand)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Put("/{id}/schedule", h.handleSetSchedule)
			r.Delete("/{id}/schedule", h.handleRemoveSchedule)
			r.Post("/{id}/spend", h.handleRecordSpend)
		})
		r.Get("/spend-logs", h.handleListSpendLogs)
		r.Route("/control", func(r chi.Router) {
			r.Post("/reconcile", h.handleReconcile)
			r.Post("/reset/daily", h.handleResetDaily)
			r.Post("/reset/monthly", h.handleResetMonthly)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.opts.Ping != nil {
		if err := h.opts.Ping(r.Context()); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// observe records request metrics under the matched route pattern so path
// parameters do not explode label cardinality.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.opts.Metrics.ObserveHTTP(r.Method, route, status, time.Since(start))
	})
}

// now returns the current instant in the configured zone.
func (h *Handler) now() time.Time {
	return h.opts.Now().In(h.opts.Location)
}
