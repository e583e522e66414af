// Package server exposes a translation store over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/dotlocale/middlewares"
	"github.com/dmitrymomot/dotlocale/pkg/health"
	"github.com/dmitrymomot/dotlocale/pkg/i18n"
	"github.com/dmitrymomot/dotlocale/pkg/logger"
)

// Server serves lookups against one Store.
type Server struct {
	store  *i18n.Store
	logger *slog.Logger
	checks health.Checks
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReadinessChecks adds named checks to /health/ready.
func WithReadinessChecks(checks health.Checks) Option {
	return func(s *Server) {
		for name, check := range checks {
			s.checks[name] = check
		}
	}
}

// New creates a Server. The store is always checked for readiness.
func New(store *i18n.Store, opts ...Option) *Server {
	s := &Server{
		store:  store,
		logger: logger.NewNope(),
		checks: health.Checks{"store": health.StoreCheck(store)},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
//
//	GET /locales             loaded locales, default first
//	GET /t/{locale}/{path}   resolve path; ?count=N calls a plural, other
//	                         query parameters become placeholders; a locale
//	                         that is not loaded is matched to the closest
//	                         loaded one
//	GET /health/live
//	GET /health/ready
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(s.logger))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(s.checks, health.WithLogger(s.logger)))

	r.Get("/locales", s.handleLocales)
	negotiate := middlewares.I18n(s.store, middlewares.WithI18nExtractor(middlewares.NewExtractor(
		middlewares.FromURLParam("locale"),
		middlewares.FromAcceptLanguage(s.store.Languages()),
	)))
	r.With(negotiate).Get("/t/{locale}", s.handleTranslate)
	r.With(negotiate).Get("/t/{locale}/*", s.handleTranslate)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	return r
}
