// Package api implements the HTTP surface of the portal: login, session
// verification, admin athlete search and the shared-sessions config
// endpoint.
package api

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/planportal/planportal/internal/config"
	"github.com/planportal/planportal/internal/credstore"
)

// API holds the dependencies needed by the REST handlers. All fields are
// set at construction and never mutated, so handlers can run concurrently
// without coordination.
type API struct {
	store          *credstore.Store
	admin          credstore.Admin
	secret         []byte
	fellesOkterURL string
	production     bool
	logger         *slog.Logger
}

// Option configures the API instance.
type Option func(*API)

// WithLogger sets the structured logger for internal errors.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		a.logger = logger
	}
}

// New creates a new API instance from the loaded configuration and
// credential store.
func New(cfg *config.Config, store *credstore.Store, opts ...Option) *API {
	a := &API{
		store: store,
		admin: credstore.Admin{
			UsernameHash: cfg.AdminUsernameHash,
			PasswordHash: cfg.AdminPasswordHash,
		},
		secret:         []byte(cfg.JWTSecret),
		fellesOkterURL: cfg.FellesOkterURL,
		production:     cfg.Production,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return a
}

// Router returns a chi.Router with all API routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/login", a.Login)
	r.Get("/verify", a.Verify)
	r.Post("/admin-search", a.AdminSearch)
	r.Get("/felles-okter-url", a.FellesOkterURL)

	return r
}
