// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"homefolio/internal/auth"
	"homefolio/internal/cache"
	"homefolio/internal/config"
	"homefolio/internal/feed"
	"homefolio/internal/middleware"
	"homefolio/internal/netease"
	"homefolio/internal/settings"
	"homefolio/internal/steam"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server holds every dependency the handlers need.
type Server struct {
	cfg         *config.Config
	store       *settings.Store
	cache       *cache.Cache
	steam       *steam.Client
	netease     *netease.Client
	feed        *feed.Fetcher
	jwt         *auth.JWTManager
	credentials *auth.Credentials
	authMW      *auth.Middleware

	providerLimiter *middleware.IPRateLimiter

	startedAt time.Time
}

// Options bundles the server's constructor dependencies.
type Options struct {
	Config      *config.Config
	Store       *settings.Store
	Cache       *cache.Cache
	Steam       *steam.Client
	Netease     *netease.Client
	Feed        *feed.Fetcher
	JWT         *auth.JWTManager
	Credentials *auth.Credentials
}

// NewServer builds the server. Call Router to obtain the handler and Close
// on shutdown.
func NewServer(opts Options) *Server {
	return &Server{
		cfg:             opts.Config,
		store:           opts.Store,
		cache:           opts.Cache,
		steam:           opts.Steam,
		netease:         opts.Netease,
		feed:            opts.Feed,
		jwt:             opts.JWT,
		credentials:     opts.Credentials,
		authMW:          auth.NewMiddleware(opts.JWT),
		providerLimiter: middleware.NewIPRateLimiter(rate.Every(time.Second), 10),
		startedAt:       time.Now(),
	}
}

// Close releases background resources.
func (s *Server) Close() {
	s.providerLimiter.Stop()
}

// Router assembles the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Cache-Control", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/api/health", s.handleHealth)

	r.Route("/api/auth", func(r chi.Router) {
		if !s.cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(5, 5*time.Minute))
		}
		r.Post("/login", s.handleLogin)
	})

	r.Route("/api/admin", func(r chi.Router) {
		// Logout only clears the cookie; an expired session must still be
		// able to log out, so it sits outside the auth gate.
		r.Post("/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.authMW.Authenticate)
			r.Use(s.authMW.RequireAdmin)
			if !s.cfg.Security.RateLimitDisabled {
				r.Use(httprate.LimitByIP(30, time.Minute))
			}

			r.Get("/profile", s.handleAdminGetProfile)
			r.Post("/profile", s.handleAdminPutProfile)
			r.Put("/profile", s.handleAdminPutProfile)

			r.Get("/skills", s.handleAdminGetSkills)
			r.Post("/skills", s.handleAdminPutSkills)
			r.Put("/skills", s.handleAdminPutSkills)
			r.Post("/skills/reorder", s.handleAdminReorderSkills)

			r.Get("/projects", s.handleAdminGetProjects)
			r.Post("/projects", s.handleAdminPutProjects)
			r.Put("/projects", s.handleAdminPutProjects)
			r.Post("/projects/reorder", s.handleAdminReorderProjects)

			r.Get("/content", s.handleAdminListContent)
			r.Post("/content", s.handleAdminCreateContent)
			r.Get("/content/{id}", s.handleAdminGetContent)
			r.Put("/content/{id}", s.handleAdminUpdateContent)
			r.Delete("/content/{id}", s.handleAdminDeleteContent)
		})
	})

	r.Group(func(r chi.Router) {
		if !s.cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(100, time.Minute))
		}
		r.Get("/api/profile-public", s.handlePublicProfile)
		r.Get("/api/projects", s.handlePublicProjects)
		r.Get("/api/footer", s.handleGetFooter)
		r.Get("/api/latest-posts", s.handleLatestPosts)
	})

	// The footer write shares the public path but carries the strict gate:
	// any unauthorized request answers 403.
	r.With(s.authMW.RequireAdminStrict).Put("/api/footer", s.handlePutFooter)

	// Provider proxies get a tighter per-IP budget since each miss costs an
	// upstream call.
	r.Group(func(r chi.Router) {
		if !s.cfg.Security.RateLimitDisabled {
			r.Use(s.providerLimiter.Handler)
		}
		r.Get("/api/steam", s.handleSteam)
		r.Get("/api/netease-music", s.handleNeteaseMusic)
	})

	return r
}

// handleHealth reports liveness plus coarse runtime facts.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"version":        Version,
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
	})
}
