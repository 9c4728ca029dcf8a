package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router returns the root router with every /api endpoint mounted. Callers
// add pages and operational routes on top.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.RequestLogger)
	r.Use(MetricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:     []string{"*"},
			AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:     []string{"Content-Type", "Cookie"},
			AllowCredentials:   true,
			OptionsPassthrough: true,
			MaxAge:             300,
		}))
		r.Use(Preflight)
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		})
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "Not found")
		})

		r.Post("/admin-login", s.AdminLoginHandler)
		r.Post("/admin-logout", s.AdminLogoutHandler)
		r.Get("/health", s.HealthHandler)
		r.Post("/inspections-insert", s.InspectionsInsertHandler)
		r.Post("/simple-admin-data", s.SimpleAdminDataHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.SessionMiddleware)
			r.Get("/admin-db-ping", s.AdminDBPingHandler)
			r.Get("/admin-tables", s.AdminTablesHandler)
			r.Get("/admin-data", s.AdminDataHandler)
			r.Get("/admin-sample", s.AdminSampleHandler)
			r.Get("/admin-leads", s.AdminLeadsHandler)
		})
	})

	return r
}
