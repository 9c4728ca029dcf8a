package api

import (
	"net/http"
	"time"

	"roofsite/internal/database"
)

type HealthChecks struct {
	Database    bool   `json:"database" example:"true"`
	Timestamp   string `json:"timestamp" example:"2026-01-01T12:00:00.000Z"`
	Environment string `json:"environment" example:"production"`
}

type HealthError struct {
	Code *string `json:"code"`
}

type HealthResponse struct {
	Status  string       `json:"status" example:"healthy"`
	Checks  HealthChecks `json:"checks"`
	Error   *HealthError `json:"error,omitempty"`
	Version string       `json:"version" example:"1.0.0"`
}

// @Summary      Health check
// @Description  Public liveness and readiness probe backed by a database round trip.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	checks := HealthChecks{
		Timestamp:   time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Environment: s.config.Environment,
	}
	if checks.Environment == "" {
		checks.Environment = "unknown"
	}

	w.Header().Set("Cache-Control", "no-cache")

	ok, _, err := s.health.CheckHealth(r.Context())
	if err != nil {
		logger := s.log(r)
		logger.Error().Err(err).Str("code", database.ErrorCode(err)).Msg("HEALTH_CHECK_ERROR")

		resp := HealthResponse{Status: "unhealthy", Checks: checks, Error: &HealthError{}, Version: apiVersion}
		if code := database.ErrorCode(err); code != "" {
			resp.Error.Code = &code
		}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	checks.Database = ok
	status, code := "healthy", http.StatusOK
	if !ok {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Checks: checks, Version: apiVersion})
}
