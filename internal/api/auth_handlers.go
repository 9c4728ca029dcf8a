package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"roofsite/internal/auth"
)

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// @Summary      Admin login
// @Description  Checks the admin credentials and sets the admin_session cookie. Every attempt counts towards a per-client limit.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      LoginRequest  true  "Login Credentials"
// @Success      200           {object}  SuccessResponse
// @Failure      400           {object}  errorResponse "Username and password required"
// @Failure      401           {object}  errorResponse "Invalid credentials"
// @Failure      429           {object}  errorResponse "Too many login attempts"
// @Failure      500           {object}  errorResponse "Server configuration error"
// @Router       /admin-login [post]
func (s *Server) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.log(r)
	clientKey := auth.ClientKey(r)

	if err := auth.CheckAttempt(r.Context(), s.attempts, clientKey, time.Now()); err != nil {
		if errors.Is(err, auth.ErrRateLimited) {
			loginAttempts.WithLabelValues("rate_limited").Inc()
			logger.Warn().Str("client", clientKey).Msg("login rate limited")
			writeError(w, http.StatusTooManyRequests, "Too many login attempts. Try again later.")
			return
		}
		loginAttempts.WithLabelValues("error").Inc()
		logger.Error().Err(err).Str("client", clientKey).Msg("failed to check login attempts")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req LoginRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	if !s.credentials.Configured() {
		writeConfigError(w, logger, "admin.username/admin.password")
		return
	}
	if s.config.JWT.Secret == "" {
		writeConfigError(w, logger, "jwt.secret")
		return
	}

	if !s.credentials.Check(req.Username, req.Password) {
		loginAttempts.WithLabelValues("invalid").Inc()
		logger.Info().Str("client", clientKey).Msg("invalid admin credentials")
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateSessionToken(req.Username, s.config.JWT.Secret)
	if err != nil {
		logger.Error().Err(err).Msg("failed to sign session token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	loginAttempts.WithLabelValues("success").Inc()
	http.SetCookie(w, auth.SessionCookie(token, s.config.Cookie.Secure))
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// @Summary      Admin logout
// @Description  Clears the admin_session cookie.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /admin-logout [post]
func (s *Server) AdminLogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearedSessionCookie(s.config.Cookie.Secure))
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
