package api

import (
	"errors"
	"net/http"
	"strings"

	"roofsite/internal/auth"
	"roofsite/internal/inspections"
	"roofsite/internal/models"
	"roofsite/internal/websocket"
)

type InsertResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"message" example:"Thanks! We received your inspection request."`
}

type SimpleAdminRequest struct {
	Password string `json:"password" example:"hunter2"`
}

// @Summary      Submit an inspection request
// @Description  Public lead capture. Optional fields that are not sent are stored as null.
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        inspection  body      models.NewInspection  true  "Inspection request"
// @Success      200         {object}  InsertResponse
// @Failure      400         {object}  errorResponse
// @Failure      500         {object}  InsertResponse
// @Router       /inspections-insert [post]
func (s *Server) InspectionsInsertHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.log(r)

	if !s.leads.Configured() {
		writeConfigError(w, logger, "supabase.url/supabase.service_role_key")
		return
	}

	var in models.NewInspection
	if err := decodeBody(r, &in); err != nil {
		if errors.Is(err, errEmptyBody) {
			writeError(w, http.StatusBadRequest, "Request body is required")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		writeError(w, http.StatusBadRequest, "Name and phone are required")
		return
	}

	if err := s.leads.Insert(r.Context(), in); err != nil {
		var restErr *inspections.RESTError
		if errors.As(err, &restErr) && restErr.Rejected() {
			inspectionSubmissions.WithLabelValues("rejected").Inc()
			logger.Warn().Err(err).Str("code", restErr.Code).Msg("inspection insert rejected")
			message := restErr.Message
			if message == "" {
				message = "Could not save inspection request"
			}
			writeError(w, http.StatusBadRequest, message)
			return
		}
		if errors.Is(err, inspections.ErrNotConfigured) {
			writeConfigError(w, logger, "supabase.url/supabase.service_role_key")
			return
		}

		inspectionSubmissions.WithLabelValues("error").Inc()
		logger.Error().Err(err).Msg("inspection insert failed")
		writeJSON(w, http.StatusInternalServerError, InsertResponse{OK: false, Message: "Internal server error"})
		return
	}

	inspectionSubmissions.WithLabelValues("created").Inc()
	if s.hub != nil {
		s.hub.Publish(websocket.EventInspectionCreated, in)
	}

	writeJSON(w, http.StatusOK, InsertResponse{OK: true, Message: "Thanks! We received your inspection request."})
}

// @Summary      Simple admin lead list
// @Description  Password-only admin view returning every inspection, newest first.
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        request  body      SimpleAdminRequest  true  "Admin password"
// @Success      200      {array}   models.Inspection
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /simple-admin-data [post]
func (s *Server) SimpleAdminDataHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.log(r)

	var req SimpleAdminRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if s.credentials.Password == "" {
		writeConfigError(w, logger, "admin.password")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusUnauthorized, "No password provided")
		return
	}
	if !s.credentials.CheckPassword(req.Password) {
		logger.Info().Str("client", auth.ClientKey(r)).Msg("incorrect simple admin password")
		writeError(w, http.StatusUnauthorized, "Incorrect password")
		return
	}

	leads, err := s.leads.List(r.Context())
	if err != nil {
		if errors.Is(err, inspections.ErrNotConfigured) {
			writeConfigError(w, logger, "supabase.url/supabase.service_role_key")
			return
		}
		logger.Error().Err(err).Msg("failed to list inspections")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Int("rows", len(leads)).Msg("simple admin data served")
	if leads == nil {
		leads = []models.Inspection{}
	}
	writeJSON(w, http.StatusOK, leads)
}
