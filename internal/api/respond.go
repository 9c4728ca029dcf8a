package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"roofsite/internal/database"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

type errorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}

// dbErrorResponse hides the driver message; only the SQLSTATE is exposed.
type dbErrorResponse struct {
	OK    bool    `json:"ok"`
	Error string  `json:"error" example:"Internal server error"`
	Code  *string `json:"code" example:"42P01"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeConfigError(w http.ResponseWriter, logger *zerolog.Logger, setting string) {
	logger.Error().Str("setting", setting).Msg("required configuration is missing")
	writeError(w, http.StatusInternalServerError, "Server configuration error")
}

// writeDBError logs err under event and answers 500.
func writeDBError(w http.ResponseWriter, logger *zerolog.Logger, event string, err error) {
	if errors.Is(err, database.ErrNotConfigured) {
		writeConfigError(w, logger, "database.url")
		return
	}

	database.LogError(*logger, event, err)

	resp := dbErrorResponse{Error: "Internal server error"}
	if code := database.ErrorCode(err); code != "" {
		resp.Code = &code
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}

// decodeBody reads a JSON body into v. An empty body yields errEmptyBody and
// leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(raw, v)
}
