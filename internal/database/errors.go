package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// ErrorCode returns the SQLSTATE carried by err, or "" for non-Postgres errors.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// LogError records a database failure with code and detail when available.
func LogError(logger zerolog.Logger, event string, err error) {
	ev := logger.Error().Err(err).Str("event", event)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		ev = ev.Str("code", pgErr.Code).Str("detail", pgErr.Detail)
	}
	ev.Msg("database error")
}
