package database

import (
	"context"
	"time"

	"roofsite/internal/auth"
	"roofsite/internal/models"
)

// AttemptStore persists login attempts in the login_attempts table so the
// limit holds across restarts and across instances.
type AttemptStore struct {
	db     *DB
	store  *Store
	policy auth.LimitPolicy
}

func NewAttemptStore(db *DB, policy auth.LimitPolicy) *AttemptStore {
	return &AttemptStore{db: db, store: NewStore(db), policy: policy}
}

func (s *AttemptStore) Hit(ctx context.Context, key string, now time.Time) (bool, error) {
	var allowed bool

	err := s.store.ExecTx(ctx, func(q DBTX) error {
		// Seed a row so concurrent first attempts serialize on its lock.
		_, err := q.Exec(ctx, `
			INSERT INTO login_attempts (client_key, attempts, last_attempt_at)
			VALUES ($1, 0, 'epoch')
			ON CONFLICT (client_key) DO NOTHING
		`, key)
		if err != nil {
			return err
		}

		var entry models.LoginAttempt
		err = q.QueryRow(ctx, `
			SELECT attempts, last_attempt_at
			FROM login_attempts
			WHERE client_key = $1
			FOR UPDATE
		`, key).Scan(&entry.Count, &entry.LastAttempt)
		if err != nil {
			return err
		}

		var prev *models.LoginAttempt
		if entry.Count > 0 {
			prev = &entry
		}

		next, ok := s.policy.Apply(prev, now)
		allowed = ok
		if !ok {
			return nil
		}

		_, err = q.Exec(ctx, `
			UPDATE login_attempts
			SET attempts = $2, last_attempt_at = $3
			WHERE client_key = $1
		`, key, next.Count, next.LastAttempt)
		return err
	})
	if err != nil {
		return false, err
	}

	return allowed, nil
}

// PurgeAttempts deletes entries whose window closed before now.
func (s *AttemptStore) PurgeAttempts(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM login_attempts WHERE last_attempt_at < $1`, now.Add(-s.policy.Window))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
