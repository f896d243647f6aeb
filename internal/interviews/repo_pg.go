package interviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements InterviewsRepo using Postgres. The session body is
// stored as a JSONB payload; the indexed columns exist for lookups only.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO interviews (id, user_id, status, payload, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err = r.DB.ExecContext(ctx, query, session.ID, session.UserID, string(session.Status), payload, session.CreatedAt)
	return err
}

// Get returns a session by ID, scoped to the owning user.
func (r *PGRepo) Get(ctx context.Context, userId, sessionID string) (Session, error) {
	const query = `
SELECT payload FROM interviews WHERE id = $1 AND user_id = $2`

	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, sessionID, userId).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Update overwrites an existing session.
func (r *PGRepo) Update(ctx context.Context, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	const query = `
UPDATE interviews SET status = $1, payload = $2 WHERE id = $3 AND user_id = $4`
	res, err := r.DB.ExecContext(ctx, query, string(session.Status), payload, session.ID, session.UserID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ InterviewsRepo = (*PGRepo)(nil)
