package history

import (
	"context"
	"database/sql"
)

// PGRepo implements HistoryRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts an entry and prunes rows beyond the retention limit.
func (r *PGRepo) Append(ctx context.Context, entry Entry, limit int) error {
	const insert = `
INSERT INTO interview_history (id, user_id, overall_score, question_count, created_at)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.DB.ExecContext(ctx, insert, entry.ID, entry.UserID, entry.OverallScore, entry.QuestionCount, entry.CreatedAt); err != nil {
		return err
	}
	if limit <= 0 {
		return nil
	}

	const prune = `
DELETE FROM interview_history
WHERE user_id = $1 AND id NOT IN (
    SELECT id FROM interview_history
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2
)`
	_, err := r.DB.ExecContext(ctx, prune, entry.UserID, limit)
	return err
}

// ListByUser returns entries newest-first, at most limit.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = AccountLimit
	}
	const query = `
SELECT id, user_id, overall_score, question_count, created_at
FROM interview_history
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.OverallScore, &e.QuestionCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ HistoryRepo = (*PGRepo)(nil)
