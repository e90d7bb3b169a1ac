package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/deskbreak/internal/domain"
)

// SessionRepository implements domain.SessionRepository using SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite-backed SessionRepository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db.SqlDB}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, session_date, sitting_duration, activity_duration, completed, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.UserID, session.SessionDate,
		session.SittingDuration, session.ActivityDuration,
		session.Completed, session.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s := &domain.Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, session_date, sitting_duration, activity_duration, completed, timestamp
		 FROM sessions WHERE id = ?`, id,
	).Scan(&s.ID, &s.UserID, &s.SessionDate,
		&s.SittingDuration, &s.ActivityDuration, &s.Completed, &s.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query session by id: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) ListByDate(ctx context.Context, date string, limit int) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, session_date, sitting_duration, activity_duration, completed, timestamp
		 FROM sessions WHERE session_date = ? LIMIT ?`, date, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions by date: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *SessionRepository) ListByDateRange(ctx context.Context, start, end string, limit int) ([]domain.Session, error) {
	// ISO date strings compare lexically in calendar order; both bounds
	// are inclusive. No ORDER BY: callers get store-native row order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, session_date, sitting_duration, activity_duration, completed, timestamp
		 FROM sessions WHERE session_date >= ? AND session_date <= ? LIMIT ?`, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions by date range: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *SessionRepository) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sessions SET completed = 1, timestamp = ? WHERE id = ?", at, id)
	if err != nil {
		return fmt.Errorf("mark session completed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSessions(rows *sql.Rows) ([]domain.Session, error) {
	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.SessionDate,
			&s.SittingDuration, &s.ActivityDuration, &s.Completed, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
