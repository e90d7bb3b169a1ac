package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/deskbreak/internal/domain"
)

// SettingsRepository implements domain.SettingsRepository using SQLite.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite-backed SettingsRepository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db.SqlDB}
}

// EnsureExists inserts the settings record if none exists for its user id.
// The UNIQUE constraint on user_id makes the insert-if-absent atomic, so
// concurrent first accesses cannot create a second record.
func (r *SettingsRepository) EnsureExists(ctx context.Context, settings *domain.UserSettings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_settings (id, user_id, sitting_reminder_minutes, activity_break_minutes,
		 notifications_enabled, sound_alerts_enabled, daily_goal_sessions, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO NOTHING`,
		settings.ID, settings.UserID,
		settings.SittingReminderMinutes, settings.ActivityBreakMinutes,
		settings.NotificationsEnabled, settings.SoundAlertsEnabled,
		settings.DailyGoalSessions, settings.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("ensure settings exist: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	s := &domain.UserSettings{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, sitting_reminder_minutes, activity_break_minutes,
		 notifications_enabled, sound_alerts_enabled, daily_goal_sessions, timestamp
		 FROM user_settings WHERE user_id = ?`, userID,
	).Scan(&s.ID, &s.UserID,
		&s.SittingReminderMinutes, &s.ActivityBreakMinutes,
		&s.NotificationsEnabled, &s.SoundAlertsEnabled,
		&s.DailyGoalSessions, &s.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query settings: %w", err)
	}
	return s, nil
}

// ApplyUpdate writes the non-nil patch fields in a single UPDATE. The
// timestamp is always written, so an empty patch is a meaningful no-op
// that refreshes the last-modified instant.
func (r *SettingsRepository) ApplyUpdate(ctx context.Context, userID string, update domain.SettingsUpdate, at time.Time) error {
	sets := []string{"timestamp = ?"}
	args := []any{at}

	if update.SittingReminderMinutes != nil {
		sets = append(sets, "sitting_reminder_minutes = ?")
		args = append(args, *update.SittingReminderMinutes)
	}
	if update.ActivityBreakMinutes != nil {
		sets = append(sets, "activity_break_minutes = ?")
		args = append(args, *update.ActivityBreakMinutes)
	}
	if update.NotificationsEnabled != nil {
		sets = append(sets, "notifications_enabled = ?")
		args = append(args, *update.NotificationsEnabled)
	}
	if update.SoundAlertsEnabled != nil {
		sets = append(sets, "sound_alerts_enabled = ?")
		args = append(args, *update.SoundAlertsEnabled)
	}
	if update.DailyGoalSessions != nil {
		sets = append(sets, "daily_goal_sessions = ?")
		args = append(args, *update.DailyGoalSessions)
	}
	args = append(args, userID)

	result, err := r.db.ExecContext(ctx,
		"UPDATE user_settings SET "+strings.Join(sets, ", ")+" WHERE user_id = ?", args...)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
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
