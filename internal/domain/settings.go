package domain

import (
	"context"
	"time"
)

// UserSettings is the singleton reminder-preferences record. It is
// lazily created with defaults on first access and updated in place.
type UserSettings struct {
	ID                     string
	UserID                 string
	SittingReminderMinutes int
	ActivityBreakMinutes   int
	NotificationsEnabled   bool
	SoundAlertsEnabled     bool
	DailyGoalSessions      int
	Timestamp              time.Time // last-modified instant
}

// Default preference values, applied when the record is first created.
const (
	DefaultSittingReminderMinutes = 50
	DefaultActivityBreakMinutes   = 10
	DefaultDailyGoalSessions      = 8
)

// SettingsUpdate is a sparse patch. A nil field means "leave unchanged";
// it is excluded from the write rather than reset to a default.
type SettingsUpdate struct {
	SittingReminderMinutes *int
	ActivityBreakMinutes   *int
	NotificationsEnabled   *bool
	SoundAlertsEnabled     *bool
	DailyGoalSessions      *int
}

// SettingsRepository defines persistence operations for the settings
// singleton. Implementations must guarantee at most one record per
// user id.
type SettingsRepository interface {
	// EnsureExists inserts the given record if no record with its user id
	// exists yet. The insert must be atomic so that concurrent first
	// accesses cannot create duplicates.
	EnsureExists(ctx context.Context, settings *UserSettings) error
	Get(ctx context.Context, userID string) (*UserSettings, error)
	// ApplyUpdate writes the non-nil fields of the patch plus the given
	// timestamp to the record. An empty patch still writes the timestamp.
	ApplyUpdate(ctx context.Context, userID string, update SettingsUpdate, at time.Time) error
}
