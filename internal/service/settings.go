package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/deskbreak/internal/domain"
)

// SettingsService manages the singleton reminder-preferences record.
type SettingsService struct {
	settings domain.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settings domain.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the settings record, creating it with defaults on first
// access. Creation is an atomic insert-if-absent, so concurrent first
// reads converge on a single record.
func (s *SettingsService) Get(ctx context.Context) (*domain.UserSettings, error) {
	if err := s.settings.EnsureExists(ctx, defaultSettings()); err != nil {
		return nil, fmt.Errorf("ensure settings: %w", err)
	}
	return s.settings.Get(ctx, domain.DefaultUserID)
}

// Update merges the non-nil patch fields into the stored record and
// refreshes its timestamp, creating the record with defaults first if
// it does not exist yet. An empty patch still refreshes the timestamp.
func (s *SettingsService) Update(ctx context.Context, update domain.SettingsUpdate) (*domain.UserSettings, error) {
	if err := s.settings.EnsureExists(ctx, defaultSettings()); err != nil {
		return nil, fmt.Errorf("ensure settings: %w", err)
	}
	if err := s.settings.ApplyUpdate(ctx, domain.DefaultUserID, update, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("apply settings update: %w", err)
	}
	return s.settings.Get(ctx, domain.DefaultUserID)
}

func defaultSettings() *domain.UserSettings {
	return &domain.UserSettings{
		ID:                     uuid.NewString(),
		UserID:                 domain.DefaultUserID,
		SittingReminderMinutes: domain.DefaultSittingReminderMinutes,
		ActivityBreakMinutes:   domain.DefaultActivityBreakMinutes,
		NotificationsEnabled:   true,
		SoundAlertsEnabled:     true,
		DailyGoalSessions:      domain.DefaultDailyGoalSessions,
		Timestamp:              time.Now().UTC(),
	}
}
