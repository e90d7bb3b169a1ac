package handler

import (
	"time"

	"github.com/msomdec/deskbreak/internal/domain"
)

// SessionDTO is the JSON representation of a session.
type SessionDTO struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	SessionDate      string `json:"session_date"`
	SittingDuration  int    `json:"sitting_duration"`
	ActivityDuration int    `json:"activity_duration"`
	Completed        bool   `json:"completed"`
	Timestamp        string `json:"timestamp"`
}

func toSessionDTO(s *domain.Session) SessionDTO {
	return SessionDTO{
		ID:               s.ID,
		UserID:           s.UserID,
		SessionDate:      s.SessionDate,
		SittingDuration:  s.SittingDuration,
		ActivityDuration: s.ActivityDuration,
		Completed:        s.Completed,
		Timestamp:        s.Timestamp.Format(time.RFC3339),
	}
}

func toSessionDTOs(sessions []domain.Session) []SessionDTO {
	dtos := make([]SessionDTO, len(sessions))
	for i := range sessions {
		dtos[i] = toSessionDTO(&sessions[i])
	}
	return dtos
}

// DailyProgressDTO is the JSON representation of a daily summary.
type DailyProgressDTO struct {
	Date              string       `json:"date"`
	TotalSessions     int          `json:"total_sessions"`
	CompletedSessions int          `json:"completed_sessions"`
	TotalSittingTime  int          `json:"total_sitting_time"`
	TotalActivityTime int          `json:"total_activity_time"`
	Sessions          []SessionDTO `json:"sessions"`
}

func toDailyProgressDTO(p *domain.DailyProgress) DailyProgressDTO {
	return DailyProgressDTO{
		Date:              p.Date,
		TotalSessions:     p.TotalSessions,
		CompletedSessions: p.CompletedSessions,
		TotalSittingTime:  p.TotalSittingTime,
		TotalActivityTime: p.TotalActivityTime,
		Sessions:          toSessionDTOs(p.Sessions),
	}
}

// DayStatsDTO is one per-date bucket of the weekly summary.
type DayStatsDTO struct {
	Date              string `json:"date"`
	TotalSessions     int    `json:"total_sessions"`
	CompletedSessions int    `json:"completed_sessions"`
	TotalSittingTime  int    `json:"total_sitting_time"`
	TotalActivityTime int    `json:"total_activity_time"`
}

// WeeklyProgressDTO is the JSON representation of the weekly summary.
type WeeklyProgressDTO struct {
	WeekStart     string        `json:"week_start"`
	WeekEnd       string        `json:"week_end"`
	DailyProgress []DayStatsDTO `json:"daily_progress"`
}

func toWeeklyProgressDTO(p *domain.WeeklyProgress) WeeklyProgressDTO {
	days := make([]DayStatsDTO, len(p.Days))
	for i, d := range p.Days {
		days[i] = DayStatsDTO{
			Date:              d.Date,
			TotalSessions:     d.TotalSessions,
			CompletedSessions: d.CompletedSessions,
			TotalSittingTime:  d.TotalSittingTime,
			TotalActivityTime: d.TotalActivityTime,
		}
	}
	return WeeklyProgressDTO{
		WeekStart:     p.WeekStart,
		WeekEnd:       p.WeekEnd,
		DailyProgress: days,
	}
}

// UserSettingsDTO is the JSON representation of the settings record.
type UserSettingsDTO struct {
	ID                     string `json:"id"`
	UserID                 string `json:"user_id"`
	SittingReminderMinutes int    `json:"sitting_reminder_minutes"`
	ActivityBreakMinutes   int    `json:"activity_break_minutes"`
	NotificationsEnabled   bool   `json:"notifications_enabled"`
	SoundAlertsEnabled     bool   `json:"sound_alerts_enabled"`
	DailyGoalSessions      int    `json:"daily_goal_sessions"`
	Timestamp              string `json:"timestamp"`
}

func toUserSettingsDTO(s *domain.UserSettings) UserSettingsDTO {
	return UserSettingsDTO{
		ID:                     s.ID,
		UserID:                 s.UserID,
		SittingReminderMinutes: s.SittingReminderMinutes,
		ActivityBreakMinutes:   s.ActivityBreakMinutes,
		NotificationsEnabled:   s.NotificationsEnabled,
		SoundAlertsEnabled:     s.SoundAlertsEnabled,
		DailyGoalSessions:      s.DailyGoalSessions,
		Timestamp:              s.Timestamp.Format(time.RFC3339),
	}
}

// CreateSessionRequest is the POST /sessions body.
type CreateSessionRequest struct {
	SittingDuration  int  `json:"sitting_duration"`
	ActivityDuration int  `json:"activity_duration"`
	Completed        bool `json:"completed"`
}

// UpdateSettingsRequest is the PUT /settings body. Omitted fields are
// left unchanged.
type UpdateSettingsRequest struct {
	SittingReminderMinutes *int  `json:"sitting_reminder_minutes"`
	ActivityBreakMinutes   *int  `json:"activity_break_minutes"`
	NotificationsEnabled   *bool `json:"notifications_enabled"`
	SoundAlertsEnabled     *bool `json:"sound_alerts_enabled"`
	DailyGoalSessions      *int  `json:"daily_goal_sessions"`
}

func (r UpdateSettingsRequest) toPatch() domain.SettingsUpdate {
	return domain.SettingsUpdate{
		SittingReminderMinutes: r.SittingReminderMinutes,
		ActivityBreakMinutes:   r.ActivityBreakMinutes,
		NotificationsEnabled:   r.NotificationsEnabled,
		SoundAlertsEnabled:     r.SoundAlertsEnabled,
		DailyGoalSessions:      r.DailyGoalSessions,
	}
}
