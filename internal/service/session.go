package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/deskbreak/internal/domain"
)

// Retrieval caps. Daily views never return more than 100 sessions and
// the weekly view never scans more than 1000; callers must not rely on
// records beyond these limits.
const (
	dailyFetchLimit  = 100
	weeklyFetchLimit = 1000
)

// SessionService records sit/move sessions and computes daily and
// weekly progress summaries.
type SessionService struct {
	sessions domain.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions domain.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Create records a new session dated today. Durations are minutes.
func (s *SessionService) Create(ctx context.Context, sittingDuration, activityDuration int, completed bool) (*domain.Session, error) {
	session := &domain.Session{
		ID:               uuid.NewString(),
		UserID:           domain.DefaultUserID,
		SessionDate:      today(),
		SittingDuration:  sittingDuration,
		ActivityDuration: activityDuration,
		Completed:        completed,
		Timestamp:        time.Now().UTC(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// ListToday returns today's sessions in store-native order.
func (s *SessionService) ListToday(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.ListByDate(ctx, today(), dailyFetchLimit)
}

// DailyProgress summarizes today's sessions. Zero sessions yields an
// all-zero summary with an empty list, not an error.
func (s *SessionService) DailyProgress(ctx context.Context) (*domain.DailyProgress, error) {
	date := today()
	sessions, err := s.sessions.ListByDate(ctx, date, dailyFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("list sessions for %s: %w", date, err)
	}

	progress := &domain.DailyProgress{
		Date:     date,
		Sessions: sessions,
	}
	for _, session := range sessions {
		progress.TotalSessions++
		if session.Completed {
			progress.CompletedSessions++
		}
		progress.TotalSittingTime += session.SittingDuration
		progress.TotalActivityTime += session.ActivityDuration
	}
	return progress, nil
}

// WeeklyProgress groups the trailing seven-day window (today and the
// prior seven days, both bounds inclusive) into per-date buckets. Dates
// without sessions produce no bucket, and buckets appear in first-seen
// order rather than calendar order.
func (s *SessionService) WeeklyProgress(ctx context.Context) (*domain.WeeklyProgress, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -7)
	startDate := start.Format(domain.DateLayout)
	endDate := end.Format(domain.DateLayout)

	sessions, err := s.sessions.ListByDateRange(ctx, startDate, endDate, weeklyFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("list sessions %s..%s: %w", startDate, endDate, err)
	}

	buckets := make(map[string]*domain.DayStats)
	var order []string
	for _, session := range sessions {
		stats, ok := buckets[session.SessionDate]
		if !ok {
			stats = &domain.DayStats{Date: session.SessionDate}
			buckets[session.SessionDate] = stats
			order = append(order, session.SessionDate)
		}
		stats.TotalSessions++
		if session.Completed {
			stats.CompletedSessions++
		}
		stats.TotalSittingTime += session.SittingDuration
		stats.TotalActivityTime += session.ActivityDuration
	}

	progress := &domain.WeeklyProgress{
		WeekStart: startDate,
		WeekEnd:   endDate,
		Days:      make([]domain.DayStats, 0, len(order)),
	}
	for _, date := range order {
		progress.Days = append(progress.Days, *buckets[date])
	}
	return progress, nil
}

// Complete marks the session as completed and overwrites its timestamp
// with the completion instant. Completing an already-completed session
// succeeds and advances the timestamp again.
func (s *SessionService) Complete(ctx context.Context, id string) (*domain.Session, error) {
	if err := s.sessions.MarkCompleted(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.sessions.GetByID(ctx, id)
}

// today returns the server-local calendar date.
func today() string {
	return time.Now().Format(domain.DateLayout)
}
