package domain

import (
	"context"
	"time"
)

// DefaultUserID identifies the single implicit user of the tracker.
// The system is single-tenant; every record carries this value.
const DefaultUserID = "default_user"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Session represents one recorded sit/activity cycle.
type Session struct {
	ID               string
	UserID           string
	SessionDate      string // local calendar date, YYYY-MM-DD
	SittingDuration  int    // minutes
	ActivityDuration int    // minutes
	Completed        bool
	Timestamp        time.Time // creation instant; overwritten on completion
}

// DailyProgress summarizes the sessions of a single date. It is derived
// on demand and never persisted.
type DailyProgress struct {
	Date              string
	TotalSessions     int
	CompletedSessions int
	TotalSittingTime  int
	TotalActivityTime int
	Sessions          []Session
}

// DayStats is one per-date bucket of a weekly summary.
type DayStats struct {
	Date              string
	TotalSessions     int
	CompletedSessions int
	TotalSittingTime  int
	TotalActivityTime int
}

// WeeklyProgress covers the trailing seven-day window ending today
// (eight calendar days, both bounds inclusive). Days holds only dates
// that had at least one session, in first-seen order — callers must not
// assume every date of the window appears, nor any particular ordering.
type WeeklyProgress struct {
	WeekStart string
	WeekEnd   string
	Days      []DayStats
}

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByDate(ctx context.Context, date string, limit int) ([]Session, error)
	ListByDateRange(ctx context.Context, start, end string, limit int) ([]Session, error)
	// MarkCompleted sets completed=true and overwrites the timestamp on
	// the matching session. Returns ErrNotFound when no session has the
	// given id. Re-marking an already-completed session succeeds.
	MarkCompleted(ctx context.Context, id string, at time.Time) error
}
