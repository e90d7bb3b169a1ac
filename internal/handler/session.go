package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/deskbreak/internal/domain"
	"github.com/msomdec/deskbreak/internal/service"
)

// SessionHandler handles session HTTP requests.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// HandleCreate records a new session dated today.
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessions.Create(r.Context(), req.SittingDuration, req.ActivityDuration, req.Completed)
	if err != nil {
		slog.Error("create session", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toSessionDTO(session))
}

// HandleListToday returns all of today's sessions.
func (h *SessionHandler) HandleListToday(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.ListToday(r.Context())
	if err != nil {
		slog.Error("list today's sessions", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toSessionDTOs(sessions))
}

// HandleDailyProgress returns today's aggregate summary.
func (h *SessionHandler) HandleDailyProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.sessions.DailyProgress(r.Context())
	if err != nil {
		slog.Error("daily progress", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toDailyProgressDTO(progress))
}

// HandleWeeklyProgress returns the trailing-week summary.
func (h *SessionHandler) HandleWeeklyProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.sessions.WeeklyProgress(r.Context())
	if err != nil {
		slog.Error("weekly progress", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toWeeklyProgressDTO(progress))
}

// HandleComplete marks a session as completed.
func (h *SessionHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Complete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		slog.Error("complete session", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toSessionDTO(session))
}
