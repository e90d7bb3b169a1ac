package handler

import (
	"net/http"

	"github.com/msomdec/deskbreak/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, sessions *service.SessionService, settings *service.SettingsService) {
	sessionHandler := NewSessionHandler(sessions)
	settingsHandler := NewSettingsHandler(settings)

	mux.HandleFunc("POST /sessions", sessionHandler.HandleCreate)
	mux.HandleFunc("GET /sessions/today", sessionHandler.HandleListToday)
	mux.HandleFunc("GET /sessions/progress", sessionHandler.HandleDailyProgress)
	mux.HandleFunc("GET /sessions/weekly", sessionHandler.HandleWeeklyProgress)
	mux.HandleFunc("POST /sessions/{id}/complete", sessionHandler.HandleComplete)

	mux.HandleFunc("GET /settings", settingsHandler.HandleGet)
	mux.HandleFunc("PUT /settings", settingsHandler.HandleUpdate)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /status", HandleStatus)
	mux.HandleFunc("POST /status", HandleStatus)
	mux.HandleFunc("GET /{$}", HandleRoot)
}
