package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/deskbreak/internal/service"
)

// SettingsHandler handles settings HTTP requests.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// HandleGet returns the settings record, creating it with defaults on
// first access.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		slog.Error("get settings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserSettingsDTO(settings))
}

// HandleUpdate applies a sparse settings patch. Fields absent from the
// body are left unchanged; an empty body still refreshes the timestamp.
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.settings.Update(r.Context(), req.toPatch())
	if err != nil {
		slog.Error("update settings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserSettingsDTO(settings))
}
