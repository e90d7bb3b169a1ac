package handler

import (
	"net/http"
	"time"
)

// HandleHealthz responds with a 200 OK and a JSON body indicating the server is healthy.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleRoot responds with the API banner.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Health Reminder API",
		"status":  "active",
	})
}

// HandleStatus is a legacy liveness endpoint kept for older clients.
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Health Reminder API is active",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
