package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler responde sem tocar no backend nem no armazenamento local
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
