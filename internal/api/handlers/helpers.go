package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warnw("encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, status int, msg string) {
	writeJSON(w, r, logger, status, map[string]string{"error": msg})
}
