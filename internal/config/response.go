package config

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode response body")
	}
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

// Detail writes the {"detail": msg} error body used by every failing endpoint.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, DetailResponse{Detail: msg})
}
