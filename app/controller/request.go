package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"aqua-store/models"
)

// criteriaFromRequest reads the filter state from the query string
func criteriaFromRequest(r *http.Request) models.FilterCriteria {
	q := r.URL.Query()
	return models.FilterCriteria{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Search:   q.Get("q"),
	}
}

// imageFromRequest reads the active image index. Missing or malformed means 0.
func imageFromRequest(r *http.Request) int {
	i, err := strconv.Atoi(r.URL.Query().Get("image"))
	if err != nil {
		return 0
	}
	return i
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
