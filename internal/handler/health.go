package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness including database reachability.
type HealthHandler struct {
	db dbPinger
}

// NewHealthHandler creates a HealthHandler over the given database handle.
func NewHealthHandler(db dbPinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Message: "portfolio contact API",
	})
}
