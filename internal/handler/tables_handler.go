package handlers

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.TablesService.GetTablesStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, stats, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.HealthCheck(ctx); err != nil {
		log.WithError(err).Warn("база данных недоступна")
		writeSuccess(w, HealthResponse{Status: "unavailable", Database: "down"}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok", Database: "up"}, http.StatusOK)
}
