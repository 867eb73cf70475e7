package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/content-mock-backend/database"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	database    database.Database
	startupTime time.Time
	instanceID  string
}

func newHealthHandler(database database.Database, startupTime time.Time, instanceID string) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		database:    database,
		startupTime: startupTime,
		instanceID:  instanceID,
	}
}

// getHealth reports liveness plus the size of every collection
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, r, HealthResponse{
			Status:      "ok",
			InstanceID:  h.instanceID,
			StartedAt:   h.startupTime.UTC(),
			Uptime:      time.Since(h.startupTime).Round(time.Second).String(),
			Collections: h.database.Counts(),
		})
	}
}
