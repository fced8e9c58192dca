package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabaseHealth describes the storage part of a health report
// swagger:model DatabaseHealth
type DatabaseHealth struct {
	// Whether a database handle is configured
	Configured bool `json:"configured"`

	// Whether the last ping succeeded
	Connected bool `json:"connected"`

	// Failure description, absent when healthy
	Error string `json:"error,omitempty"`
}

// HealthResponse represents the health report
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`

	// default: API is running and database is connected
	Message string `json:"message"`

	Database DatabaseHealth `json:"database"`
}

// NewHealthHandler returns an HTTP handler reporting service and database health.
// The status code is always 200; a failed ping only changes the body.
// Pass an untyped nil when no database is configured: a nil *sqlx.DB
// wrapped in Pinger is not nil and would be pinged.
// @Summary Health check
// @Description Reports whether the API is running and the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Message: "API is running"}

		if db == nil {
			resp.Message = "API is running but database is not configured"
			resp.Database.Error = "Database is not configured"
			writeJSON(w, http.StatusOK, resp)
			return
		}
		resp.Database.Configured = true

		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("database ping failed", "error", err)
			resp.Message = "API is running but database connection failed"
			resp.Database.Error = "Database ping failed"
		} else {
			resp.Database.Connected = true
			resp.Message = "API is running and database is connected"
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterHealthHandler registers the health check route
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/health", h)
}
