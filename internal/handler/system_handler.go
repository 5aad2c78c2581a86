package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/workforce-api/internal/response"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves liveness and greeting endpoints.
type SystemHandler struct {
	db  Pinger
	log zerolog.Logger
}

func NewSystemHandler(db Pinger, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:  db,
		log: log.With().Str("component", "system_handler").Logger(),
	}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("database ping failed")
			response.Success(c, http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

// Hi godoc
// POST /hi
func (h *SystemHandler) Hi(c *gin.Context) {
	response.Success(c, http.StatusOK, "Hi")
}
