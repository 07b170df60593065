package handlers

import (
	"context"
	"net/http"

	"github.com/norce-drilling/field-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetUsageStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToUsageStatisticsResponse(h.usageSvc.Snapshot()))
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health answers the liveness check; an unreachable database yields 503.
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
	}
}
