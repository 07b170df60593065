package dto

import (
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"
)

// ============================================================================
// Response DTOs
// ============================================================================

// UsageStatisticsResponse is the daily hit history of every endpoint
type UsageStatisticsResponse struct {
	LastSaved      time.Time                 `json:"LastSaved"`
	BackUpInterval string                    `json:"BackUpInterval"`
	Endpoints      map[string]domain.History `json:"Endpoints"`
}

// HealthResponse is returned by the liveness check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// ============================================================================
// Mappers
// ============================================================================

// ToUsageStatisticsResponse lists every known endpoint, including those never hit.
func ToUsageStatisticsResponse(stats *domain.UsageStatistics) UsageStatisticsResponse {
	resp := UsageStatisticsResponse{
		LastSaved:      stats.LastSaved,
		BackUpInterval: stats.BackUpInterval.String(),
		Endpoints:      make(map[string]domain.History, len(domain.UsageEndpoints)),
	}
	for _, name := range domain.UsageEndpoints {
		resp.Endpoints[name] = domain.History{Data: []domain.CountPerDay{}}
	}
	for name, h := range stats.Endpoints {
		if h == nil {
			continue
		}
		resp.Endpoints[name] = *h
	}
	return resp
}
