package ports

import (
	"context"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/uuid"
)

// ProjectionClient defines the contract with the CartographicProjection service,
// which performs the actual coordinate math. Calls are never retried.
type ProjectionClient interface {
	// GetProjectionByID returns domain.ErrProjectionNotFound when the projection is unknown.
	GetProjectionByID(ctx context.Context, id uuid.UUID) (*domain.CartographicProjection, error)

	// Conversion jobs are transient: created, read back computed, then deleted.
	CreateConversionJob(ctx context.Context, job *domain.CartographicConversionSet) error
	GetConversionJobByID(ctx context.Context, id uuid.UUID) (*domain.CartographicConversionSet, error)
	DeleteConversionJobByID(ctx context.Context, id uuid.UUID) error
}
