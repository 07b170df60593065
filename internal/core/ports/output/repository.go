package ports

import (
	"context"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/uuid"
)

// FieldRepository persists Field records. Every write runs in its own transaction.
type FieldRepository interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error)
	List(ctx context.Context) ([]*domain.Field, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, field *domain.Field) error
	Update(ctx context.Context, field *domain.Field) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConversionSetRepository persists FieldCartographicConversionSet records together
// with the denormalized light-view columns.
type ConversionSetRepository interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCartographicConversionSet, error)
	List(ctx context.Context) ([]*domain.FieldCartographicConversionSet, error)
	ListLight(ctx context.Context) ([]*domain.FieldCartographicConversionSetLight, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, set *domain.FieldCartographicConversionSet, owner domain.FieldSummary) error
	Update(ctx context.Context, set *domain.FieldCartographicConversionSet, owner domain.FieldSummary) error
	Delete(ctx context.Context, id uuid.UUID) error
}
