package services

import (
	"context"
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"
	ports "github.com/norce-drilling/field-service/internal/core/ports/output"

	"github.com/google/uuid"
)

type FieldService struct {
	repo ports.FieldRepository
	now  func() time.Time
}

func NewFieldService(repo ports.FieldRepository) *FieldService {
	return &FieldService{repo: repo, now: time.Now}
}

func (s *FieldService) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.repo.ListIDs(ctx)
}

func (s *FieldService) ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error) {
	return s.repo.ListMetaInfo(ctx)
}

func (s *FieldService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidFieldID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *FieldService) List(ctx context.Context) ([]*domain.Field, error) {
	return s.repo.List(ctx)
}

// Add stores a new field. The repository re-checks the ID inside its transaction,
// so a concurrent insert between the check below and the write still yields a conflict.
// Writes run to completion even when the caller goes away.
func (s *FieldService) Add(ctx context.Context, field *domain.Field) error {
	ctx = context.WithoutCancel(ctx)
	id := field.ID()
	if id == uuid.Nil {
		return domain.ErrInvalidFieldID
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrFieldAlreadyExists
	}

	field.Touch(s.now())
	return s.repo.Create(ctx, field)
}

func (s *FieldService) UpdateByID(ctx context.Context, id uuid.UUID, field *domain.Field) error {
	ctx = context.WithoutCancel(ctx)
	if id == uuid.Nil || field.ID() != id {
		return domain.ErrFieldIDMismatch
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrFieldNotFound
	}

	field.Touch(s.now())
	return s.repo.Update(ctx, field)
}

func (s *FieldService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	ctx = context.WithoutCancel(ctx)
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrFieldNotFound
	}
	return s.repo.Delete(ctx, id)
}
