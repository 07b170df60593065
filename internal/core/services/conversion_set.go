package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"
	ports "github.com/norce-drilling/field-service/internal/core/ports/output"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// FieldLookup resolves the field owning a conversion set.
type FieldLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error)
}

type ConversionSetService struct {
	repo       ports.ConversionSetRepository
	fields     FieldLookup
	projection ports.ProjectionClient
	now        func() time.Time
}

func NewConversionSetService(
	repo ports.ConversionSetRepository,
	fields FieldLookup,
	projection ports.ProjectionClient,
) *ConversionSetService {
	return &ConversionSetService{
		repo:       repo,
		fields:     fields,
		projection: projection,
		now:        time.Now,
	}
}

func (s *ConversionSetService) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.repo.ListIDs(ctx)
}

func (s *ConversionSetService) ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error) {
	return s.repo.ListMetaInfo(ctx)
}

func (s *ConversionSetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCartographicConversionSet, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidConversionSetID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ConversionSetService) List(ctx context.Context) ([]*domain.FieldCartographicConversionSet, error) {
	return s.repo.List(ctx)
}

func (s *ConversionSetService) ListLight(ctx context.Context) ([]*domain.FieldCartographicConversionSetLight, error) {
	return s.repo.ListLight(ctx)
}

// Add computes the coordinates of set through the projection service and stores it.
// Nothing is written unless the computation succeeded. The repository re-checks the
// ID at commit time since another writer may have inserted it during the remote call.
// The operation is detached from caller cancellation; the projection client's
// timeout bounds the remote calls.
func (s *ConversionSetService) Add(ctx context.Context, set *domain.FieldCartographicConversionSet) error {
	ctx = context.WithoutCancel(ctx)
	id := set.ID()
	if id == uuid.Nil {
		return domain.ErrInvalidConversionSetID
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrConversionSetAlreadyExists
	}

	if err := s.computeCoordinates(ctx, set); err != nil {
		return err
	}

	owner, err := s.resolveOwner(ctx, set)
	if err != nil {
		return err
	}

	set.Touch(s.now())
	return s.repo.Create(ctx, set, owner)
}

// UpdateByID recomputes the coordinates of set and replaces the stored record,
// refreshing the owning field's name and description in the light-view columns.
func (s *ConversionSetService) UpdateByID(ctx context.Context, id uuid.UUID, set *domain.FieldCartographicConversionSet) error {
	ctx = context.WithoutCancel(ctx)
	if id == uuid.Nil || set.ID() != id {
		return domain.ErrConversionSetIDMismatch
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrConversionSetNotFound
	}

	if err := s.computeCoordinates(ctx, set); err != nil {
		return err
	}

	owner, err := s.resolveOwner(ctx, set)
	if err != nil {
		return err
	}

	set.Touch(s.now())
	return s.repo.Update(ctx, set, owner)
}

func (s *ConversionSetService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	ctx = context.WithoutCancel(ctx)
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrConversionSetNotFound
	}
	return s.repo.Delete(ctx, id)
}

// computeCoordinates delegates the conversion of set's coordinates to the projection
// service and replaces them in place, preserving their order. Sets without a field
// reference or without coordinates are left untouched.
func (s *ConversionSetService) computeCoordinates(ctx context.Context, set *domain.FieldCartographicConversionSet) error {
	if !set.NeedsConversion() {
		return nil
	}

	field, err := s.lookupField(ctx, *set.FieldID)
	if err != nil {
		return err
	}
	if !field.HasProjection() {
		return domain.ErrFieldMissingProjection
	}
	projectionID := *field.CartographicProjectionID

	projection, err := s.projection.GetProjectionByID(ctx, projectionID)
	if err != nil {
		return fmt.Errorf("get cartographic projection %s: %w", projectionID, err)
	}
	if projection == nil {
		return domain.ErrProjectionNotFound
	}

	job := &domain.CartographicConversionSet{
		MetaInfo:                   &domain.MetaInfo{ID: uuid.New()},
		Name:                       set.Name,
		Description:                set.Description,
		CreationDate:               set.CreationDate,
		LastModificationDate:       set.LastModificationDate,
		CartographicProjectionID:   &projectionID,
		CartographicCoordinateList: set.CartographicCoordinateList,
	}
	jobID := job.MetaInfo.ID

	if err := s.projection.CreateConversionJob(ctx, job); err != nil {
		return fmt.Errorf("create conversion job: %w", err)
	}
	defer s.deleteConversionJob(ctx, jobID)

	computed, err := s.projection.GetConversionJobByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("get conversion job %s: %w", jobID, err)
	}
	if computed == nil || len(computed.CartographicCoordinateList) != len(set.CartographicCoordinateList) {
		return domain.ErrConversionCountMismatch
	}

	set.CartographicCoordinateList = set.CartographicCoordinateList[:0]
	set.CartographicCoordinateList = append(set.CartographicCoordinateList, computed.CartographicCoordinateList...)

	log.WithFields(log.Fields{
		"conversion_set_id": set.ID(),
		"projection":        projection.Name,
		"coordinates":       len(set.CartographicCoordinateList),
	}).Debug("coordinates computed by projection service")
	return nil
}

// deleteConversionJob removes the transient job on the remote side. It never fails
// the enclosing operation.
func (s *ConversionSetService) deleteConversionJob(ctx context.Context, id uuid.UUID) {
	if err := s.projection.DeleteConversionJobByID(ctx, id); err != nil {
		log.WithError(err).WithField("job_id", id).Warn("failed to delete transient conversion job")
	}
}

// resolveOwner returns the owning field's name and description for the light-view
// columns. Sets without a field reference get empty columns.
func (s *ConversionSetService) resolveOwner(ctx context.Context, set *domain.FieldCartographicConversionSet) (domain.FieldSummary, error) {
	if set.FieldID == nil {
		return domain.FieldSummary{}, nil
	}

	field, err := s.lookupField(ctx, *set.FieldID)
	if err != nil {
		return domain.FieldSummary{}, err
	}
	return domain.FieldSummary{
		Name:        field.Name,
		Description: field.Description,
	}, nil
}

func (s *ConversionSetService) lookupField(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	field, err := s.fields.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFieldNotFound) || errors.Is(err, domain.ErrInvalidFieldID) {
			return nil, domain.ErrOwningFieldNotFound
		}
		return nil, fmt.Errorf("resolve owning field %s: %w", id, err)
	}
	return field, nil
}
