package testutil

import (
	"context"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFieldRepo is a mock of FieldRepository. It also satisfies services.FieldLookup.
type MockFieldRepo struct {
	mock.Mock
}

func (m *MockFieldRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFieldRepo) ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MetaInfo), args.Error(1)
}

func (m *MockFieldRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Field), args.Error(1)
}

func (m *MockFieldRepo) List(ctx context.Context) ([]*domain.Field, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Field), args.Error(1)
}

func (m *MockFieldRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFieldRepo) Create(ctx context.Context, field *domain.Field) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockFieldRepo) Update(ctx context.Context, field *domain.Field) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockFieldRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConversionSetRepo is a mock of ConversionSetRepository.
type MockConversionSetRepo struct {
	mock.Mock
}

func (m *MockConversionSetRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockConversionSetRepo) ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MetaInfo), args.Error(1)
}

func (m *MockConversionSetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCartographicConversionSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldCartographicConversionSet), args.Error(1)
}

func (m *MockConversionSetRepo) List(ctx context.Context) ([]*domain.FieldCartographicConversionSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FieldCartographicConversionSet), args.Error(1)
}

func (m *MockConversionSetRepo) ListLight(ctx context.Context) ([]*domain.FieldCartographicConversionSetLight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FieldCartographicConversionSetLight), args.Error(1)
}

func (m *MockConversionSetRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockConversionSetRepo) Create(ctx context.Context, set *domain.FieldCartographicConversionSet, owner domain.FieldSummary) error {
	args := m.Called(ctx, set, owner)
	return args.Error(0)
}

func (m *MockConversionSetRepo) Update(ctx context.Context, set *domain.FieldCartographicConversionSet, owner domain.FieldSummary) error {
	args := m.Called(ctx, set, owner)
	return args.Error(0)
}

func (m *MockConversionSetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
