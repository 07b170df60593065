package testutil

import (
	"context"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProjectionClient is a mock of ProjectionClient.
type MockProjectionClient struct {
	mock.Mock
}

func (m *MockProjectionClient) GetProjectionByID(ctx context.Context, id uuid.UUID) (*domain.CartographicProjection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartographicProjection), args.Error(1)
}

func (m *MockProjectionClient) CreateConversionJob(ctx context.Context, job *domain.CartographicConversionSet) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockProjectionClient) GetConversionJobByID(ctx context.Context, id uuid.UUID) (*domain.CartographicConversionSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartographicConversionSet), args.Error(1)
}

func (m *MockProjectionClient) DeleteConversionJobByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUsageStore is a mock of UsageSnapshotStore.
type MockUsageStore struct {
	mock.Mock
}

func (m *MockUsageStore) Load() (*domain.UsageStatistics, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageStatistics), args.Error(1)
}

func (m *MockUsageStore) Save(stats *domain.UsageStatistics) error {
	args := m.Called(stats)
	return args.Error(0)
}
