package ports

import "github.com/norce-drilling/field-service/internal/core/domain"

// UsageSnapshotStore persists the usage counter set as a single snapshot.
type UsageSnapshotStore interface {
	// Load returns nil and no error when no snapshot exists yet.
	Load() (*domain.UsageStatistics, error)
	Save(stats *domain.UsageStatistics) error
}
