package services

import (
	"sync"
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"
	ports "github.com/norce-drilling/field-service/internal/core/ports/output"

	log "github.com/sirupsen/logrus"
)

// UsageService counts daily hits per endpoint and backs them up to a snapshot store.
// A single mutex guards every counter; it is held for increment-and-maybe-flush only.
type UsageService struct {
	mu       sync.Mutex
	once     sync.Once
	store    ports.UsageSnapshotStore
	interval time.Duration
	stats    *domain.UsageStatistics
	now      func() time.Time
}

func NewUsageService(store ports.UsageSnapshotStore, interval time.Duration) *UsageService {
	return &UsageService{
		store:    store,
		interval: interval,
		now:      time.Now,
	}
}

// Increment records one hit for endpoint and writes a snapshot when the backup
// interval has elapsed. Persistence failures are logged and swallowed.
func (s *UsageService) Increment(endpoint string) {
	s.hydrate()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.stats.Increment(endpoint, now)
	if s.stats.BackupDue(now) {
		s.stats.LastSaved = now
		s.saveLocked()
	}
}

// Snapshot returns a deep copy of the current counters.
func (s *UsageService) Snapshot() *domain.UsageStatistics {
	s.hydrate()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Clone()
}

// Flush writes the counters regardless of the backup interval.
func (s *UsageService) Flush() {
	s.hydrate()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.LastSaved = s.now()
	s.saveLocked()
}

// hydrate loads the persisted snapshot on first use. A missing or unreadable
// snapshot starts an empty counter set.
func (s *UsageService) hydrate() {
	s.once.Do(func() {
		stats, err := s.store.Load()
		if err != nil {
			log.WithError(err).Warn("failed to load usage statistics, starting empty")
		}
		if stats == nil {
			stats = domain.NewUsageStatistics(s.interval)
		}
		if stats.Endpoints == nil {
			stats.Endpoints = make(map[string]*domain.History)
		}
		stats.BackUpInterval = s.interval

		s.mu.Lock()
		s.stats = stats
		s.mu.Unlock()
	})
}

func (s *UsageService) saveLocked() {
	if err := s.store.Save(s.stats); err != nil {
		log.WithError(err).Warn("failed to save usage statistics")
	}
}
