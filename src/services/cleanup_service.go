package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// CleanupService periodically purges expired sessions so the sessions table
// does not grow without bound.
type CleanupService struct {
	sessions *SessionService
	enabled  bool
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessions *SessionService, enabled bool) *CleanupService {
	return &CleanupService{
		sessions: sessions,
		enabled:  enabled,
		interval: 1 * time.Hour,
		done:     make(chan struct{}),
	}
}

// Start starts the cleanup loop
func (cs *CleanupService) Start(ctx context.Context) {
	if !cs.enabled {
		log.Info().Msg("session cleanup disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-cs.done:
				return
			case <-ticker.C:
				cs.cleanup(ctx)
			}
		}
	}()

	log.Info().Dur("interval", cs.interval).Msg("session cleanup started")
}

// Stop stops the cleanup loop. Safe to call whether or not the loop was
// started, and more than once.
func (cs *CleanupService) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.done)
	})
}

func (cs *CleanupService) cleanup(ctx context.Context) {
	deleted, err := cs.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("session cleanup failed")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("expired sessions purged")
	}
}
