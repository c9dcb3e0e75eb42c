package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stackdesk/stackdesk/internal/desk/store"
)

// ExpiredInvitationRetention is how long an expired pending invitation stays
// in the database before housekeeping removes it. Keeping it around for a
// while lets support answer "what happened to my invite" questions.
const ExpiredInvitationRetention = 30 * 24 * time.Hour

// HousekeepingService periodically prunes long-expired pending invitations
// to prevent unbounded table growth. Lazy expiry at accept time remains
// authoritative; this worker is purely hygiene.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	cutoff := time.Now().UTC().Add(-ExpiredInvitationRetention)
	if err := s.Store.Invitations().DeleteInvitationsExpiredBefore(ctx, cutoff); err != nil {
		s.Logger.Error("failed to prune expired invitations", "error", err)
		return
	}
	s.Logger.Debug("pruned expired invitations", "cutoff", cutoff)
}
