package scheduler

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FullSyncRunner runs one complete synchronization cycle against the
// remote store
type FullSyncRunner interface {
	RunFullSync(ctx context.Context) error
}

// SyncSchedulerConfig holds configuration for the periodic sync scheduler
type SyncSchedulerConfig struct {
	// Enabled turns the scheduler on
	Enabled bool
	// FullSyncSchedule is a standard 5-field cron expression
	FullSyncSchedule string
}

// DefaultSyncSchedulerConfig returns default configuration: a nightly
// full sync at 03:00
func DefaultSyncSchedulerConfig() SyncSchedulerConfig {
	return SyncSchedulerConfig{
		Enabled:          true,
		FullSyncSchedule: "0 3 * * *",
	}
}

// SyncScheduler triggers full synchronization runs on a cron schedule.
// Overlapping runs are skipped: a tick that fires while the previous
// run is still in flight logs and returns.
type SyncScheduler struct {
	config SyncSchedulerConfig
	runner FullSyncRunner
	logger *zap.Logger

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
	inFlight  sync.Mutex
}

// NewSyncScheduler creates a new SyncScheduler
func NewSyncScheduler(config SyncSchedulerConfig, runner FullSyncRunner, logger *zap.Logger) *SyncScheduler {
	return &SyncScheduler{
		config: config,
		runner: runner,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start registers the cron entry and starts the scheduler
func (s *SyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if !s.config.Enabled {
		s.logger.Info("sync scheduler disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.FullSyncSchedule, func() {
		s.trigger(ctx)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("sync scheduler started",
		zap.String("schedule", s.config.FullSyncSchedule),
	)
	return nil
}

// Stop stops the scheduler and waits for a running entry to finish
func (s *SyncScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	s.isRunning = false
	s.logger.Info("sync scheduler stopped")
	return nil
}

// trigger runs one full sync, skipping the tick if one is still in flight
func (s *SyncScheduler) trigger(ctx context.Context) {
	if !s.inFlight.TryLock() {
		s.logger.Warn("skipping scheduled sync, previous run still in progress")
		return
	}
	defer s.inFlight.Unlock()

	s.logger.Info("scheduled full sync starting")
	if err := s.runner.RunFullSync(ctx); err != nil {
		s.logger.Error("scheduled full sync failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled full sync finished")
}
