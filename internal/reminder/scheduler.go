package reminder

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler periodically sends reminder digests until its context is
// canceled. Send failures are logged, never fatal; the loop must outlive
// transient SMTP trouble.
type Scheduler struct {
	service  *Service
	interval time.Duration
}

// NewScheduler creates a scheduler that fires every interval.
func NewScheduler(service *Service, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{service: service, interval: interval}
}

// Run blocks until ctx is canceled, sending a reminder digest on every
// tick. The first send happens after one full interval, matching a
// "check every hour" cadence rather than firing at startup.
func (s *Scheduler) Run(ctx context.Context) {
	slog.Info("Starting reminder scheduler", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.service.Send(ctx, time.Now()); err != nil {
				slog.Error("Scheduled reminder failed", "error", err)
			}
		}
	}
}
