package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wedmarket/wedding-vendor-backend/internal/booking"
)

// pendingMaxAge is how long a vendor gets to answer a booking request
// before it is auto-cancelled.
const pendingMaxAge = 14 * 24 * time.Hour

// Scheduler runs the booking lifecycle maintenance jobs.
type Scheduler struct {
	cron           *cron.Cron
	bookingService booking.Service
}

func NewScheduler(bookingService booking.Service) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		bookingService: bookingService,
	}
}

// Start registers the jobs and launches the cron loop. Both jobs run
// nightly; each run is bounded so a stuck database cannot pile up
// overlapping executions.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("15 3 * * *", s.completePastBookings); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("30 3 * * *", s.expireStalePending); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) completePastBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := s.bookingService.CompletePastConfirmed(ctx, time.Now())
	if err != nil {
		log.Printf("jobs: complete past bookings failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("jobs: completed %d past bookings", count)
	}
}

func (s *Scheduler) expireStalePending() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := s.bookingService.ExpireStalePending(ctx, time.Now(), pendingMaxAge)
	if err != nil {
		log.Printf("jobs: expire stale pending bookings failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("jobs: cancelled %d stale pending bookings", count)
	}
}
