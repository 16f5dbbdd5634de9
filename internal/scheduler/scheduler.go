package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Sweeper runs one expiry sweep and reports how many bookings it removed.
type Sweeper interface {
	Execute(ctx context.Context) (int, error)
}

// ExpiryScheduler owns the recurring sweep: one run at Start, then a run at
// the top of every hour until Stop. The sweep itself stays synchronous and
// injectable so tests (and the manual cleanup endpoint) call it directly.
type ExpiryScheduler struct {
	sweeper Sweeper
	timeout time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(sweeper Sweeper) *ExpiryScheduler {
	return &ExpiryScheduler{
		sweeper: sweeper,
		timeout: 5 * time.Minute,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *ExpiryScheduler) Start() {
	go s.loop()
}

func (s *ExpiryScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

// RunOnce executes a single sweep synchronously.
func (s *ExpiryScheduler) RunOnce(ctx context.Context) (int, error) {
	return s.sweeper.Execute(ctx)
}

func (s *ExpiryScheduler) loop() {
	defer close(s.done)

	s.sweep()

	for {
		timer := time.NewTimer(untilNextHour(time.Now()))
		select {
		case <-timer.C:
			s.sweep()
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

func (s *ExpiryScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	removed, err := s.sweeper.Execute(ctx)
	if err != nil {
		log.Printf("expiry sweep error: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("expiry sweep removed %d bookings", removed)
	}
}

func untilNextHour(now time.Time) time.Duration {
	next := now.Truncate(time.Hour).Add(time.Hour)
	return next.Sub(now)
}
