package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls   int32
	removed int
	err     error
	ran     chan struct{}
}

func newCountingSweeper(removed int, err error) *countingSweeper {
	return &countingSweeper{removed: removed, err: err, ran: make(chan struct{}, 8)}
}

func (s *countingSweeper) Execute(ctx context.Context) (int, error) {
	atomic.AddInt32(&s.calls, 1)
	select {
	case s.ran <- struct{}{}:
	default:
	}
	return s.removed, s.err
}

func TestRunOnceDelegatesToSweeper(t *testing.T) {
	sw := newCountingSweeper(3, nil)
	s := New(sw)

	removed, err := s.RunOnce(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&sw.calls))
}

func TestStartSweepsImmediately(t *testing.T) {
	sw := newCountingSweeper(0, nil)
	s := New(sw)

	s.Start()
	defer s.Stop()

	select {
	case <-sw.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("no sweep after Start")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	sw := newCountingSweeper(0, nil)
	s := New(sw)

	s.Start()
	<-sw.ran

	s.Stop()
	s.Stop()

	before := atomic.LoadInt32(&sw.calls)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, atomic.LoadInt32(&sw.calls))
}

func TestSweepErrorDoesNotStopLoop(t *testing.T) {
	sw := newCountingSweeper(0, assert.AnError)
	s := New(sw)

	s.Start()
	<-sw.ran

	// Loop must still be alive and stoppable after a failed sweep.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop hung after sweep error")
	}
}

func TestUntilNextHour(t *testing.T) {
	base := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Hour, untilNextHour(base))
	assert.Equal(t, 55*time.Minute, untilNextHour(base.Add(5*time.Minute)))
	assert.Equal(t, time.Second, untilNextHour(base.Add(59*time.Minute+59*time.Second)))
}
