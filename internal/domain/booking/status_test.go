package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zennara-clinics/booking-api/internal/httperr"
)

var allStatuses = []Status{
	StatusAwaitingConfirmation,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusRescheduled,
	StatusCancelled,
	StatusNoShow,
}

var allEvents = []Event{
	EventConfirm,
	EventCancel,
	EventReschedule,
	EventRescheduleStaff,
	EventCheckIn,
	EventCheckOut,
	EventMarkNoShow,
	EventRate,
}

// Every (status, event) pair either fires or is rejected with a transition
// error naming the current status and the allowed source set; nothing is
// silently absorbed.
func TestGuard_Closure(t *testing.T) {
	for _, ev := range allEvents {
		sources := allowedSources[ev]

		for _, st := range allStatuses {
			err := Guard(ev, st)

			permitted := false
			for _, s := range sources {
				if s == st {
					permitted = true
				}
			}

			if permitted {
				assert.NoError(t, err, "event %s from %s", ev, st)
				continue
			}

			te, ok := httperr.AsTransition(err)
			assert.True(t, ok, "event %s from %s must reject with a transition error", ev, st)
			assert.Equal(t, string(st), te.Current)
			assert.Len(t, te.Allowed, len(sources))
			for _, s := range sources {
				assert.Contains(t, te.Allowed, string(s))
			}
		}
	}
}

func TestGuard_UnknownEvent(t *testing.T) {
	err := Guard(Event("vanish"), StatusConfirmed)

	te, ok := httperr.AsTransition(err)
	assert.True(t, ok)
	assert.Equal(t, string(StatusConfirmed), te.Current)
	assert.Empty(t, te.Allowed)
}

func TestActiveHoldingStatuses(t *testing.T) {
	assert.True(t, IsActiveHolding(StatusAwaitingConfirmation))
	assert.True(t, IsActiveHolding(StatusConfirmed))
	assert.True(t, IsActiveHolding(StatusRescheduled))

	assert.False(t, IsActiveHolding(StatusCancelled))
	assert.False(t, IsActiveHolding(StatusNoShow))
	assert.False(t, IsActiveHolding(StatusCompleted))
	assert.False(t, IsActiveHolding(StatusInProgress))
}
