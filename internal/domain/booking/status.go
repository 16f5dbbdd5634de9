package booking

import "github.com/zennara-clinics/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusAwaitingConfirmation Status = "Awaiting Confirmation"
	StatusConfirmed            Status = "Confirmed"
	StatusInProgress           Status = "In Progress"
	StatusCompleted            Status = "Completed"
	StatusRescheduled          Status = "Rescheduled"
	StatusCancelled            Status = "Cancelled"
	StatusNoShow               Status = "No Show"
)

// ===============================
// Lifecycle Events
// ===============================

type Event string

const (
	EventConfirm         Event = "confirm"
	EventCancel          Event = "cancel"
	EventReschedule      Event = "reschedule"       // by the booking owner
	EventRescheduleStaff Event = "reschedule_staff" // by staff
	EventCheckIn         Event = "check_in"
	EventCheckOut        Event = "check_out"
	EventMarkNoShow      Event = "mark_no_show"
	EventRate            Event = "rate"
)

// allowedSources maps each event to the statuses it may fire from.
var allowedSources = map[Event][]Status{
	EventConfirm:         {StatusAwaitingConfirmation, StatusRescheduled},
	EventCancel:          {StatusAwaitingConfirmation, StatusConfirmed, StatusRescheduled},
	EventReschedule:      {StatusConfirmed, StatusNoShow},
	EventRescheduleStaff: {StatusConfirmed},
	EventCheckIn:         {StatusConfirmed, StatusRescheduled},
	EventCheckOut:        {StatusInProgress},
	EventMarkNoShow:      {StatusConfirmed, StatusRescheduled},
	EventRate:            {StatusCompleted},
}

// Guard rejects an event that is not defined for the current status. The
// error names both the current status and the allowed source set; events are
// never silently absorbed.
func Guard(ev Event, current Status) error {
	sources, ok := allowedSources[ev]
	if !ok {
		return httperr.ErrTransition(string(current), nil)
	}

	for _, s := range sources {
		if s == current {
			return nil
		}
	}

	allowed := make([]string, len(sources))
	for i, s := range sources {
		allowed[i] = string(s)
	}
	return httperr.ErrTransition(string(current), allowed)
}

// ActiveHoldingStatuses are the statuses that still reserve their time slot
// against new bookings.
func ActiveHoldingStatuses() []Status {
	return []Status{StatusAwaitingConfirmation, StatusConfirmed, StatusRescheduled}
}

func IsActiveHolding(s Status) bool {
	for _, h := range ActiveHoldingStatuses() {
		if h == s {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusAwaitingConfirmation
}
