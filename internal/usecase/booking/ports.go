package booking

import (
	"context"
	"time"

	"github.com/zennara-clinics/booking-api/internal/audit"
	"github.com/zennara-clinics/booking-api/internal/models"
	"github.com/zennara-clinics/booking-api/internal/notify"
)

// SlotLock holds a (branch, date, slot) claim across processes while a
// creation transaction runs.
type SlotLock interface {
	Acquire(ctx context.Context, branchID uint, date time.Time, slot string) (bool, error)
	Release(ctx context.Context, branchID uint, date time.Time, slot string) error
}

type Notifier interface {
	Dispatch(ev notify.Event)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

// fetchForActor loads a booking scoped to its owner, or unscoped for staff.
func fetchForActor(
	ctx context.Context,
	repo domainRepo,
	bookingID uint,
	actorID uint,
	byStaff bool,
) (*models.Booking, error) {
	if byStaff {
		return repo.GetBooking(ctx, bookingID)
	}
	return repo.GetBookingForUser(ctx, bookingID, actorID)
}

type domainRepo interface {
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	GetBookingForUser(ctx context.Context, id uint, userID uint) (*models.Booking, error)
}

// transitionEvent builds the standard post-transition notification for a
// booking's owner.
func transitionEvent(b *models.Booking, evType, title, message string) notify.Event {
	id := b.ID
	return notify.Event{
		UserID:    b.UserID,
		BookingID: &id,
		Type:      evType,
		Title:     title,
		Message:   message,
		Email:     b.Email,
		Mobile:    b.MobileNumber,
	}
}
