package booking

import (
	"context"
	"fmt"

	"github.com/zennara-clinics/booking-api/internal/audit"
	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
	"github.com/zennara-clinics/booking-api/internal/timezone"
)

type CancelBookingInput struct {
	BookingID uint
	ActorID   uint
	ByStaff   bool
	Reason    string
}

type CancelBooking struct {
	repo   domain.Repository
	notify Notifier
	audit  Auditor
}

func NewCancelBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
) *CancelBooking {
	return &CancelBooking{repo: repo, notify: notifier, audit: auditor}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*models.Booking, error) {

	b, err := fetchForActor(ctx, uc.repo, in.BookingID, in.ActorID, in.ByStaff)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b, in.Reason, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(transitionEvent(
		b,
		"booking_cancelled",
		"Booking cancelled",
		fmt.Sprintf("Your booking %s has been cancelled.", b.ReferenceNumber),
	))

	uc.audit.Dispatch(audit.Event{
		BranchID: &b.BranchID,
		UserID:   &in.ActorID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
