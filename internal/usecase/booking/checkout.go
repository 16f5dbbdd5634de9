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

type CheckOutBooking struct {
	repo   domain.Repository
	notify Notifier
	audit  Auditor
}

func NewCheckOutBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
) *CheckOutBooking {
	return &CheckOutBooking{repo: repo, notify: notifier, audit: auditor}
}

func (uc *CheckOutBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actorID uint,
	byStaff bool,
) (*models.Booking, error) {

	b, err := fetchForActor(ctx, uc.repo, bookingID, actorID, byStaff)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CheckOut(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(transitionEvent(
		b,
		"booking_completed",
		"Session completed",
		fmt.Sprintf(
			"Booking %s is complete. Session duration: %d minutes.",
			b.ReferenceNumber,
			b.SessionDurationMin,
		),
	))

	uc.audit.Dispatch(audit.Event{
		BranchID: &b.BranchID,
		UserID:   &actorID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
