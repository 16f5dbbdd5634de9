package booking

import (
	"context"
	"fmt"

	"github.com/zennara-clinics/booking-api/internal/audit"
	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
)

// MarkNoShow is staff-only.
type MarkNoShow struct {
	repo   domain.Repository
	notify Notifier
	audit  Auditor
}

func NewMarkNoShow(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
) *MarkNoShow {
	return &MarkNoShow{repo: repo, notify: notifier, audit: auditor}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	bookingID uint,
	staffID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.MarkNoShow(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(transitionEvent(
		b,
		"booking_no_show",
		"Missed appointment",
		fmt.Sprintf(
			"You missed your booking %s. You can reschedule it from the app.",
			b.ReferenceNumber,
		),
	))

	uc.audit.Dispatch(audit.Event{
		BranchID: &b.BranchID,
		UserID:   &staffID,
		Action:   "booking_no_show",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
