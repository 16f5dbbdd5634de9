package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/zennara-clinics/booking-api/internal/audit"
	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
	"github.com/zennara-clinics/booking-api/internal/timezone"
)

type ConfirmBookingInput struct {
	BookingID uint
	StaffID   uint

	// Optional; defaults to the preferred date.
	ConfirmedDate string // YYYY-MM-DD
	ConfirmedTime string // slot label, e.g. "10:30 AM"
}

// ConfirmBooking is staff-only: locks in the date and time the clinic will
// actually honour, which may differ from what the client asked for.
type ConfirmBooking struct {
	repo   domain.Repository
	notify Notifier
	audit  Auditor
}

func NewConfirmBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
) *ConfirmBooking {
	return &ConfirmBooking{repo: repo, notify: notifier, audit: auditor}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	in ConfirmBookingInput,
) (*models.Booking, error) {

	if in.ConfirmedTime == "" {
		return nil, httperr.ErrBusiness("missing_confirmed_time")
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	date := b.PreferredDate
	if in.ConfirmedDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.ConfirmedDate, timezone.Now().Location())
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		date = parsed
	}

	if err := domain.Confirm(b, date, in.ConfirmedTime); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(transitionEvent(
		b,
		"booking_confirmed",
		"Booking confirmed",
		fmt.Sprintf(
			"Your booking %s is confirmed for %s at %s.",
			b.ReferenceNumber,
			date.Format("02 Jan 2006"),
			in.ConfirmedTime,
		),
	))

	uc.audit.Dispatch(audit.Event{
		BranchID: &b.BranchID,
		UserID:   &in.StaffID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
