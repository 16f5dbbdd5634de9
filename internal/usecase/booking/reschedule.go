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

type RescheduleBookingInput struct {
	BookingID uint
	ActorID   uint
	ByStaff   bool

	NewDate string // YYYY-MM-DD
	NewTime string // slot label
}

type RescheduleBooking struct {
	repo   domain.Repository
	notify Notifier
	audit  Auditor
}

func NewRescheduleBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
) *RescheduleBooking {
	return &RescheduleBooking{repo: repo, notify: notifier, audit: auditor}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	if in.NewDate == "" || in.NewTime == "" {
		return nil, httperr.ErrBusiness("missing_new_schedule")
	}

	b, err := fetchForActor(ctx, uc.repo, in.BookingID, in.ActorID, in.ByStaff)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.Now()
	newDate, err := time.ParseInLocation("2006-01-02", in.NewDate, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if err := domain.Reschedule(b, newDate, in.NewTime, now, in.ByStaff); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(transitionEvent(
		b,
		"booking_rescheduled",
		"Booking rescheduled",
		fmt.Sprintf(
			"Your booking %s has been moved to %s at %s.",
			b.ReferenceNumber,
			newDate.Format("02 Jan 2006"),
			in.NewTime,
		),
	))

	uc.audit.Dispatch(audit.Event{
		BranchID: &b.BranchID,
		UserID:   &in.ActorID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
