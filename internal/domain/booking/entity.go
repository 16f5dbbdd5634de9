package booking

import (
	"math"
	"time"

	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Every action checks the transition guard first and mutates the record only
// when the event is permitted. A failed guard leaves the record untouched.

func Confirm(b *models.Booking, date time.Time, timeLabel string) error {
	if err := Guard(EventConfirm, Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedDate = &date
	b.ConfirmedTime = timeLabel
	return nil
}

func Cancel(b *models.Booking, reason string, now time.Time) error {
	if err := Guard(EventCancel, Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancellationReason = reason
	b.CancelledAt = &now
	return nil
}

// Reschedule records where the booking moved from, then overwrites both the
// preferred and confirmed date/time with the new values.
func Reschedule(b *models.Booking, newDate time.Time, newSlot string, now time.Time, byStaff bool) error {
	ev := EventReschedule
	if byStaff {
		ev = EventRescheduleStaff
	}
	if err := Guard(ev, Status(b.Status)); err != nil {
		return err
	}

	prevDate := b.PreferredDate
	prevTime := ""
	if len(b.PreferredTimeSlots) > 0 {
		prevTime = b.PreferredTimeSlots[0]
	}
	if b.ConfirmedTime != "" {
		prevTime = b.ConfirmedTime
	}
	if b.ConfirmedDate != nil {
		prevDate = *b.ConfirmedDate
	}

	b.Status = string(StatusRescheduled)
	b.RescheduledFromDate = &prevDate
	b.RescheduledFromTime = prevTime
	b.RescheduledAt = &now

	b.PreferredDate = newDate
	b.PreferredTimeSlots = models.StringSlice{newSlot}
	b.ConfirmedDate = &newDate
	b.ConfirmedTime = newSlot
	return nil
}

func CheckIn(b *models.Booking, now time.Time) error {
	if err := Guard(EventCheckIn, Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusInProgress)
	b.CheckInTime = &now
	return nil
}

func CheckOut(b *models.Booking, now time.Time) error {
	if err := Guard(EventCheckOut, Status(b.Status)); err != nil {
		return err
	}
	if b.CheckInTime != nil && !now.After(*b.CheckInTime) {
		return httperr.ErrBusiness("checkout_before_checkin")
	}

	b.Status = string(StatusCompleted)
	b.CheckOutTime = &now
	if b.CheckInTime != nil {
		b.SessionDurationMin = int(math.Round(now.Sub(*b.CheckInTime).Minutes()))
	}
	return nil
}

func MarkNoShow(b *models.Booking) error {
	if err := Guard(EventMarkNoShow, Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusNoShow)
	return nil
}

// Rate is the one post-terminal action; it never changes the status.
func Rate(b *models.Booking, rating int) error {
	if err := Guard(EventRate, Status(b.Status)); err != nil {
		return err
	}
	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}

	b.Rating = rating
	return nil
}
