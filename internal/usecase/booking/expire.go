package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/models"
	"github.com/zennara-clinics/booking-api/internal/notify"
	"github.com/zennara-clinics/booking-api/internal/timezone"
)

// ExpireStaleBookings sweeps the unconfirmed pool: a booking still Awaiting
// Confirmation whose reserved date/time has elapsed is removed. Deletion runs
// first (freeing the record from slot contention), then expiry emails are
// attempted from the detached copies; one send failure skips that booking
// only. The batch delete re-checks the status, so anything confirmed between
// scan and delete survives; at worst it receives a stale expiry email.
type ExpireStaleBookings struct {
	repo  domain.Repository
	email notify.EmailSender
	now   func() time.Time
}

func NewExpireStaleBookings(
	repo domain.Repository,
	email notify.EmailSender,
) *ExpireStaleBookings {
	return &ExpireStaleBookings{
		repo:  repo,
		email: email,
		now:   timezone.Now,
	}
}

func (uc *ExpireStaleBookings) WithClock(now func() time.Time) *ExpireStaleBookings {
	uc.now = now
	return uc
}

// Execute runs one sweep and returns the number of bookings removed.
func (uc *ExpireStaleBookings) Execute(ctx context.Context) (int, error) {

	pending, err := uc.repo.ListAwaitingConfirmation(ctx)
	if err != nil {
		return 0, err
	}

	now := uc.now()

	var expired []models.Booking
	var ids []uint
	for _, b := range pending {
		if uc.isExpired(&b, now) {
			expired = append(expired, b)
			ids = append(ids, b.ID)
		}
	}

	if len(ids) == 0 {
		return 0, nil
	}

	deleted, err := uc.repo.DeleteAwaitingConfirmation(ctx, ids)
	if err != nil {
		return 0, err
	}

	for _, b := range expired {
		if b.Email == "" {
			continue
		}
		err := uc.email.SendEmail(
			ctx,
			b.Email,
			"Booking expired",
			fmt.Sprintf(
				"Your unconfirmed booking %s for %s has expired. Please book again.",
				b.ReferenceNumber,
				b.PreferredDate.Format("02 Jan 2006"),
			),
		)
		if err != nil {
			log.Printf("expiry email for %s failed: %v", b.ReferenceNumber, err)
		}
	}

	return int(deleted), nil
}

func (uc *ExpireStaleBookings) isExpired(b *models.Booking, now time.Time) bool {
	loc := now.Location()

	d := b.PreferredDate.In(loc)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if day.Before(today) {
		return true
	}
	if !day.Equal(today) {
		return false
	}

	// Same-day: expired once the first requested slot's time-of-day has
	// passed. Unparseable or missing labels keep the booking.
	if len(b.PreferredTimeSlots) == 0 {
		return false
	}
	slotAt, err := domain.ParseSlotLabel(b.PreferredTimeSlots[0], now)
	if err != nil {
		return false
	}
	return slotAt.Before(now)
}
