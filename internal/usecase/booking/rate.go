package booking

import (
	"context"

	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
)

// RateBooking records the post-session rating. No status change and no
// notification fan-out; the rating is the end of the conversation.
type RateBooking struct {
	repo domain.Repository
}

func NewRateBooking(repo domain.Repository) *RateBooking {
	return &RateBooking{repo: repo}
}

func (uc *RateBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
	rating int,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Rate(b, rating); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
