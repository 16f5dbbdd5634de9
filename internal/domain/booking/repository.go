package booking

import (
	"context"
	"time"

	"github.com/zennara-clinics/booking-api/internal/models"
)

// ListFilter narrows the staff-side booking listing.
type ListFilter struct {
	Status   string
	BranchID uint
	Date     *time.Time
	Search   string // matches name, mobile number or reference
	Page     int
	PageSize int
}

type Repository interface {
	// -------- Branch --------
	GetBranchByID(
		ctx context.Context,
		id uint,
	) (*models.Branch, error)

	GetBranchByName(
		ctx context.Context,
		name string,
	) (*models.Branch, error)

	// -------- Consultation --------
	GetConsultation(
		ctx context.Context,
		id uint,
	) (*models.Consultation, error)

	// -------- User --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking (create / conflict) --------
	// CreateBooking inserts the record only if no active-holding booking
	// already claims one of its requested slots, in a single transaction.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Booking, error)

	GetBookingByReference(
		ctx context.Context,
		reference string,
	) (*models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
		f ListFilter,
	) ([]models.Booking, int64, error)

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	ListActiveBookings(
		ctx context.Context,
		branchID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	// -------- Expiry sweep --------
	ListAwaitingConfirmation(
		ctx context.Context,
	) ([]models.Booking, error)

	// DeleteAwaitingConfirmation removes the given bookings in one batch,
	// re-checking the status in the WHERE clause so a booking confirmed
	// after the scan survives. Returns the number actually deleted.
	DeleteAwaitingConfirmation(
		ctx context.Context,
		ids []uint,
	) (int64, error)
}
