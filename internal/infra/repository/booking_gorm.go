package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
	"github.com/zennara-clinics/booking-api/internal/timezone"
)

const referenceRetries = 3

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Branch
// --------------------------------------------------

func (r *BookingGormRepository) GetBranchByID(
	ctx context.Context,
	id uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Preload("Hours").
		First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BookingGormRepository) GetBranchByName(
	ctx context.Context,
	name string,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Preload("Hours").
		Where("name = ?", name).
		First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

// --------------------------------------------------
// Consultation
// --------------------------------------------------

func (r *BookingGormRepository) GetConsultation(
	ctx context.Context,
	id uint,
) (*models.Consultation, error) {

	var consultation models.Consultation
	if err := r.db.WithContext(ctx).First(&consultation, id).Error; err != nil {
		return nil, err
	}
	return &consultation, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	dayStart, dayEnd := dayBounds(b.PreferredDate)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var holders []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "preferred_time_slots").
			Where(
				"branch_id = ? AND status IN ? AND preferred_date >= ? AND preferred_date < ?",
				b.BranchID,
				activeStatuses(),
				dayStart, dayEnd,
			).
			Find(&holders).Error; err != nil {
			return err
		}

		for _, h := range holders {
			for _, slot := range b.PreferredTimeSlots {
				if h.HoldsSlot(slot) {
					return httperr.ErrBusiness("slot_unavailable")
				}
			}
		}

		// Reference numbers are random-suffixed; retry on the unique-index
		// collision instead of pre-checking.
		for attempt := 0; ; attempt++ {
			err := tx.Create(b).Error
			if err == nil {
				return nil
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < referenceRetries {
				b.ReferenceNumber = domain.NewReferenceNumber(timezone.Now())
				continue
			}
			return err
		}
	})
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Consultation").
		Preload("Branch").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Consultation").
		Preload("Branch").
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingByReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Consultation").
		Preload("Branch").
		Where("reference_number = ?", reference).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Consultation").
		Preload("Branch").
		Where("user_id = ?", userID).
		Order("preferred_date DESC, id DESC").
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BranchID != 0 {
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if f.Date != nil {
		dayStart, dayEnd := dayBounds(*f.Date)
		q = q.Where("preferred_date >= ? AND preferred_date < ?", dayStart, dayEnd)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"full_name ILIKE ? OR mobile_number ILIKE ? OR reference_number ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var bs []models.Booking
	if err := q.
		Preload("Consultation").
		Preload("Branch").
		Order("preferred_date DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bs).Error; err != nil {
		return nil, 0, err
	}

	return bs, total, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	branchID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "status", "preferred_time_slots").
		Where(
			"branch_id = ? AND status IN ? AND preferred_date >= ? AND preferred_date < ?",
			branchID,
			activeStatuses(),
			dayStart, dayEnd,
		).
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

// --------------------------------------------------
// Expiry sweep
// --------------------------------------------------

func (r *BookingGormRepository) ListAwaitingConfirmation(
	ctx context.Context,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusAwaitingConfirmation)).
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) DeleteAwaitingConfirmation(
	ctx context.Context,
	ids []uint,
) (int64, error) {

	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, string(domain.StatusAwaitingConfirmation)).
		Delete(&models.Booking{})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func activeStatuses() []string {
	hs := domain.ActiveHoldingStatuses()
	out := make([]string, len(hs))
	for i, s := range hs {
		out[i] = string(s)
	}
	return out
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
