package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zennara-clinics/booking-api/internal/audit"
	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
	"github.com/zennara-clinics/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID         uint
	ConsultationID uint
	BranchName     string

	Date      string // YYYY-MM-DD
	TimeSlots []string

	FullName     string
	MobileNumber string
	Email        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	lock   SlotLock
	notify Notifier
	audit  Auditor
	now    func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	lock SlotLock,
	notifier Notifier,
	auditor Auditor,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		lock:   lock,
		notify: notifier,
		audit:  auditor,
		now:    timezone.Now,
	}
}

func (uc *CreateBooking) WithClock(now func() time.Time) *CreateBooking {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// All validation happens before any write.
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.MobileNumber) == "" ||
		strings.TrimSpace(in.Email) == "" {
		return nil, httperr.ErrBusiness("missing_contact_fields")
	}
	if len(in.TimeSlots) == 0 {
		return nil, httperr.ErrBusiness("missing_time_slots")
	}

	branch, err := uc.repo.GetBranchByName(ctx, in.BranchName)
	if err != nil || !branch.IsActive {
		return nil, httperr.ErrBusiness("branch_not_found")
	}

	consultation, err := uc.repo.GetConsultation(ctx, in.ConsultationID)
	if err != nil || !consultation.Active {
		return nil, httperr.ErrBusiness("consultation_not_found")
	}

	now := uc.now()
	date, err := time.ParseInLocation("2006-01-02", in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	generated := domain.GenerateSlots(branch, date)
	for _, slot := range in.TimeSlots {
		if !contains(generated, slot) {
			return nil, httperr.ErrBusiness("invalid_slot")
		}
	}

	// Cross-process hold; the create transaction below re-checks under a
	// row lock, so losing the hold only costs an early rejection.
	var held []string
	defer func() {
		for _, slot := range held {
			// TTL reclaims the key if the delete fails.
			_ = uc.lock.Release(ctx, branch.ID, date, slot)
		}
	}()
	for _, slot := range in.TimeSlots {
		ok, err := uc.lock.Acquire(ctx, branch.ID, date, slot)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
		held = append(held, slot)
	}

	b := &models.Booking{
		UserID:         in.UserID,
		ConsultationID: consultation.ID,
		BranchID:       branch.ID,

		FullName:          in.FullName,
		MobileNumber:      in.MobileNumber,
		Email:             in.Email,
		PreferredLocation: branch.Name,

		PreferredDate:      date,
		PreferredTimeSlots: models.StringSlice(in.TimeSlots),

		Status:          string(domain.InitialStatus()),
		ReferenceNumber: domain.NewReferenceNumber(now),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	ev := transitionEvent(
		b,
		"booking_created",
		"Booking received",
		fmt.Sprintf(
			"Your booking %s at %s on %s (%s) is awaiting confirmation.",
			b.ReferenceNumber,
			branch.Name,
			date.Format("02 Jan 2006"),
			strings.Join(in.TimeSlots, ", "),
		),
	)
	ev.WithVoice = true
	uc.notify.Dispatch(ev)

	uc.audit.Dispatch(audit.Event{
		BranchID: &branch.ID,
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
