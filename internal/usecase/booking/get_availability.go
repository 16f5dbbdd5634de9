package booking

import (
	"context"
	"time"

	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the free/held split of a branch's generated slots for one
// date. Read-only and advisory; creation re-checks under a row lock.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	branchID uint,
	date time.Time,
) (*domain.Availability, error) {

	branch, err := uc.repo.GetBranchByID(ctx, branchID)
	if err != nil {
		return nil, httperr.ErrBusiness("branch_not_found")
	}

	return uc.forBranch(ctx, branch, date)
}

func (uc *GetAvailability) ExecuteByName(
	ctx context.Context,
	branchName string,
	date time.Time,
) (*domain.Availability, error) {

	branch, err := uc.repo.GetBranchByName(ctx, branchName)
	if err != nil {
		return nil, httperr.ErrBusiness("branch_not_found")
	}

	return uc.forBranch(ctx, branch, date)
}

func (uc *GetAvailability) forBranch(
	ctx context.Context,
	branch *models.Branch,
	date time.Time,
) (*domain.Availability, error) {

	generated := domain.GenerateSlots(branch, date)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	holders, err := uc.repo.ListActiveBookings(
		ctx,
		branch.ID,
		dayStart,
		dayStart.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	booked := map[string]bool{}
	for _, h := range holders {
		for _, slot := range h.PreferredTimeSlots {
			booked[slot] = true
		}
	}

	out := &domain.Availability{
		AvailableSlots: []string{},
		BookedSlots:    []string{},
	}
	for _, slot := range generated {
		if booked[slot] {
			out.BookedSlots = append(out.BookedSlots, slot)
		} else {
			out.AvailableSlots = append(out.AvailableSlots, slot)
		}
	}

	return out, nil
}
