package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/models"
)

// 2026-03-04 is a Wednesday.
var availDate = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

func availBranch() *models.Branch {
	return &models.Branch{
		ID:              1,
		Name:            "Jubilee Hills",
		IsActive:        true,
		SlotDurationMin: 30,
		Hours: []models.BranchHours{
			{Weekday: int(time.Wednesday), IsOpen: true, OpenTime: "10:00", CloseTime: "12:00"},
		},
	}
}

func TestGetAvailability_SplitsBookedAndFree(t *testing.T) {
	repo := &MockRepository{}

	held := models.Booking{
		ID:                 1,
		Status:             string(domain.StatusConfirmed),
		PreferredTimeSlots: models.StringSlice{"10:30 AM"},
	}

	repo.On("GetBranchByID", mock.Anything, uint(1)).Return(availBranch(), nil)
	repo.On("ListActiveBookings", mock.Anything, uint(1), availDate, availDate.Add(24*time.Hour)).
		Return([]models.Booking{held}, nil)

	uc := NewGetAvailability(repo)

	out, err := uc.Execute(context.Background(), 1, availDate)

	assert.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM", "11:00 AM", "11:30 AM"}, out.AvailableSlots)
	assert.Equal(t, []string{"10:30 AM"}, out.BookedSlots)
}

func TestGetAvailability_DisjointAndBounded(t *testing.T) {
	repo := &MockRepository{}

	holders := []models.Booking{
		{ID: 1, PreferredTimeSlots: models.StringSlice{"10:00 AM", "10:30 AM"}},
		// A claim outside the generated set never leaks into the output.
		{ID: 2, PreferredTimeSlots: models.StringSlice{"7:00 AM"}},
	}

	repo.On("GetBranchByID", mock.Anything, uint(1)).Return(availBranch(), nil)
	repo.On("ListActiveBookings", mock.Anything, uint(1), mock.Anything, mock.Anything).
		Return(holders, nil)

	uc := NewGetAvailability(repo)

	out, err := uc.Execute(context.Background(), 1, availDate)
	assert.NoError(t, err)

	generated := map[string]bool{}
	for _, s := range domain.GenerateSlots(availBranch(), availDate) {
		generated[s] = true
	}

	seen := map[string]bool{}
	for _, s := range out.AvailableSlots {
		assert.True(t, generated[s])
		seen[s] = true
	}
	for _, s := range out.BookedSlots {
		assert.True(t, generated[s])
		assert.False(t, seen[s], "available and booked must be disjoint")
	}
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := &MockRepository{}

	branch := availBranch()
	branch.Hours[0].IsOpen = false

	repo.On("GetBranchByID", mock.Anything, uint(1)).Return(branch, nil)
	repo.On("ListActiveBookings", mock.Anything, uint(1), mock.Anything, mock.Anything).
		Return([]models.Booking{}, nil)

	uc := NewGetAvailability(repo)

	out, err := uc.Execute(context.Background(), 1, availDate)

	assert.NoError(t, err)
	assert.Empty(t, out.AvailableSlots)
	assert.Empty(t, out.BookedSlots)
}

func TestGetAvailability_ByName(t *testing.T) {
	repo := &MockRepository{}

	repo.On("GetBranchByName", mock.Anything, "Jubilee Hills").Return(availBranch(), nil)
	repo.On("ListActiveBookings", mock.Anything, uint(1), mock.Anything, mock.Anything).
		Return([]models.Booking{}, nil)

	uc := NewGetAvailability(repo)

	out, err := uc.ExecuteByName(context.Background(), "Jubilee Hills", availDate)

	assert.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"}, out.AvailableSlots)
}
