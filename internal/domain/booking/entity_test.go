package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/models"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:                 7,
		ReferenceNumber:    "ZEN202603040042",
		Status:             string(StatusAwaitingConfirmation),
		PreferredDate:      wednesday,
		PreferredTimeSlots: models.StringSlice{"10:00 AM"},
	}
}

func TestConfirm(t *testing.T) {
	b := pendingBooking()

	err := Confirm(b, wednesday, "10:30 AM")

	assert.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.Equal(t, wednesday, *b.ConfirmedDate)
	assert.Equal(t, "10:30 AM", b.ConfirmedTime)
}

func TestConfirm_RejectedFromCompleted(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusCompleted)

	err := Confirm(b, wednesday, "10:30 AM")

	_, ok := httperr.AsTransition(err)
	assert.True(t, ok)
	assert.Equal(t, string(StatusCompleted), b.Status, "a failed guard must not mutate the record")
	assert.Nil(t, b.ConfirmedDate)
}

func TestCancel(t *testing.T) {
	b := pendingBooking()
	now := wednesday.Add(10 * time.Hour)

	err := Cancel(b, "travel conflict", now)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), b.Status)
	assert.Equal(t, "travel conflict", b.CancellationReason)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestCancel_AbsorbingState(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusCancelled)

	err := Cancel(b, "again", wednesday)

	_, ok := httperr.AsTransition(err)
	assert.True(t, ok)
}

func TestReschedule_CapturesPreviousSchedule(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusConfirmed)
	confirmed := wednesday
	b.ConfirmedDate = &confirmed
	b.ConfirmedTime = "10:30 AM"

	newDate := wednesday.AddDate(0, 0, 2)
	now := wednesday.Add(9 * time.Hour)

	err := Reschedule(b, newDate, "4:00 PM", now, false)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusRescheduled), b.Status)
	assert.Equal(t, wednesday, *b.RescheduledFromDate)
	assert.Equal(t, "10:30 AM", b.RescheduledFromTime)
	assert.Equal(t, now, *b.RescheduledAt)

	assert.Equal(t, newDate, b.PreferredDate)
	assert.Equal(t, models.StringSlice{"4:00 PM"}, b.PreferredTimeSlots)
	assert.Equal(t, newDate, *b.ConfirmedDate)
	assert.Equal(t, "4:00 PM", b.ConfirmedTime)
}

func TestReschedule_SelfAllowedFromNoShow(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusNoShow)

	err := Reschedule(b, wednesday.AddDate(0, 0, 1), "11:00 AM", wednesday, false)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusRescheduled), b.Status)
}

func TestReschedule_StaffRejectedFromNoShow(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusNoShow)

	err := Reschedule(b, wednesday.AddDate(0, 0, 1), "11:00 AM", wednesday, true)

	te, ok := httperr.AsTransition(err)
	assert.True(t, ok)
	assert.Equal(t, []string{string(StatusConfirmed)}, te.Allowed)
}

func TestCheckOut_DerivesSessionDuration(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusInProgress)
	checkIn := wednesday.Add(10 * time.Hour)
	b.CheckInTime = &checkIn

	err := CheckOut(b, checkIn.Add(45*time.Minute))

	assert.NoError(t, err)
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.Equal(t, 45, b.SessionDurationMin)
}

func TestCheckOut_RoundsToNearestMinute(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusInProgress)
	checkIn := wednesday.Add(10 * time.Hour)
	b.CheckInTime = &checkIn

	err := CheckOut(b, checkIn.Add(29*time.Minute+40*time.Second))

	assert.NoError(t, err)
	assert.Equal(t, 30, b.SessionDurationMin)
}

func TestCheckOut_BeforeCheckInRejected(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusInProgress)
	checkIn := wednesday.Add(10 * time.Hour)
	b.CheckInTime = &checkIn

	err := CheckOut(b, checkIn.Add(-time.Minute))

	assert.True(t, httperr.IsBusiness(err, "checkout_before_checkin"))
	assert.Equal(t, string(StatusInProgress), b.Status)
}

func TestRate(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusCompleted)

	assert.NoError(t, Rate(b, 5))
	assert.Equal(t, 5, b.Rating)
	assert.Equal(t, string(StatusCompleted), b.Status, "rating must not change the status")
}

func TestRate_OnlyWhenCompleted(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusConfirmed)

	err := Rate(b, 4)

	_, ok := httperr.AsTransition(err)
	assert.True(t, ok)
	assert.Zero(t, b.Rating)
}

func TestRate_RangeEnforced(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusCompleted)

	assert.True(t, httperr.IsBusiness(Rate(b, 0), "invalid_rating"))
	assert.True(t, httperr.IsBusiness(Rate(b, 6), "invalid_rating"))
	assert.Zero(t, b.Rating)
}

// Full lifecycle: awaiting -> confirmed -> in progress -> completed, with the
// session duration derived from the check-in/check-out pair.
func TestLifecycle_CreateThroughCompletion(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, Confirm(b, wednesday, "10:30 AM"))
	assert.Equal(t, string(StatusConfirmed), b.Status)

	checkIn := wednesday.Add(10*time.Hour + 30*time.Minute)
	assert.NoError(t, CheckIn(b, checkIn))
	assert.Equal(t, string(StatusInProgress), b.Status)
	assert.Equal(t, checkIn, *b.CheckInTime)

	assert.NoError(t, CheckOut(b, checkIn.Add(45*time.Minute)))
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.Equal(t, 45, b.SessionDurationMin)

	assert.NoError(t, Rate(b, 5))
}
