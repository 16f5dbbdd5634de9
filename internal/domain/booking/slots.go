package booking

import (
	"time"

	"github.com/zennara-clinics/booking-api/internal/models"
)

// SlotLabelFormat renders "9:00 AM", "1:30 PM".
const SlotLabelFormat = "3:04 PM"

// GenerateSlots walks the branch's opening hours for the date's weekday and
// returns the ordered bookable time labels. Closed days produce nothing, and
// a trailing remainder shorter than the slot duration is dropped rather than
// padded. Pure function of the branch configuration and the date.
func GenerateSlots(branch *models.Branch, date time.Time) []string {
	wh := branch.HoursFor(date.Weekday())
	if wh == nil || !wh.IsOpen || wh.OpenTime == "" || wh.CloseTime == "" {
		return nil
	}

	loc := date.Location()

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	open, ok := parseHM(wh.OpenTime)
	if !ok {
		return nil
	}
	closeAt, ok := parseHM(wh.CloseTime)
	if !ok || !open.Before(closeAt) {
		return nil
	}

	dur := time.Duration(branch.SlotDurationMin) * time.Minute
	if dur <= 0 {
		return nil
	}

	var slots []string
	for cur := open; !cur.Add(dur).After(closeAt); cur = cur.Add(dur) {
		slots = append(slots, cur.Format(SlotLabelFormat))
	}
	return slots
}

// ParseSlotLabel converts a slot label back into a time-of-day anchored on
// the given date.
func ParseSlotLabel(label string, date time.Time) (time.Time, error) {
	t, err := time.Parse(SlotLabelFormat, label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
