package booking

import "time"

type AvailabilityInput struct {
	BranchID uint
	Date     time.Time
}

// Availability is advisory: it reports which generated slots are free right
// now but does not reserve anything.
type Availability struct {
	AvailableSlots []string `json:"available_slots"`
	BookedSlots    []string `json:"booked_slots"`
}
