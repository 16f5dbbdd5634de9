package handlers

import (
	"time"

	"github.com/zennara-clinics/booking-api/internal/timezone"
)

// parseDate interprets YYYY-MM-DD in the clinic's timezone.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.ClinicLocation(),
	)
}
