package booking

import (
	"fmt"
	"math/rand"
	"time"
)

const referencePrefix = "ZEN"

// NewReferenceNumber returns "ZEN" + YYYYMMDD + a 4-digit random suffix.
// Uniqueness is enforced by the storage layer; callers retry on conflict.
func NewReferenceNumber(now time.Time) string {
	return fmt.Sprintf(
		"%s%s%04d",
		referencePrefix,
		now.Format("20060102"),
		rand.Intn(10000),
	)
}
