package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var referencePattern = regexp.MustCompile(`^ZEN\d{12}$`)

func TestNewReferenceNumber_Format(t *testing.T) {
	now := time.Date(2026, 3, 4, 15, 4, 5, 0, time.UTC)

	for i := 0; i < 100; i++ {
		ref := NewReferenceNumber(now)

		assert.Regexp(t, referencePattern, ref)
		assert.Equal(t, "ZEN20260304", ref[:11])
	}
}
