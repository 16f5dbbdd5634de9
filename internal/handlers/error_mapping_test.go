package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/zennara-clinics/booking-api/internal/httperr"
)

func writeTo(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	writeDomainError(c, err)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestWriteDomainError_TransitionPayload(t *testing.T) {
	status, body := writeTo(t, httperr.ErrTransition(
		"Completed",
		[]string{"Awaiting Confirmation", "Rescheduled"},
	))

	assert.Equal(t, 400, status)
	assert.Equal(t, "invalid_transition", body["error_code"])
	assert.Equal(t, "Completed", body["current_status"])
	assert.Equal(t,
		[]any{"Awaiting Confirmation", "Rescheduled"},
		body["allowed_statuses"],
	)
}

func TestWriteDomainError_NotFoundCodes(t *testing.T) {
	for _, code := range []string{"branch_not_found", "consultation_not_found", "booking_not_found"} {
		status, body := writeTo(t, httperr.ErrBusiness(code))

		assert.Equal(t, 404, status, code)
		assert.Equal(t, code, body["error_code"])
	}
}

func TestWriteDomainError_SlotRaceIsConflict(t *testing.T) {
	status, body := writeTo(t, httperr.ErrBusiness("slot_unavailable"))

	assert.Equal(t, 409, status)
	assert.Equal(t, "slot_unavailable", body["error_code"])
}

func TestWriteDomainError_OtherBusinessIsBadRequest(t *testing.T) {
	status, body := writeTo(t, httperr.ErrBusiness("invalid_date"))

	assert.Equal(t, 400, status)
	assert.Equal(t, "invalid_date", body["error_code"])
}

func TestWriteDomainError_GormNotFound(t *testing.T) {
	status, body := writeTo(t, gorm.ErrRecordNotFound)

	assert.Equal(t, 404, status)
	assert.Equal(t, "not_found", body["error_code"])
}

func TestWriteDomainError_UnknownIsInternal(t *testing.T) {
	status, body := writeTo(t, errors.New("boom"))

	assert.Equal(t, 500, status)
	assert.Equal(t, "internal_error", body["error_code"])
}
