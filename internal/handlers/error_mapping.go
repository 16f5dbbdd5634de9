package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zennara-clinics/booking-api/internal/httperr"
)

// notFoundCodes are business errors surfaced as 404 rather than 400.
var notFoundCodes = map[string]string{
	"branch_not_found":       "Branch not found.",
	"consultation_not_found": "Consultation not found.",
	"booking_not_found":      "Booking not found.",
}

// writeDomainError maps use-case errors onto the HTTP surface.
func writeDomainError(c *gin.Context, err error) {
	if te, ok := httperr.AsTransition(err); ok {
		httperr.InvalidTransition(c, te)
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		if msg, ok := notFoundCodes[be.Code]; ok {
			httperr.NotFound(c, be.Code, msg)
			return
		}
		if be.Code == "slot_unavailable" {
			httperr.Conflict(c, be.Code, "The requested time slot is no longer available.")
			return
		}
		httperr.BadRequest(c, be.Code, "Invalid request.")
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Record not found.")
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}
