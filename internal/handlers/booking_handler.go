package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/httpresp"
	"github.com/zennara-clinics/booking-api/internal/middleware"
	ucBooking "github.com/zennara-clinics/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo domain.Repository

	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
	cancelUC       *ucBooking.CancelBooking
	rescheduleUC   *ucBooking.RescheduleBooking
	checkInUC      *ucBooking.CheckInBooking
	checkOutUC     *ucBooking.CheckOutBooking
	rateUC         *ucBooking.RateBooking
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
	cancelUC *ucBooking.CancelBooking,
	rescheduleUC *ucBooking.RescheduleBooking,
	checkInUC *ucBooking.CheckInBooking,
	checkOutUC *ucBooking.CheckOutBooking,
	rateUC *ucBooking.RateBooking,
) *BookingHandler {
	return &BookingHandler{
		repo:           repo,
		createUC:       createUC,
		availabilityUC: availabilityUC,
		cancelUC:       cancelUC,
		rescheduleUC:   rescheduleUC,
		checkInUC:      checkInUC,
		checkOutUC:     checkOutUC,
		rateUC:         rateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ConsultationID uint     `json:"consultation_id" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	TimeSlots      []string `json:"time_slots" binding:"required,min=1"`
	FullName       string   `json:"full_name" binding:"required"`
	MobileNumber   string   `json:"mobile_number" binding:"required"`
	Email          string   `json:"email" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RescheduleBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type RateBookingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

func (h *BookingHandler) SlotsForBranch(c *gin.Context) {
	branchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_branch_id", "Invalid branch id.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date required as YYYY-MM-DD.")
		return
	}

	availability, err := h.availabilityUC.Execute(c.Request.Context(), uint(branchID), date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, availability)
}

func (h *BookingHandler) SlotsForLocation(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		httperr.BadRequest(c, "missing_location", "Location required.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date required as YYYY-MM-DD.")
		return
	}

	availability, err := h.availabilityUC.ExecuteByName(c.Request.Context(), location, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, availability)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or invalid fields.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:         userID,
		ConsultationID: req.ConsultationID,
		BranchName:     req.Location,
		Date:           req.Date,
		TimeSlots:      req.TimeSlots,
		FullName:       req.FullName,
		MobileNumber:   req.MobileNumber,
		Email:          req.Email,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// READ (own bookings)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bs, err := h.repo.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, bs)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.repo.GetBookingForUser(c.Request.Context(), uint(id), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) GetByReference(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	b, err := h.repo.GetBookingByReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if b.UserID != userID {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// TRANSITIONS (user side)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cancellation reason required.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), ucBooking.CancelBookingInput{
		BookingID: uint(id),
		ActorID:   userID,
		Reason:    req.Reason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "New date and time required.")
		return
	}

	b, err := h.rescheduleUC.Execute(c.Request.Context(), ucBooking.RescheduleBookingInput{
		BookingID: uint(id),
		ActorID:   userID,
		NewDate:   req.Date,
		NewTime:   req.Time,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) CheckIn(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.checkInUC.Execute(c.Request.Context(), uint(id), userID, false)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) CheckOut(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.checkOutUC.Execute(c.Request.Context(), uint(id), userID, false)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Rate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req RateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rating between 1 and 5 required.")
		return
	}

	b, err := h.rateUC.Execute(c.Request.Context(), uint(id), userID, req.Rating)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}
