package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/dto"
	"github.com/zennara-clinics/booking-api/internal/httperr"
	"github.com/zennara-clinics/booking-api/internal/httpresp"
	"github.com/zennara-clinics/booking-api/internal/middleware"
	ucBooking "github.com/zennara-clinics/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	repo domain.Repository

	confirmUC    *ucBooking.ConfirmBooking
	cancelUC     *ucBooking.CancelBooking
	checkInUC    *ucBooking.CheckInBooking
	checkOutUC   *ucBooking.CheckOutBooking
	noShowUC     *ucBooking.MarkNoShow
	expireUC     *ucBooking.ExpireStaleBookings
	rescheduleUC *ucBooking.RescheduleBooking
}

func NewAdminBookingHandler(
	repo domain.Repository,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	checkInUC *ucBooking.CheckInBooking,
	checkOutUC *ucBooking.CheckOutBooking,
	noShowUC *ucBooking.MarkNoShow,
	expireUC *ucBooking.ExpireStaleBookings,
	rescheduleUC *ucBooking.RescheduleBooking,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		repo:         repo,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		checkInUC:    checkInUC,
		checkOutUC:   checkOutUC,
		noShowUC:     noShowUC,
		expireUC:     expireUC,
		rescheduleUC: rescheduleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ConfirmBookingRequest struct {
	ConfirmedDate string `json:"confirmed_date"`
	ConfirmedTime string `json:"confirmed_time" binding:"required"`
}

// ======================================================
// LIST / READ
// ======================================================

func (h *AdminBookingHandler) ListAll(c *gin.Context) {
	var q dto.AdminBookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_query", "Invalid filter parameters.")
		return
	}

	filter := domain.ListFilter{
		Status:   q.Status,
		BranchID: q.BranchID,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Date != "" {
		date, err := parseDate(q.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		filter.Date = &date
	}

	bs, total, err := h.repo.ListBookings(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	httpresp.OK(c, dto.AdminBookingListResponse{
		Data:     bs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *AdminBookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.repo.GetBooking(c.Request.Context(), uint(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// TRANSITIONS (staff side)
// ======================================================

func (h *AdminBookingHandler) Confirm(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Confirmed time required.")
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), ucBooking.ConfirmBookingInput{
		BookingID:     uint(id),
		StaffID:       staffID,
		ConfirmedDate: req.ConfirmedDate,
		ConfirmedTime: req.ConfirmedTime,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) Cancel(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

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
		ActorID:   staffID,
		ByStaff:   true,
		Reason:    req.Reason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) Reschedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

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
		ActorID:   staffID,
		ByStaff:   true,
		NewDate:   req.Date,
		NewTime:   req.Time,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) CheckIn(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.checkInUC.Execute(c.Request.Context(), uint(id), staffID, true)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) CheckOut(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.checkOutUC.Execute(c.Request.Context(), uint(id), staffID, true)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) NoShow(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.noShowUC.Execute(c.Request.Context(), uint(id), staffID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// OPERATIONS
// ======================================================

// CleanupExpired triggers one expiry sweep on demand.
func (h *AdminBookingHandler) CleanupExpired(c *gin.Context) {
	removed, err := h.expireUC.Execute(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"removed": removed})
}
