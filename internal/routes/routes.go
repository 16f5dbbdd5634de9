package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zennara-clinics/booking-api/internal/audit"
	"github.com/zennara-clinics/booking-api/internal/config"
	"github.com/zennara-clinics/booking-api/internal/handlers"
	infraRepo "github.com/zennara-clinics/booking-api/internal/infra/repository"
	"github.com/zennara-clinics/booking-api/internal/middleware"
	"github.com/zennara-clinics/booking-api/internal/notify"
	ucBooking "github.com/zennara-clinics/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	lock ucBooking.SlotLock,
) *ucBooking.ExpireStaleBookings {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	emailSender := notify.LogEmailSender{}
	notifyDispatcher := notify.NewDispatcher(
		db,
		emailSender,
		notify.LogSMSSender{},
		notify.LogVoiceCaller{},
	)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createUC := ucBooking.NewCreateBooking(bookingRepo, lock, notifyDispatcher, auditDispatcher)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	confirmUC := ucBooking.NewConfirmBooking(bookingRepo, notifyDispatcher, auditDispatcher)
	cancelUC := ucBooking.NewCancelBooking(bookingRepo, notifyDispatcher, auditDispatcher)
	rescheduleUC := ucBooking.NewRescheduleBooking(bookingRepo, notifyDispatcher, auditDispatcher)
	checkInUC := ucBooking.NewCheckInBooking(bookingRepo, notifyDispatcher, auditDispatcher)
	checkOutUC := ucBooking.NewCheckOutBooking(bookingRepo, notifyDispatcher, auditDispatcher)
	noShowUC := ucBooking.NewMarkNoShow(bookingRepo, notifyDispatcher, auditDispatcher)
	rateUC := ucBooking.NewRateBooking(bookingRepo)
	expireUC := ucBooking.NewExpireStaleBookings(bookingRepo, emailSender)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createUC,
		availabilityUC,
		cancelUC,
		rescheduleUC,
		checkInUC,
		checkOutUC,
		rateUC,
	)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		bookingRepo,
		confirmUC,
		cancelUC,
		checkInUC,
		checkOutUC,
		noShowUC,
		expireUC,
		rescheduleUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/branches/:id/slots", bookingHandler.SlotsForBranch)
		api.GET("/bookings/available-slots", bookingHandler.SlotsForLocation)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.GET("/bookings/:id", bookingHandler.GetByID)
			secured.GET("/bookings/reference/:ref", bookingHandler.GetByReference)

			secured.PUT("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PUT("/bookings/:id/reschedule", bookingHandler.Reschedule)
			secured.PUT("/bookings/:id/checkin", bookingHandler.CheckIn)
			secured.PUT("/bookings/:id/checkout", bookingHandler.CheckOut)
			secured.PUT("/bookings/:id/rate", bookingHandler.Rate)

			// ------------------------------
			// STAFF
			// ------------------------------
			admin := secured.Group("/bookings/admin")
			admin.Use(middleware.RequireStaff())
			{
				admin.GET("/all", adminBookingHandler.ListAll)
				admin.GET("/:id", adminBookingHandler.Get)

				admin.PUT("/:id/confirm", adminBookingHandler.Confirm)
				admin.PUT("/:id/reschedule", adminBookingHandler.Reschedule)
				admin.PUT("/:id/checkin", adminBookingHandler.CheckIn)
				admin.PUT("/:id/checkout", adminBookingHandler.CheckOut)
				admin.PUT("/:id/no-show", adminBookingHandler.NoShow)
				admin.PUT("/:id/cancel", adminBookingHandler.Cancel)

				admin.POST("/cleanup-expired", adminBookingHandler.CleanupExpired)
			}
		}
	}

	return expireUC
}
