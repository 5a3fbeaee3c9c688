package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/fadeandco/barbershop-api/internal/audit"
	"github.com/fadeandco/barbershop-api/internal/config"
	"github.com/fadeandco/barbershop-api/internal/handlers"
	infraRepo "github.com/fadeandco/barbershop-api/internal/infra/repository"
	"github.com/fadeandco/barbershop-api/internal/lock"
	"github.com/fadeandco/barbershop-api/internal/middleware"
	"github.com/fadeandco/barbershop-api/internal/storage"
	ucBooking "github.com/fadeandco/barbershop-api/internal/usecase/booking"
)

const slotLockTTL = 10 * time.Second

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotLocker := lock.NewRedisSlotLocker(rdb, slotLockTTL)
	uploader := storage.NewUploader(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucBooking.NewCreateAppointment(bookingRepo, slotLocker, auditDispatcher)
	approveUC := ucBooking.NewApproveAppointment(bookingRepo, auditDispatcher)
	declineUC := ucBooking.NewDeclineAppointment(bookingRepo, auditDispatcher)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher)
	completeUC := ucBooking.NewCompleteAppointment(bookingRepo, auditDispatcher)
	rescheduleUC := ucBooking.NewRescheduleAppointment(bookingRepo, slotLocker, auditDispatcher)
	listUC := ucBooking.NewListAppointments(bookingRepo)
	daySlotsUC := ucBooking.NewGetDayAvailability(bookingRepo)
	calendarUC := ucBooking.NewListCalendarEvents(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(daySlotsUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		approveUC,
		declineUC,
		cancelUC,
		completeUC,
		rescheduleUC,
		listUC,
	)

	calendarHandler := handlers.NewCalendarHandler(calendarUC)
	paymentHandler := handlers.NewPaymentHandler(db, auditDispatcher)
	hoursHandler := handlers.NewHoursHandler(db)
	uploadHandler := handlers.NewUploadHandler(db, uploader, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/barbers", catalogHandler.ListBarbers)
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/availability", availabilityHandler.DaySlots)
		api.GET("/payments/gcash-qr", paymentHandler.ActiveQR)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.GET("/appointments/:id", appointmentHandler.Detail)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.POST("/appointments/:id/payment", paymentHandler.Submit)

			secured.GET("/calendar/events", calendarHandler.Events)

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/staff")
			staff.Use(middleware.RequireStaff())
			{
				staff.GET("/appointments", appointmentHandler.ListByDate)
				staff.PATCH("/appointments/:id/approve", appointmentHandler.Approve)
				staff.PATCH("/appointments/:id/decline", appointmentHandler.Decline)
				staff.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

				staff.PATCH("/payments/:id/mark-paid", paymentHandler.MarkPaid)

				staff.GET("/barbers/:id/working-hours", hoursHandler.Get)
				staff.PUT("/barbers/:id/working-hours", hoursHandler.Update)

				staff.POST("/barbers/:id/photo", uploadHandler.BarberPhoto)
				staff.POST("/services/:id/image", uploadHandler.ServiceImage)
				staff.POST("/gcash-qr", uploadHandler.CreateQR)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
