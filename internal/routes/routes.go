package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/audit"
	"github.com/playspot/arena-scheduler/internal/config"
	"github.com/playspot/arena-scheduler/internal/handlers"
	infraRepo "github.com/playspot/arena-scheduler/internal/infra/repository"
	"github.com/playspot/arena-scheduler/internal/middleware"
	"github.com/playspot/arena-scheduler/internal/ratelimit"
	"github.com/playspot/arena-scheduler/internal/storage"
	ucBooking "github.com/playspot/arena-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	limiterStore ratelimit.Store,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	limiter := ratelimit.New(limiterStore, cfg.RateLimit, cfg.RateLimitWindow)
	throttled := middleware.RateLimit(limiter)

	var uploader *storage.Uploader
	if cfg.S3Bucket != "" {
		uploader = storage.NewUploader(storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
			PublicURL: cfg.S3PublicURL,
		})
	}

	// ======================================================
	// USE CASES - BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	arenaHandler := handlers.NewArenaHandler(db, auditDispatcher)
	branchHandler := handlers.NewBranchHandler(db, auditDispatcher, uploader)
	courtHandler := handlers.NewCourtHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		listBookingsUC,
	)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		availabilityUC,
		createBookingUC,
	)

	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/arenas/:slug", publicHandler.GetArena)
			publicAPI.GET("/bookings", publicHandler.Availability)
			publicAPI.POST("/bookings", throttled, publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", throttled, authHandler.Signup)
		api.POST("/auth/login", throttled, authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/arenas", arenaHandler.List)
			secured.POST("/arenas", arenaHandler.Create)
			secured.GET("/arenas/:id", arenaHandler.Get)
			secured.PATCH("/arenas/:id", arenaHandler.Update)
			secured.DELETE("/arenas/:id", arenaHandler.Delete)

			secured.GET("/branches", branchHandler.List)
			secured.POST("/branches", branchHandler.Create)
			secured.GET("/branches/:id", branchHandler.Get)
			secured.PATCH("/branches/:id", branchHandler.Update)
			secured.DELETE("/branches/:id", branchHandler.Delete)
			secured.POST("/branches/:id/images", branchHandler.UploadImage)

			secured.GET("/courts", courtHandler.List)
			secured.POST("/courts", courtHandler.Create)
			secured.GET("/courts/:id", courtHandler.Get)
			secured.PATCH("/courts/:id", courtHandler.Update)
			secured.DELETE("/courts/:id", courtHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/owners", adminHandler.ListOwners)
				admin.PATCH("/owners/:id/active", adminHandler.SetOwnerActive)
				admin.PATCH("/arenas/:id/approval", adminHandler.SetArenaApproval)
				admin.PATCH("/branches/:id/approval", adminHandler.SetBranchApproval)
			}
		}
	}
}
