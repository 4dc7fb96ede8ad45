package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	"github.com/BruksfildServices01/studio-agenda/internal/config"
	"github.com/BruksfildServices01/studio-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/studio-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/locale"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/middleware"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/studio-agenda/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/studio-agenda/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/studio-agenda/internal/usecase/dashboard"
	ucProcedure "github.com/BruksfildServices01/studio-agenda/internal/usecase/procedure"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log logging.Logger,
	listingCache invalidation.Cache,
	auditDispatcher *audit.Dispatcher,
	auditStore handlers.AuditLogReader,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	procedureRepo := infraRepo.NewProcedureGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)

	loc := timezone.Location(cfg.Timezone)
	settings := ucAppointment.Settings{
		Location:      loc,
		Locale:        locale.For(cfg.Locale),
		TrackCounters: cfg.TrackClientCounters,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		ucClient.NewAddClient(clientRepo, listingCache, auditDispatcher, log),
		ucClient.NewUpdateClient(clientRepo, listingCache, auditDispatcher, log),
		ucClient.NewToggleClientStatus(clientRepo, listingCache, auditDispatcher, log),
		ucClient.NewListClients(clientRepo, listingCache, log),
		ucClient.NewGetClient(clientRepo),
	)

	procedureHandler := handlers.NewProcedureHandler(
		ucProcedure.NewAddProcedure(procedureRepo, listingCache, auditDispatcher, log),
		ucProcedure.NewUpdateProcedure(procedureRepo, listingCache, auditDispatcher, log),
		ucProcedure.NewListProcedures(procedureRepo, listingCache, log),
		ucProcedure.NewGetProcedure(procedureRepo),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewAddAppointment(appointmentRepo, listingCache, auditDispatcher, log, settings),
		ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, listingCache, auditDispatcher, log, settings),
		ucAppointment.NewListAgenda(appointmentRepo, log, settings),
		ucAppointment.NewBookingOptions(appointmentRepo, log, settings),
	)

	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.NewGetDashboard(dashboardRepo, log, loc, time.Now),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	meHandler := handlers.NewMeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditStore, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("", meHandler.GetMe)
			secured.GET("/dashboard", dashboardHandler.Get)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.PATCH("/clients/:id/status", clientHandler.SetStatus)

			secured.GET("/procedures", procedureHandler.List)
			secured.POST("/procedures", procedureHandler.Create)
			secured.GET("/procedures/:id", procedureHandler.Get)
			secured.PATCH("/procedures/:id", procedureHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/options", appointmentHandler.Options)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
