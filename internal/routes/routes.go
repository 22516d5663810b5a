package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/app"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

// NewRouter builds the engine with global middleware and every route.
func NewRouter(a *app.App) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, a)
	return r
}

func RegisterRoutes(r *gin.Engine, a *app.App) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Recovery(a.Log))
	r.Use(middleware.RequestLogger(a.Log))
	r.Use(middleware.CORSMiddleware(a.Config.CORS.Origins()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(a.Auth, a.Audit)
	meHandler := handlers.NewMeHandler(a.Auth, a.Audit)

	appointmentHandler := handlers.NewAppointmentHandler(
		a.Stores,
		a.Portraits,
		a.Fetch,
		a.Create,
		a.Update,
		a.Cancel,
		a.Complete,
		a.Select,
		a.List,
	)

	doctorHandler := handlers.NewDoctorHandler(a.Doctors, a.Portraits, a.Stores, a.Availability)
	notificationHandler := handlers.NewNotificationHandler(a.Notifications)

	loginLimiter := middleware.NewRateLimiter(a.Config.RateLimit.LoginRPS, a.Config.RateLimit.LoginBurst)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", middleware.RateLimit(loginLimiter), authHandler.Register)
		api.POST("/auth/login", middleware.RateLimit(loginLimiter), authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(a.Auth))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments/fetch", appointmentHandler.Fetch)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/upcoming", appointmentHandler.Upcoming)
			secured.GET("/me/appointments/past", appointmentHandler.Past)
			secured.GET("/me/appointments/selection", appointmentHandler.Selection)
			secured.DELETE("/me/appointments/selection", appointmentHandler.ClearSelection)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PUT("/me/appointments/:id/select", appointmentHandler.Select)

			// ------------------------------
			// DOCTORS
			// ------------------------------
			secured.GET("/doctors", doctorHandler.List)
			secured.GET("/doctors/:id", doctorHandler.Get)
			secured.GET("/doctors/:id/availability", doctorHandler.Availability)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.List)
			secured.GET("/me/notifications/unread-count", notificationHandler.UnreadCount)
			secured.POST("/me/notifications", notificationHandler.Create)
			secured.PATCH("/me/notifications/read-all", notificationHandler.MarkAllRead)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)
			secured.DELETE("/me/notifications/:id", notificationHandler.Delete)
			secured.DELETE("/me/notifications", notificationHandler.Clear)

			if a.HasDatabase() {
				auditLogsHandler := handlers.NewAuditLogsHandler(a.AuditLogs)
				secured.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
