package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NEMOzzzzzzzzzz/sms/config"
	"github.com/NEMOzzzzzzzzzz/sms/controllers"
	"github.com/NEMOzzzzzzzzzz/sms/middleware"
	"github.com/NEMOzzzzzzzzzz/sms/services/container"
)

// SetupRouter initializes and returns the configured router.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	return SetupRouterWithContainer(serviceContainer)
}

// SetupRouterWithContainer builds the router around an existing container,
// which tests use to inject mocked storage.
func SetupRouterWithContainer(serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(config.Logger()))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes.
func registerRoutes(r *gin.Engine, serviceContainer *container.ServiceContainer) {
	api := r.Group("/api")

	// Health check
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)

	// Residents
	api.GET("/residents", controllers.HandleResidentFunc(serviceContainer, "getResidents"))
	api.POST("/residents", controllers.HandleResidentFunc(serviceContainer, "createResident"))
	api.PUT("/residents/:id", controllers.HandleResidentFunc(serviceContainer, "updateResident"))
	api.DELETE("/residents/:id", controllers.HandleResidentFunc(serviceContainer, "deleteResident"))

	// Payments
	api.GET("/payments", controllers.HandlePaymentFunc(serviceContainer, "getPayments"))
	api.POST("/payments", controllers.HandlePaymentFunc(serviceContainer, "createPayment"))
	api.PUT("/payments/:id", controllers.HandlePaymentFunc(serviceContainer, "updatePayment"))
	api.DELETE("/payments/:id", controllers.HandlePaymentFunc(serviceContainer, "deletePayment"))

	// Announcements
	api.GET("/announcements", controllers.HandleAnnouncementFunc(serviceContainer, "getAnnouncements"))
	api.POST("/announcements", controllers.HandleAnnouncementFunc(serviceContainer, "createAnnouncement"))
	api.PUT("/announcements/:id", controllers.HandleAnnouncementFunc(serviceContainer, "updateAnnouncement"))
	api.DELETE("/announcements/:id", controllers.HandleAnnouncementFunc(serviceContainer, "deleteAnnouncement"))
}
