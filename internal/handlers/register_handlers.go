package handlers

import (
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerEventRoutes(v1, services.Posting)
	registerJournalRoutes(v1, services.Journal, services.Posting)
	registerAccountRoutes(v1, services.Account)
	registerSettingsRoutes(v1, services.Settings)
	v1.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
}
