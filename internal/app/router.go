// internal/app/router.go
package app

import (
	"context"
	"net/http"
	"time"

	customerHandler "customer-datatable/internal/handlers/customer"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	CustomerHandler *customerHandler.CustomerHandler
	DB              Pinger
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if h.DB != nil {
			if err := h.DB.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "disconnected"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
	})

	// ==================== Customers ====================
	api := r.Group("/api")
	customers := api.Group("/customers")
	{
		customers.GET("", h.CustomerHandler.ListCustomers)
		customers.POST("", h.CustomerHandler.CreateCustomer)
	}
}
