package health

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers health check routes
func RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", Get())
}
