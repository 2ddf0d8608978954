package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
)

// Get handles health check requests
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /api/health [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.HealthResponse{
			OK:      true,
			Message: "Backend running",
		})
	}
}
