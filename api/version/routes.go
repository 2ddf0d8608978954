package version

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
)

// RegisterRoutes registers version routes
func RegisterRoutes(router gin.IRoutes, deps *types.Dependencies) {
	router.GET("/version", Get(deps))
}
