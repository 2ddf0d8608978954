package clientconfig

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
)

// RegisterRoutes registers the client configuration route
func RegisterRoutes(router gin.IRoutes, deps *types.Dependencies) {
	router.GET("/client-config", Get(deps))
}
