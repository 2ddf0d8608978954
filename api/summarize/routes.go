package summarize

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
)

// RegisterRoutes registers summary routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
}
