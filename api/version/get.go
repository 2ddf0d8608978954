package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
)

// Get handles version requests
// @Summary      Build information
// @Tags         version
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       /api/version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		info := types.VersionResponse{Name: "Second Life API", Version: "dev"}
		if deps != nil && deps.Build.Version != "" {
			info = deps.Build
		}
		if deps != nil && deps.CacheStats != nil {
			stats := deps.CacheStats.Stats()
			info.Cache = &stats
		}
		c.JSON(http.StatusOK, info)
	}
}
