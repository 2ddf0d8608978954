package clientconfig

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
)

// Get returns the values the browser client needs before its first search
// @Summary      Client configuration
// @Description  API base URL and the browser-restricted maps key
// @Tags         client
// @Produce      json
// @Success      200 {object} types.ClientConfigResponse
// @Router       /api/client-config [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resp types.ClientConfigResponse
		if deps != nil {
			resp = deps.Client
		}
		c.JSON(http.StatusOK, resp)
	}
}
