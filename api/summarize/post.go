package summarize

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
	"github.com/killallgit/secondlife-api/internal/models"
)

// Post handles place summary requests
// @Summary      Summarize a thrift store
// @Description  Asks the configured generative provider for a short, friendly description of the place
// @Tags         summary
// @Accept       json
// @Produce      json
// @Param        request body models.SummaryRequest true "Place details; only name is required"
// @Success      200 {object} models.SummaryResponse "Generated summary"
// @Failure      400 {object} types.ErrorResponse "Missing store name or invalid body"
// @Failure      500 {object} types.ErrorResponse "Provider not configured or generation failed"
// @Router       /api/summarize [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SummaryRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if deps == nil || deps.Summarizer == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Summary service not available"})
			return
		}

		resp, err := deps.Summarizer.Summarize(c.Request.Context(), req)
		if err != nil {
			types.SendError(c, err, "Failed to generate summary")
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
