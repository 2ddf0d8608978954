package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/api/types"
	"github.com/killallgit/secondlife-api/internal/models"
)

// Get handles thrift store search requests
// @Summary      Search for thrift stores near a location
// @Description  Geocodes the location, runs one text search per category and returns the merged, de-duplicated places
// @Tags         search
// @Produce      json
// @Param        q         query  string  true   "Location text (address, city or zip)"  example(94103)
// @Param        radius    query  int     false  "Search radius in meters, clamped to [1000, 50000]"  default(7000)
// @Param        category  query  string  false  "Only return places with this label"  Enums(Thrift Store, Donation Center, Exchange Event)
// @Param        sort      query  string  false  "Result order"  Enums(relevance, rating)  default(relevance)
// @Success      200 {object} models.SearchResult "Center and places"
// @Failure      400 {object} types.ErrorResponse "Missing q or invalid parameter"
// @Failure      404 {object} types.LocationNotFoundResponse "Location could not be geocoded"
// @Failure      500 {object} types.ErrorResponse "Missing configuration or upstream failure"
// @Router       /api/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		radius, err := models.ParseRadius(c.Query("radius"))
		if err != nil {
			types.SendError(c, err, "Server error")
			return
		}

		query, err := models.NewSearchQuery(c.Query("q"), radius)
		if err != nil {
			types.SendError(c, err, "Server error")
			return
		}

		if category := c.Query("category"); category != "" {
			if !models.IsKnownLabel(category) {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Unknown category"})
				return
			}
			query.Category = category
		}

		switch order := c.DefaultQuery("sort", models.SortRelevance); order {
		case models.SortRelevance, models.SortRating:
			query.Sort = order
		default:
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid sort, expected relevance or rating"})
			return
		}

		if deps == nil || deps.Searcher == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Search service not available"})
			return
		}

		result, err := deps.Searcher.Search(c.Request.Context(), query)
		if err != nil {
			deps.Log().Warn().Err(err).Str("q", query.Text).Msg("search failed")
			types.SendError(c, err, "Server error")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
