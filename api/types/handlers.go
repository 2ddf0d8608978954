package types

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/secondlife-api/internal/models"
)

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "Invalid request body",
			Detail: err.Error(),
		})
		return false
	}
	return true
}

// SendError maps a service error onto its status code and body. upstreamMsg
// is the error text used for provider failures on this endpoint.
func SendError(c *gin.Context, err error, upstreamMsg string) {
	var (
		validation models.ValidationError
		config     models.ConfigurationError
		notFound   models.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Message})
	case errors.As(err, &config):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: config.Message})
	case errors.As(err, &notFound):
		var message *string
		if notFound.Message != "" {
			message = &notFound.Message
		}
		c.JSON(http.StatusNotFound, LocationNotFoundResponse{
			Error:   "Location not found",
			Status:  notFound.Status,
			Message: message,
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:  upstreamMsg,
			Detail: err.Error(),
		})
	}
}
