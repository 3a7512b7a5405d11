package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-judge/analyzer"
	"prompt-judge/logger"
	"prompt-judge/services"
)

// writeError maps service errors onto the HTTP error taxonomy. Anything
// unrecognized is a 500 with a generic body; the cause goes to the log,
// not the client.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyPrompt),
		errors.Is(err, services.ErrPromptTooLong),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDeadlinePassed),
		errors.Is(err, services.ErrAlreadySubmitted):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidLogin):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrQuotaExhausted):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, analyzer.ErrTimeout):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis service temporarily unavailable"})
	default:
		var parseErr *analyzer.ParseError
		if errors.As(err, &parseErr) {
			logger.ErrorWithFields("model returned unusable response", logger.Fields{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to interpret model response"})
			return
		}
		logger.ErrorWithFields("request failed", logger.Fields{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
