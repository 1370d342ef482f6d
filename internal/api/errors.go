package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/ai"
	"github.com/zeuskitchen/backend/internal/service"
)

// respondServiceError maps service-layer failures onto HTTP statuses for the
// CRUD surfaces, where a validation failure is the caller's fault.
func respondServiceError(c *gin.Context, err error) {
	var verr *ai.ValidationError
	var uerr *ai.UpstreamError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Error(),
			"kind":  string(verr.Kind),
			"field": verr.Field,
		})
	case errors.As(err, &uerr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream dependency failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// respondGenerationError maps generation-pipeline failures. Here a
// validation or extraction failure means the model produced unusable output,
// so it is an upstream fault, not the caller's.
func respondGenerationError(c *gin.Context, err error) {
	var verr *ai.ValidationError
	var eerr *ai.ExtractionError
	var uerr *ai.UpstreamError

	switch {
	case errors.As(err, &eerr), errors.As(err, &verr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation produced invalid output"})
	case errors.As(err, &uerr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// currentUserID pulls the authenticated user out of the gin context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// pathID parses the named path parameter as a UUID.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
