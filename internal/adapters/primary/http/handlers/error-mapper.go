package handlers

import (
	"errors"
	"net/http"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrFieldNotFound),
		errors.Is(err, domain.ErrConversionSetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrFieldAlreadyExists),
		errors.Is(err, domain.ErrConversionSetAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidFieldID),
		errors.Is(err, domain.ErrFieldIDMismatch),
		errors.Is(err, domain.ErrInvalidConversionSetID),
		errors.Is(err, domain.ErrConversionSetIDMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Dependency errors
	case errors.Is(err, domain.ErrOwningFieldNotFound),
		errors.Is(err, domain.ErrFieldMissingProjection),
		errors.Is(err, domain.ErrProjectionNotFound),
		errors.Is(err, domain.ErrConversionJobNotFound),
		errors.Is(err, domain.ErrConversionCountMismatch),
		errors.Is(err, domain.ErrProjectionService):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
