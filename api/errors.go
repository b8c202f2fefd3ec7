package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/travel"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors to transport status codes.
func writeError(c *gin.Context, err error) {
	var notFound *domain.NotFoundError
	var duplicate *domain.DuplicateError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &duplicate),
		errors.Is(err, domain.ErrCapacityFull),
		errors.Is(err, travel.ErrSignupInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validation),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidPassengerType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
