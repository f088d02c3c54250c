package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite/internal/checkout"
	"quickbite/internal/domain"
	authsvc "quickbite/internal/service/auth"
)

var errNoToken = errors.New("no bearer token")

// respondError maps service errors to HTTP statuses. Checkout errors keep
// their machine-readable category in the body so the client can pick a
// message without string matching.
func respondError(c *gin.Context, err error) {
	var cerr *checkout.Error
	if errors.As(err, &cerr) {
		status := http.StatusBadGateway
		switch cerr.Category {
		case checkout.CategoryValidation:
			status = http.StatusBadRequest
		case checkout.CategoryAuth:
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": cerr.Message, "category": cerr.Category})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
