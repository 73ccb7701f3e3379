package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/BackspaceAditya/JustEat/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinel errors onto HTTP statuses. Every
// failure keeps the {success, message} shape.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrLineNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrCrossRestaurantConflict), errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrDuplicateUser):
		status = http.StatusConflict
	case errors.Is(err, services.ErrItemUnavailable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidQuantity):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		message = "Internal server error"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
