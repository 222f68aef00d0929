package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

type apiError struct {
	target error
	status int
	code   string
}

var apiErrors = []apiError{
	{models.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{models.ErrInsufficientStock, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
	{models.ErrInvalidRequest, http.StatusBadRequest, "INVALID_REQUEST"},
	{models.ErrDuplicateProduct, http.StatusConflict, "DUPLICATE_PRODUCT"},
	{models.ErrUserExists, http.StatusConflict, "USER_EXISTS"},
	{models.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{models.ErrVersionConflict, http.StatusConflict, "CONCURRENT_MODIFICATION"},
	{models.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
}

// writeError maps domain errors to a status and a stable code. Anything
// unrecognized is logged and reported as a 500 without its details.
func writeError(c *gin.Context, err error) {
	for _, e := range apiErrors {
		if errors.Is(err, e.target) {
			c.JSON(e.status, gin.H{"error": err.Error(), "code": e.code})
			return
		}
	}
	logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "INTERNAL_ERROR"})
}

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "INVALID_REQUEST"})
}
