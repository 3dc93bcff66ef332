package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/errorz"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "resource cannot be processed",
	http.StatusInternalServerError: "Internal Server Error",
}

// statusFor maps an error kind to its HTTP status. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errorz.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errorz.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errorz.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	abortWithStatus(c, statusFor(err))
}
