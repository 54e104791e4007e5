package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"Santa/utils/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/logger"
)

// Logger logs information about each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
			return
		}
		logger.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
	}
}

// ErrorHandler renders the last error a handler registered with c.Error
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.JSON(status, gin.H{"data": nil, "error": apperr.Message(err)})
	}
}

func StatusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.InsufficientParticipants, apperr.AlreadyDrawn:
		return http.StatusBadRequest
	case apperr.Authorization:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.GuestsChanged:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes data in the success envelope
func Respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// BindingError turns a gin binding failure into a validation error with a readable message
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.NewValidation("Invalid request body")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must have %s %s characters", fe.Field(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("Invalid %s", fe.Field()))
		}
	}
	return apperr.NewValidation("%s", strings.Join(msgs, ", "))
}
