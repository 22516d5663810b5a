package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
)

type HTTPError struct {
	Code    string              `json:"error_code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// FromError maps domain sentinels to a status; code names the failing action.
func FromError(c *gin.Context, err error, code string) {
	var ve *domain.ValidationError
	var be BusinessError
	switch {
	case errors.As(err, &be):
		BadRequest(c, be.Code, be.Code)
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, HTTPError{Code: "validation_failed", Message: ve.Error(), Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		BadRequest(c, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, "not_found", err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		Conflict(c, "already_exists", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		Unauthorized(c, "unauthorized", err.Error())
	default:
		Internal(c, code, "internal error")
	}
}
