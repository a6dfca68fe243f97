package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/vibe-gaming/verify/internal/service"
	"github.com/vibe-gaming/verify/pkg/logger"
	"go.uber.org/zap"
)

func successResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func errorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Success: false, Message: message})
}

// serviceErrorResponse maps service errors onto the HTTP taxonomy.
// failMessage is reported for upstream failures.
func serviceErrorResponse(c *gin.Context, err error, failMessage string) {
	var (
		verr *service.ValidationError
		uerr *service.UpstreamError
	)

	switch {
	case errors.As(err, &verr):
		errorResponse(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrInvalidCode):
		errorResponse(c, http.StatusBadRequest, InvalidCodeMessage)
	case errors.Is(err, service.ErrAccountNotFound):
		errorResponse(c, http.StatusNotFound, AccountNotFoundMessage)
	case errors.As(err, &uerr):
		logger.Error(failMessage, zap.String("op", uerr.Op), zap.Error(uerr.Err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
			Success: false,
			Message: failMessage,
			Error:   uerr.Err.Error(),
		})
	default:
		logger.Error("unexpected service error", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorMessage)
	}
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) || len(verr) == 0 {
		errorResponse(c, http.StatusBadRequest, InvalidRequestBodyMessage)
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Field(), ferr.Tag(), ferr.Param())}
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorResponse{
		Success: false,
		Message: out[0].ErrorMessage,
		Errors:  out,
	})
}

func msgForTag(field string, tag string, value string) string {
	switch tag {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "numericcode":
		return fmt.Sprintf("%s must contain digits only", field)
	case "min":
		return fmt.Sprintf("%s must be at least %v characters long", field, value)
	case "max":
		return fmt.Sprintf("%s must be at most %v characters long", field, value)
	}
	return tag
}
