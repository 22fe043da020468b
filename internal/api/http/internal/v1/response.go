package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/grab-simulator/backend/internal/service"
	"github.com/grab-simulator/backend/pkg/logger"
	customValidator "github.com/grab-simulator/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func unauthorizedResponse(c *gin.Context) {
	errorResponse(c, http.StatusUnauthorized, UnauthorizedCode)
}

func internalErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
}

// serviceErrorResponse maps a service error to its status and error code.
// Unrecognized errors are logged and hidden behind a generic 500.
func serviceErrorResponse(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		errorResponse(c, http.StatusBadRequest, InvalidEmailCode)
	case errors.Is(err, service.ErrInvalidCode):
		errorResponse(c, http.StatusBadRequest, InvalidOtpFormatCode)
	case errors.Is(err, service.ErrNegativeValue):
		errorResponse(c, http.StatusBadRequest, NegativeValueCode)
	case errors.Is(err, service.ErrValueTooLarge):
		errorResponse(c, http.StatusBadRequest, ValueTooLargeCode)
	case errors.Is(err, service.ErrInvalidCredentials):
		errorResponse(c, http.StatusUnauthorized, InvalidCredentialsCode)
	case errors.Is(err, service.ErrUserNotFound):
		errorResponse(c, http.StatusNotFound, UserNotFoundCode)
	case errors.Is(err, service.ErrDeliveryFailed):
		errorResponse(c, http.StatusBadGateway, DeliveryFailedCode)
	default:
		logger.Error(msg, zap.Error(err))
		internalErrorResponse(c)
	}
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: ValidationErrorMessage,
		}
		response.Errors = out
		c.AbortWithStatusJSON(http.StatusBadRequest, response)
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       []ValidationError{},
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "number":
		return "The field must be numeric"
	case "min":
		return fmt.Sprintf("The value must be at least %v", value)
	case "max":
		return fmt.Sprintf("The value must be at most %v", value)
	case customValidator.OtpCodeTag:
		return "The code must be 6 digits"
	}
	return tag
}
