package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/genaicorelab/iam-backend/internal/service"
	phoneValidator "github.com/genaicorelab/iam-backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type messageResponse struct {
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func unauthorizedResponse(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	errorResponse(c, http.StatusUnauthorized, InvalidCredentialsCode)
}

// serviceErrorResponse maps service errors to transport responses.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidReference):
		errorResponse(c, http.StatusBadRequest, InvalidReferenceCode)
	case errors.Is(err, service.ErrUserAlreadyExist):
		errorResponse(c, http.StatusConflict, UserAlreadyExistsCode)
	case errors.Is(err, service.ErrUserNotFound):
		errorResponse(c, http.StatusNotFound, UserNotFoundCode)
	case errors.Is(err, service.ErrInvalidCredentials):
		unauthorizedResponse(c)
	default:
		errorResponse(c, http.StatusInternalServerError, InternalServerErrorCode)
	}
}

func validationErrorResponse(c *gin.Context, err error) {
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       []ValidationError{},
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response.Errors = out
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("must be at least %v characters long", value)
	case "max":
		return fmt.Sprintf("must be at most %v characters long", value)
	case phoneValidator.PhoneNumberTag:
		return "phone number must be a valid 10-digit mobile number starting with 6-9"
	}
	return tag
}
