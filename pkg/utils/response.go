package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/pkg/apperrors"
)

// HttpResponse is the envelope every endpoint answers with.
type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse converts any error into the response envelope. HttpError
// wins; validator errors map to 422; sentinel errors map through
// apperrors.CodeFor.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "internal server error"
	var details interface{}

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
		if httpErr.Details != nil {
			details = httpErr.Details
		}
	case errors.As(err, &validationErrs):
		code = http.StatusUnprocessableEntity
		message = "validation failed"
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		details = fields
	default:
		code = apperrors.CodeFor(err)
		if code != http.StatusInternalServerError {
			message = err.Error()
		}
	}

	if code >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
		Details: details,
	})
}
