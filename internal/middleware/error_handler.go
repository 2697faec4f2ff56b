package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"opsintel/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// errorCodeByStatus covers the statuses echo raises itself (routing, binding, body limit)
var errorCodeByStatus = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationOutOfRange,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler renders every error returned by a handler as an ErrorResponse,
// logs it and counts it in api_errors_total
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := errorResponseFor(err, traceID)

	logLevel := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

func errorResponseFor(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code, ok := errorCodeByStatus[httpErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(httpErr.Message))), httpErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
		}
		response := errors.NewValidationError(fieldErrors, traceID)
		if code, ok := singleValidationCode(validationErrs); ok {
			response.Error.Code = string(code)
			response.Error.Message = errors.GetErrorMessage(code)
		}
		return response, http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

// singleValidationCode narrows VALIDATION_001 when every failed rule maps to the same specific code
func singleValidationCode(errs validator.ValidationErrors) (errors.ErrorCode, bool) {
	var code errors.ErrorCode
	for _, fe := range errs {
		tagCode, ok := validationCodeByTag[fe.Tag()]
		if !ok || (code != "" && tagCode != code) {
			return "", false
		}
		code = tagCode
	}
	return code, code != ""
}

var validationCodeByTag = map[string]errors.ErrorCode{
	"required":             errors.ValidationRequiredField,
	"iso_date":             errors.ValidationInvalidDate,
	"engine_mode":          errors.ValidationInvalidMode,
	"max":                  errors.ValidationOutOfRange,
	"min":                  errors.ValidationOutOfRange,
	"non_negative_decimal": errors.ValidationOutOfRange,
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "engine_mode":
		return "must be one of: auto, sql, tabular"
	case "iso_date":
		return "must be a valid date in YYYY-MM-DD format"
	case "non_negative_decimal":
		return "must be a number greater than or equal to 0"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
