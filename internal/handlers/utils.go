package handlers

import (
	stderrors "errors"

	"opsintel/internal/errors"
	"opsintel/internal/services"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	errInvalidQuery = stderrors.New("invalid query parameters")
	errInvalidDay   = stderrors.New("invalid day")
)

// parseDayParam returns nil for an empty value, meaning the latest day
func parseDayParam(value string) (*civil.Date, error) {
	if value == "" {
		return nil, nil
	}
	day, err := civil.ParseDate(value)
	if err != nil {
		return nil, errInvalidDay
	}
	return &day, nil
}

// sendQueryError answers a request whose parameters could not be bound.
// Validation errors are returned to the HTTP error handler.
func sendQueryError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &validationErrs):
		return err
	case stderrors.Is(err, errInvalidDay):
		return SendError(c, errors.ValidationInvalidDate)
	default:
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
}

// sendServiceError maps service sentinel errors to API error codes
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrNoData):
		return SendError(c, errors.KPINoData)
	case stderrors.Is(err, services.ErrEmptyDataset):
		return SendError(c, errors.KPIDatasetEmpty)
	case stderrors.Is(err, services.ErrInvalidThreshold):
		return SendError(c, errors.KPIInvalidOptions, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrEmptyQuestion):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("question is required"))
	case stderrors.Is(err, services.ErrInvalidMode):
		return SendError(c, errors.ValidationInvalidMode)
	case stderrors.Is(err, services.ErrEngineUnavailable):
		return SendError(c, errors.QueryEngineUnavailable)
	case stderrors.Is(err, services.ErrQueryRejected):
		return SendError(c, errors.QueryRejected, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrQueryExecution):
		return SendError(c, errors.QueryExecutionFailed, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidQuerySpec):
		return SendError(c, errors.QueryInvalidSpec, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrQueryGeneration):
		return SendError(c, errors.QueryGenerationFailed, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
