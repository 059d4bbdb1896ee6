package apierr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const InternalServerError = "Internal Server Error"

// FromService maps a service error to an HTTP error. Anything unexpected is
// recorded on the request log and answered with internalMsg.
func FromService(ctx context.Context, err error, notFoundMsg, internalMsg string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		return huma.NewError(http.StatusBadRequest, service.ErrNoFieldsToUpdate.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, notFoundMsg)
	}

	logging.GetLogData(ctx).AddData("error", err.Error())
	return huma.NewError(http.StatusInternalServerError, internalMsg, err)
}
