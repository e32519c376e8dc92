package v1

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// mapDomainError translates the domain error taxonomy into HTTP-coded errors
// for the error middleware. Anything unrecognized is an opaque backend
// failure and surfaces as a generic 500.
func mapDomainError(err error, fallbackMsg string) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Resource not found")
	case errors.Is(err, domain.ErrNoBackend):
		return apperror.New(http.StatusInternalServerError, "No database configured", err)
	case errors.Is(err, domain.ErrSeedInProgress):
		return apperror.Conflict("A seed operation is already in progress")
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return apperror.BadRequest(err.Error())
	}
	return apperror.New(http.StatusInternalServerError, fallbackMsg, err)
}
