// Package httperr maps domain error categories to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransaction):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with its mapped status. Storage details never leave
// the server; a retryable failure tells the client to resubmit.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	switch {
	case domain.IsRetryable(err):
		w.Header().Set("Retry-After", "1")
		utils.RespondWithError(w, code, "Temporarily unavailable, retry the request")
	case code == http.StatusInternalServerError:
		utils.RespondWithError(w, code, "Internal server error")
	default:
		utils.RespondWithError(w, code, err.Error())
	}
}
