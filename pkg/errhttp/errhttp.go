// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/storefront/pkg/auth"
	"github.com/ghuser/storefront/pkg/httpx"
	itemdomain "github.com/ghuser/storefront/services/item/domain"
	userdomain "github.com/ghuser/storefront/services/user/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 with a generic body — the detail is for logs,
// never for clients.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		httpx.JSONError(w, status, "internal server error")
		return
	}
	httpx.JSONError(w, status, err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, userdomain.ErrEmailTaken):
		return http.StatusConflict // 409
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, auth.ErrIdentityNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, itemdomain.ErrInvalidItemName),
		errors.Is(err, itemdomain.ErrInvalidPrice),
		errors.Is(err, userdomain.ErrInvalidEmail):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
