package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/resistance-accounts/internal/app"
	"github.com/MKhiriev/resistance-accounts/internal/crypto"
	"github.com/MKhiriev/resistance-accounts/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:  http.StatusBadRequest,
	service.ErrUsernameTaken: http.StatusConflict,
	service.ErrAuthFailed:    http.StatusUnauthorized,
	service.ErrNotFound:      http.StatusNotFound,
	service.ErrInternal:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the fixed response text for err. username is only
// echoed back for a profile miss.
func messageFromError(err error, username string) string {
	switch {
	case errors.Is(err, crypto.ErrPasswordTooLong):
		return app.MsgPasswordTooLong
	case errors.Is(err, service.ErrInvalidInput):
		return app.MsgMissingCredentials
	case errors.Is(err, service.ErrUsernameTaken):
		return app.MsgUsernameTaken
	case errors.Is(err, service.ErrAuthFailed):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrNotFound):
		return fmt.Sprintf(app.MsgAccountNotFoundFmt, username)
	default:
		return app.MsgInternalServerError
	}
}
