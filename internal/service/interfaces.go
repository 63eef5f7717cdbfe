//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/resistance-accounts/models"
)

// AccountService owns the account lifecycle: registration, credential
// verification and profile reads. Outcomes other than success are reported
// as the sentinel errors of this package.
type AccountService interface {
	// Register creates an account with all statistics at zero.
	// Fails with ErrInvalidInput, ErrUsernameTaken or ErrInternal.
	Register(ctx context.Context, credentials models.Credentials) error

	// Authenticate verifies credentials and returns the account identity.
	// An unknown user and a wrong password both yield ErrAuthFailed.
	// Fails with ErrInvalidInput, ErrAuthFailed or ErrInternal.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.AccountInfo, error)

	// GetProfile returns the public statistics of username.
	// Fails with ErrInvalidInput, ErrNotFound or ErrInternal.
	GetProfile(ctx context.Context, username string) (models.Profile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
