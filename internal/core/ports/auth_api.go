package ports

import (
	"context"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

// AuthAPI is the remote authentication API. It owns credential validation and
// token issuance; this core only consumes the (token, identity) pairs it
// returns.
type AuthAPI interface {
	// SignIn exchanges credentials for a bearer token and the signed-in
	// identity. Returns domain.ErrInvalidCredentials when the API rejects
	// the credentials.
	SignIn(ctx context.Context, email, password string) (string, *domain.Identity, error)

	// UpdateProfile applies a partial profile update remotely and returns
	// the updated identity.
	UpdateProfile(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error)
}
