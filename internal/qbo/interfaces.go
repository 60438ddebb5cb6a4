package qbo

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_provider_mock.go -package=mock

// TokenProvider supplies a valid bearer token for outgoing requests.
// Implemented by oauth.CredentialCache; test doubles stub it out.
type TokenProvider interface {
	// GetValidToken returns a usable access token, refreshing the cached one
	// first when it is absent, near expiry, or force is set.
	GetValidToken(ctx context.Context, force bool) (string, error)
}
