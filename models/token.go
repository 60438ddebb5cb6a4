package models

import "time"

// TokenState is the cached access credential held by the credential cache.
// It lives for the process lifetime only and is never persisted to disk.
type TokenState struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token exists and will stay usable for at least
// buffer beyond now.
func (t TokenState) Valid(now time.Time, buffer time.Duration) bool {
	return t.AccessToken != "" && now.Before(t.ExpiresAt.Add(-buffer))
}

// TokenRefreshResponse is the OAuth2 refresh-token exchange response.
type TokenRefreshResponse struct {
	AccessToken            string `json:"access_token"`
	RefreshToken           string `json:"refresh_token"`
	TokenType              string `json:"token_type"`
	ExpiresIn              int64  `json:"expires_in"`
	XRefreshTokenExpiresIn int64  `json:"x_refresh_token_expires_in"`
}
