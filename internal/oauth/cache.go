// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

// Package oauth maintains the short-lived access credential for the remote
// accounting API. A single CredentialCache instance is owned by the
// invocation and injected into the client layer; it is not a process-global.
package oauth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/greentech-painting/greenpush/internal/config"
	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/models"
)

// expiryBuffer is subtracted from the token's expiry when deciding whether a
// cached token is still usable, so a request never departs with a token that
// dies in flight.
const expiryBuffer = 5 * time.Minute

// CredentialCache holds one access token with its expiry and refreshes it via
// the configured long-lived refresh credential when expired or forced.
//
// The cache is not safe for concurrent use. The pipeline is single-threaded
// by design; concurrent processes may race each other on refresh (lost
// update), which is an accepted limitation.
type CredentialCache struct {
	client *resty.Client
	cfg    config.QBO
	log    *logger.Logger

	token models.TokenState
	now   func() time.Time
}

// New constructs a CredentialCache for the given QBO configuration.
func New(cfg config.QBO, log *logger.Logger) *CredentialCache {
	client := resty.New().SetTimeout(cfg.RequestTimeout)

	return &CredentialCache{
		client: client,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// GetValidToken returns a usable access token, refreshing it first when the
// cached one is absent, inside the expiry buffer, or force is set.
//
// Returns a *CredentialError if no refresh credential is configured or the
// refresh exchange fails.
func (c *CredentialCache) GetValidToken(ctx context.Context, force bool) (string, error) {
	if !force && c.token.Valid(c.now(), expiryBuffer) {
		c.log.Debug().
			Time("expires_at", c.token.ExpiresAt).
			Msg("using cached access token")
		return c.token.AccessToken, nil
	}

	if c.cfg.RefreshToken == "" {
		return "", &CredentialError{Message: "refresh token is not configured; run the initial authorization flow first"}
	}

	tokenData, err := c.refresh(ctx)
	if err != nil {
		return "", err
	}

	c.token = models.TokenState{
		AccessToken: tokenData.AccessToken,
		ExpiresAt:   c.now().Add(time.Duration(tokenData.ExpiresIn) * time.Second),
	}

	return c.token.AccessToken, nil
}

// refresh performs the OAuth2 refresh-token exchange.
func (c *CredentialCache) refresh(ctx context.Context) (models.TokenRefreshResponse, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return models.TokenRefreshResponse{}, &CredentialError{Message: "client id and client secret must be configured"}
	}

	c.log.Info().Msg("refreshing access token")

	var tokenData models.TokenRefreshResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": c.cfg.RefreshToken,
		}).
		SetResult(&tokenData).
		Post(c.cfg.TokenURL)
	if err != nil {
		return models.TokenRefreshResponse{}, &CredentialError{Message: "token refresh request: " + err.Error()}
	}

	if resp.StatusCode() != http.StatusOK {
		return models.TokenRefreshResponse{}, &CredentialError{
			Message:    "token refresh failed",
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
		}
	}

	c.log.Info().
		Int64("expires_in", tokenData.ExpiresIn).
		Msg("access token refreshed")

	// The remote system may rotate the refresh token. The cache never
	// persists credentials, so the operator has to update the stored one by
	// hand; until then the process keeps using the configured token.
	if tokenData.RefreshToken != "" && tokenData.RefreshToken != c.cfg.RefreshToken {
		c.log.Warn().
			Str("new_refresh_token_prefix", tokenPrefix(tokenData.RefreshToken)).
			Msg("new refresh token received - update the stored credential")
	}

	return tokenData, nil
}

// Revoke revokes an access or refresh token, used when disconnecting from the
// remote system. A network failure or non-success status of the revoke call
// is reported as false without an error; only missing client credentials
// produce one. On success the local cache is cleared.
func (c *CredentialCache) Revoke(ctx context.Context, token string) (bool, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return false, &CredentialError{Message: "client id and client secret must be configured"}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetBody(map[string]string{"token": token}).
		Post(c.cfg.RevokeURL)
	if err != nil {
		c.log.Warn().Err(err).Msg("token revocation request failed")
		return false, nil
	}

	if resp.StatusCode() != http.StatusOK {
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Msg("token revocation rejected")
		return false, nil
	}

	c.token = models.TokenState{}
	c.log.Info().Msg("token revoked")

	return true, nil
}

func tokenPrefix(token string) string {
	const n = 10
	if len(token) <= n {
		return token
	}
	return token[:n] + "..."
}
