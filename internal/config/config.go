// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for greenpush.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// QBO holds credentials, endpoints, and mode for the QuickBooks Online
	// integration.
	QBO QBO `envPrefix:"QBO_"`

	// Output holds local filesystem destinations for generated documents and
	// the audit log.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// QBO holds everything needed to talk to the remote accounting system.
type QBO struct {
	// ClientID is the OAuth2 client identifier issued for this integration.
	// Env: QBO_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the OAuth2 client secret. Must be kept confidential.
	// Env: QBO_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// RefreshToken is the long-lived credential exchanged for short-lived
	// access tokens. Obtained once via the external authorization flow.
	// Env: QBO_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`

	// RealmID is the company namespace scoping all remote API calls.
	// Env: QBO_REALM_ID
	RealmID string `env:"REALM_ID"`

	// Mode selects the API environment: "sandbox" or "production".
	// Env: QBO_MODE
	Mode string `env:"MODE"`

	// TokenURL is the OAuth2 refresh-token exchange endpoint. Overridable
	// for tests; defaults to Intuit's production endpoint.
	// Env: QBO_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// RevokeURL is the OAuth2 token revocation endpoint.
	// Env: QBO_REVOKE_URL
	RevokeURL string `env:"REVOKE_URL"`

	// APIBaseURL overrides the mode-derived API base URL. Empty in normal
	// operation; tests point it at a local server.
	// Env: QBO_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// RequestTimeout bounds every remote call (e.g. "30s"). There is no
	// cancellation path once a call is issued beyond this bound.
	// Env: QBO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HistoryDB is the optional path to the local sqlite sync-history
	// database. Empty disables history recording.
	// Env: QBO_HISTORY_DB
	HistoryDB string `env:"HISTORY_DB"`
}

// Output holds local output destinations.
type Output struct {
	// QuotesDir is the directory where generated estimate documents are
	// written (created if absent).
	// Env: OUTPUT_QUOTES_DIR
	QuotesDir string `env:"QUOTES_DIR"`

	// AuditLog is the path of the append-only CSV audit log.
	// Env: OUTPUT_AUDIT_LOG
	AuditLog string `env:"AUDIT_LOG"`
}

// Modes accepted by QBO.Mode.
const (
	ModeSandbox    = "sandbox"
	ModeProduction = "production"
)

// Built-in fallbacks applied after env and JSON sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		QBO: QBO{
			Mode:           ModeSandbox,
			TokenURL:       "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer",
			RevokeURL:      "https://developer.api.intuit.com/v2/oauth2/tokens/revoke",
			RequestTimeout: 30 * time.Second,
		},
		Output: Output{
			QuotesDir: "Quotes",
			AuditLog:  "logs/quotes_log.csv",
		},
	}
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier source wins
// for non-zero fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
