// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Credential presence is deliberately not validated here: mock-mode
// invocations run without any remote credentials, and the remote layers
// report missing credentials with their own typed errors.
func (cfg *StructuredConfig) validate() error {
	if cfg.QBO.Mode != ModeSandbox && cfg.QBO.Mode != ModeProduction {
		return fmt.Errorf("invalid QBO mode %q: must be %q or %q", cfg.QBO.Mode, ModeSandbox, ModeProduction)
	}

	if cfg.QBO.RequestTimeout < 0 {
		return fmt.Errorf("invalid request timeout %s: must not be negative", cfg.QBO.RequestTimeout)
	}

	return nil
}
