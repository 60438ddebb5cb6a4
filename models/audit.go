// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

package models

import "time"

// Audit row statuses. Every row written to the audit log carries exactly one
// of these.
const (
	StatusMockCreated = "mock_created"
	StatusCreated     = "created"
	StatusFailed      = "failed"
)

// AuditEntry is one durable record of a single pipeline invocation's outcome.
// Rows are append-only: written once, never rewritten or compacted.
type AuditEntry struct {
	Timestamp    time.Time
	Reference    string
	CustomerName string
	ItemsCount   int
	Subtotal     float64
	Currency     string
	Status       string
	PDFPath      string
	EstimateID   string
	Error        string
}

// HistoryRow is one persisted run in the optional local sync-history store.
type HistoryRow struct {
	ID           int64
	Timestamp    string
	Reference    string
	CustomerName string
	ItemsCount   int
	Subtotal     float64
	Currency     string
	Status       string
	PDFPath      string
	EstimateID   string
	Error        string
}
