// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

// Package service contains the estimate-sync orchestrator: a single-pass
// pipeline that validates an input quote, resolves a customer, creates an
// estimate, downloads its rendered document, and records one audit row per
// attempt regardless of outcome.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/internal/mapping"
	"github.com/greentech-painting/greenpush/internal/qbo"
	"github.com/greentech-painting/greenpush/models"
)

// Pipeline stages, reported with every failure.
const (
	stageValidation = "validation"
	stageConnect    = "connect"
	stageCustomer   = "customer"
	stageEstimate   = "estimate"
	stagePDF        = "pdf"
	stageMock       = "mock"
)

// Options carries orchestrator settings.
type Options struct {
	// QuotesDir is where generated estimate documents land. Created if
	// absent. Defaults to "Quotes".
	QuotesDir string
}

// Orchestrator runs the estimate-sync pipeline. All collaborators are
// injected; the orchestrator owns no global state and can be constructed
// per invocation.
type Orchestrator struct {
	api     AccountingAPI
	audit   AuditRecorder
	history HistoryRecorder

	quotesDir string
	now       func() time.Time
	log       *logger.Logger
}

// New constructs an Orchestrator. history may be nil, in which case runs are
// recorded in the audit log only. api may be nil when every Run call will be
// in mock mode.
func New(api AccountingAPI, audit AuditRecorder, history HistoryRecorder, opts Options, log *logger.Logger) *Orchestrator {
	quotesDir := opts.QuotesDir
	if quotesDir == "" {
		quotesDir = "Quotes"
	}

	return &Orchestrator{
		api:       api,
		audit:     audit,
		history:   history,
		quotesDir: quotesDir,
		now:       time.Now,
		log:       log,
	}
}

// Run processes exactly one quote document and returns the result object the
// CLI prints to stdout. It never panics across this boundary: every failure
// is folded into the result.
//
// A validation failure aborts before any remote call and writes no audit
// row; every later failure writes a "failed" row first.
func (o *Orchestrator) Run(ctx context.Context, raw models.RawQuote, mock bool) models.SyncResult {
	log := &logger.Logger{Logger: o.log.With().Str("run_id", uuid.NewString()).Logger()}

	quote, err := mapping.Validate(raw)
	if err != nil {
		msg := "Invalid quote data: " + err.Error()
		log.Error().Str("stage", stageValidation).Msg(msg)
		return models.SyncResult{OK: false, Error: msg}
	}

	subtotal := mapping.Subtotal(quote.Items)
	log.Info().
		Str("reference", quote.Reference).
		Str("customer", quote.Customer.DisplayName).
		Int("items", len(quote.Items)).
		Str("currency", quote.Currency).
		Float64("subtotal", subtotal).
		Msg("quote validated")

	if mock {
		return o.runMock(ctx, quote, subtotal, log)
	}
	return o.runLive(ctx, quote, subtotal, log)
}

// runMock renders a local plain-text stand-in document and records a
// mock_created row. It never contacts the network.
func (o *Orchestrator) runMock(ctx context.Context, quote models.Quote, subtotal float64, log *logger.Logger) models.SyncResult {
	log.Info().Msg("creating mock estimate")

	fileRef := quote.Reference
	if fileRef == "" {
		fileRef = models.NoReference
	}
	pdfPath := filepath.Join(o.quotesDir, "Estimate_"+fileRef+".pdf")

	if err := o.writeMockDocument(pdfPath, quote, subtotal); err != nil {
		return o.fail(ctx, quote, subtotal, stageMock, err, log)
	}

	o.record(ctx, models.AuditEntry{
		Timestamp:    o.now(),
		Reference:    quote.Reference,
		CustomerName: quote.Customer.DisplayName,
		ItemsCount:   len(quote.Items),
		Subtotal:     subtotal,
		Currency:     quote.Currency,
		Status:       models.StatusMockCreated,
		PDFPath:      pdfPath,
	}, log)

	log.Info().Str("path", pdfPath).Msg("mock document created")

	return models.SyncResult{
		OK:           true,
		Mode:         "mock",
		Status:       models.StatusMockCreated,
		Reference:    quote.Reference,
		CustomerName: quote.Customer.DisplayName,
		Items:        len(quote.Items),
		Subtotal:     round2(subtotal),
		Currency:     quote.Currency,
		PDFPath:      pdfPath,
	}
}

func (o *Orchestrator) writeMockDocument(path string, quote models.Quote, subtotal float64) error {
	if err := os.MkdirAll(o.quotesDir, 0o755); err != nil {
		return fmt.Errorf("create quotes dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("GreenTech Painting – Estimate (MOCK)\n")
	b.WriteString("Reference: " + quote.Reference + "\n")
	b.WriteString("Customer: " + quote.Customer.DisplayName + "\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, item := range quote.Items {
		qty := 1.0
		if item.Qty != nil {
			qty = *item.Qty
		}
		fmt.Fprintf(&b, "%s  x%g   $%.2f\n", item.Description, qty, item.UnitPrice)
	}
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Subtotal: %s $%.2f\n", quote.Currency, subtotal)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write mock document: %w", err)
	}

	return nil
}

// runLive drives the remote pipeline: connectivity probe, customer resolve,
// estimate create, PDF download, success row. Once the estimate exists, its
// server-assigned doc number and total are authoritative over the local
// document's claims.
func (o *Orchestrator) runLive(ctx context.Context, quote models.Quote, subtotal float64, log *logger.Logger) models.SyncResult {
	log.Info().Msg("connecting to QuickBooks Online")

	company, err := o.api.GetCompanyInfo(ctx)
	if err != nil {
		return o.fail(ctx, quote, subtotal, stageConnect, err, log)
	}
	log.Info().Str("company", company.CompanyName).Msg("connected")

	customer, err := o.api.GetOrCreateCustomer(ctx, quote.Customer.DisplayName, quote.Customer.Email, quote.Customer.Phone)
	if err != nil {
		return o.fail(ctx, quote, subtotal, stageCustomer, err, log)
	}
	log.Info().Str("customer_id", customer.ID).Msg("customer resolved")

	payload := mapping.MapToEstimate(quote, customer.ID, o.now())
	estimate, err := o.api.CreateEstimate(ctx, payload)
	if err != nil {
		return o.fail(ctx, quote, subtotal, stageEstimate, err, log)
	}

	docNumber := estimate.DocNumber
	if docNumber == "" {
		docNumber = quote.Reference
	}
	total := estimate.TotalAmt
	if total == 0 {
		total = subtotal
	}
	log.Info().
		Str("estimate_id", estimate.ID).
		Str("doc_number", docNumber).
		Float64("total", total).
		Msg("estimate created")

	if err = os.MkdirAll(o.quotesDir, 0o755); err != nil {
		return o.fail(ctx, quote, subtotal, stagePDF, fmt.Errorf("create quotes dir: %w", err), log)
	}
	pdfPath := filepath.Join(o.quotesDir, "Estimate_"+docNumber+".pdf")
	if err = o.api.FetchEstimatePDF(ctx, estimate.ID, pdfPath); err != nil {
		return o.fail(ctx, quote, subtotal, stagePDF, err, log)
	}

	o.record(ctx, models.AuditEntry{
		Timestamp:    o.now(),
		Reference:    docNumber,
		CustomerName: quote.Customer.DisplayName,
		ItemsCount:   len(quote.Items),
		Subtotal:     total,
		Currency:     quote.Currency,
		Status:       models.StatusCreated,
		PDFPath:      pdfPath,
		EstimateID:   estimate.ID,
	}, log)

	log.Info().Str("path", pdfPath).Msg("estimate pushed")

	return models.SyncResult{
		OK:           true,
		Mode:         "quickbooks",
		Status:       models.StatusCreated,
		Reference:    docNumber,
		CustomerName: quote.Customer.DisplayName,
		CustomerID:   customer.ID,
		EstimateID:   estimate.ID,
		Items:        len(quote.Items),
		Subtotal:     round2(subtotal),
		Total:        round2(total),
		Currency:     quote.Currency,
		PDFPath:      pdfPath,
	}
}

// fail classifies err (typed remote error vs everything else), writes one
// failed audit row with the message truncated for the log, and returns the
// failure result. Nothing is retried; every failure is terminal for the
// invocation.
func (o *Orchestrator) fail(ctx context.Context, quote models.Quote, subtotal float64, stage string, err error, log *logger.Logger) models.SyncResult {
	var msg string
	var statusCode int

	var apiErr *qbo.APIError
	if errors.As(err, &apiErr) {
		msg = "QuickBooks API Error: " + apiErr.Message
		statusCode = apiErr.StatusCode
	} else {
		msg = "Unexpected error: " + err.Error()
	}

	log.Error().
		Str("stage", stage).
		Int("status_code", statusCode).
		Msg(msg)

	o.record(ctx, models.AuditEntry{
		Timestamp:    o.now(),
		Reference:    quote.Reference,
		CustomerName: quote.Customer.DisplayName,
		ItemsCount:   len(quote.Items),
		Subtotal:     subtotal,
		Currency:     quote.Currency,
		Status:       models.StatusFailed,
		Error:        msg,
	}, log)

	return models.SyncResult{
		OK:           false,
		Status:       models.StatusFailed,
		Reference:    quote.Reference,
		CustomerName: quote.Customer.DisplayName,
		Items:        len(quote.Items),
		Subtotal:     round2(subtotal),
		Currency:     quote.Currency,
		Error:        msg,
		StatusCode:   statusCode,
	}
}

// record appends the audit row and mirrors it into the history store when
// one is configured. An audit failure is logged but cannot be recovered; a
// history failure is a warning only.
func (o *Orchestrator) record(ctx context.Context, entry models.AuditEntry, log *logger.Logger) {
	if err := o.audit.Append(entry); err != nil {
		log.Error().Err(err).Msg("append audit row")
	}

	if o.history != nil {
		if err := o.history.SaveRun(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("save run to history")
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
