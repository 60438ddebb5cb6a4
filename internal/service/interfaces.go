package service

import (
	"context"

	"github.com/greentech-painting/greenpush/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// AccountingAPI is the remote boundary the orchestrator drives. Implemented
// by qbo.Client; mocked in tests.
type AccountingAPI interface {
	// GetCompanyInfo is the connectivity probe run before any mutating call.
	GetCompanyInfo(ctx context.Context) (models.CompanyInfo, error)

	// GetOrCreateCustomer resolves a customer by exact display name,
	// creating one only when no match exists.
	GetOrCreateCustomer(ctx context.Context, displayName, email, phone string) (models.Customer, error)

	// CreateEstimate submits an estimate payload and returns the created
	// record with its server-assigned identity.
	CreateEstimate(ctx context.Context, payload models.EstimatePayload) (models.Estimate, error)

	// FetchEstimatePDF downloads the rendered estimate document to
	// outputPath.
	FetchEstimatePDF(ctx context.Context, estimateID, outputPath string) error
}

// AuditRecorder appends one durable row per pipeline invocation.
type AuditRecorder interface {
	Append(entry models.AuditEntry) error
}

// HistoryRecorder mirrors audit entries into the optional local history
// store. A failing history write never fails the run.
type HistoryRecorder interface {
	SaveRun(ctx context.Context, entry models.AuditEntry) error
}
