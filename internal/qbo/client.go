// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

// Package qbo is the authenticated request/response layer over the QuickBooks
// Online REST API. Every operation attaches a bearer token obtained from the
// injected TokenProvider and translates any failure into a typed *APIError.
package qbo

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/greentech-painting/greenpush/internal/config"
	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/models"
)

const (
	sandboxBaseURL    = "https://sandbox-quickbooks.api.intuit.com"
	productionBaseURL = "https://quickbooks.api.intuit.com"
)

// Client talks to one company namespace (realm) of the remote accounting API.
type Client struct {
	client  *resty.Client
	tokens  TokenProvider
	realmID string
	log     *logger.Logger
}

// NewClient constructs a Client for the configured realm and mode. The realm
// id is checked lazily at request time so that construction never needs
// remote credentials (mock-mode invocations construct nothing at all).
func NewClient(cfg config.QBO, tokens TokenProvider, log *logger.Logger) *Client {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = baseURLForMode(cfg.Mode)
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &Client{
		client:  client,
		tokens:  tokens,
		realmID: cfg.RealmID,
		log:     log,
	}
}

func baseURLForMode(mode string) string {
	if mode == config.ModeProduction {
		return productionBaseURL
	}
	return sandboxBaseURL
}

// authedRequest prepares a request carrying the bearer token. Failing to
// obtain a token surfaces as an *APIError so callers deal with one error
// type for the whole remote boundary.
func (c *Client) authedRequest(ctx context.Context) (*resty.Request, error) {
	if c.realmID == "" {
		return nil, &APIError{Message: "realm id is not configured"}
	}

	token, err := c.tokens.GetValidToken(ctx, false)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("obtain access token: %v", err)}
	}

	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Accept", "application/json"), nil
}

func (c *Client) companyPath(resource string) string {
	return fmt.Sprintf("/v3/company/%s/%s", c.realmID, resource)
}

// GetCompanyInfo fetches the company record behind the configured realm.
// Used as a connectivity probe before any mutating call.
func (c *Client) GetCompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	var envelope struct {
		CompanyInfo models.CompanyInfo `json:"CompanyInfo"`
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.CompanyInfo{}, err
	}

	resp, err := req.SetResult(&envelope).Get(c.companyPath("companyinfo/1"))
	if err != nil {
		return models.CompanyInfo{}, networkError("get company info", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.CompanyInfo{}, err
	}

	return envelope.CompanyInfo, nil
}

// QueryCustomers queries customers by exact display name when name is
// non-empty, else returns a bounded listing (cap 100). Single quotes in the
// name are escaped for the remote query syntax.
func (c *Client) QueryCustomers(ctx context.Context, name string) ([]models.Customer, error) {
	query := "SELECT * FROM Customer MAXRESULTS 100"
	if name != "" {
		query = fmt.Sprintf("SELECT * FROM Customer WHERE DisplayName = '%s'", escapeQueryValue(name))
	}

	var envelope struct {
		QueryResponse struct {
			Customer []models.Customer `json:"Customer"`
		} `json:"QueryResponse"`
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("query", query).
		SetResult(&envelope).
		Get(c.companyPath("query"))
	if err != nil {
		return nil, networkError("query customers", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return envelope.QueryResponse.Customer, nil
}

// CreateCustomer creates a customer record. Email and phone are attached only
// when non-empty.
func (c *Client) CreateCustomer(ctx context.Context, displayName, email, phone string) (models.Customer, error) {
	payload := models.Customer{DisplayName: displayName}
	if email != "" {
		payload.PrimaryEmailAddr = &models.EmailAddress{Address: email}
	}
	if phone != "" {
		payload.PrimaryPhone = &models.Phone{FreeFormNumber: phone}
	}

	var envelope struct {
		Customer models.Customer `json:"Customer"`
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Customer{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&envelope).
		Post(c.companyPath("customer"))
	if err != nil {
		return models.Customer{}, networkError("create customer", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Customer{}, err
	}

	return envelope.Customer, nil
}

// GetOrCreateCustomer resolves a customer idempotently: an exact-name query
// first (the remote ordering decides ties; the first match wins), a create
// only when nothing matched. Dedup is exact-string; name variants create
// duplicates, a known false-negative risk.
func (c *Client) GetOrCreateCustomer(ctx context.Context, displayName, email, phone string) (models.Customer, error) {
	existing, err := c.QueryCustomers(ctx, displayName)
	if err != nil {
		return models.Customer{}, err
	}

	if len(existing) > 0 {
		c.log.Info().
			Str("customer", existing[0].DisplayName).
			Str("customer_id", existing[0].ID).
			Msg("found existing customer")
		return existing[0], nil
	}

	c.log.Info().Str("customer", displayName).Msg("creating new customer")
	return c.CreateCustomer(ctx, displayName, email, phone)
}

// CreateEstimate submits an estimate payload and returns the created record.
func (c *Client) CreateEstimate(ctx context.Context, payload models.EstimatePayload) (models.Estimate, error) {
	var envelope struct {
		Estimate models.Estimate `json:"Estimate"`
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Estimate{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&envelope).
		Post(c.companyPath("estimate"))
	if err != nil {
		return models.Estimate{}, networkError("create estimate", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Estimate{}, err
	}

	return envelope.Estimate, nil
}

// GetEstimate fetches an estimate by id.
func (c *Client) GetEstimate(ctx context.Context, estimateID string) (models.Estimate, error) {
	var envelope struct {
		Estimate models.Estimate `json:"Estimate"`
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Estimate{}, err
	}

	resp, err := req.SetResult(&envelope).Get(c.companyPath("estimate/" + estimateID))
	if err != nil {
		return models.Estimate{}, networkError("get estimate", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Estimate{}, err
	}

	return envelope.Estimate, nil
}

// FetchEstimatePDF downloads the rendered estimate document and writes it to
// outputPath. The caller owns directory creation for the path.
func (c *Client) FetchEstimatePDF(ctx context.Context, estimateID, outputPath string) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Accept", "application/pdf").
		Get(c.companyPath("estimate/" + estimateID + "/pdf"))
	if err != nil {
		return networkError("download PDF", err)
	}
	if resp.StatusCode() >= 400 {
		return &APIError{
			Message:    fmt.Sprintf("Failed to download PDF: %d", resp.StatusCode()),
			StatusCode: resp.StatusCode(),
		}
	}

	if err = os.WriteFile(outputPath, resp.Body(), 0o644); err != nil {
		return fmt.Errorf("write PDF file: %w", err)
	}

	c.log.Info().Str("path", outputPath).Msg("PDF downloaded")
	return nil
}

// QueryItems queries catalog items by exact name when name is non-empty, else
// lists service items (cap 100). Kept for operator diagnostics; the pipeline
// itself references items by description text only.
func (c *Client) QueryItems(ctx context.Context, name string) ([]models.Item, error) {
	query := "SELECT * FROM Item WHERE Type = 'Service' MAXRESULTS 100"
	if name != "" {
		query = fmt.Sprintf("SELECT * FROM Item WHERE Name = '%s'", escapeQueryValue(name))
	}

	var envelope struct {
		QueryResponse struct {
			Item []models.Item `json:"Item"`
		} `json:"QueryResponse"`
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("query", query).
		SetResult(&envelope).
		Get(c.companyPath("query"))
	if err != nil {
		return nil, networkError("query items", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return envelope.QueryResponse.Item, nil
}

// escapeQueryValue escapes single quotes for the remote query syntax.
func escapeQueryValue(v string) string {
	return strings.ReplaceAll(v, "'", `\'`)
}
