// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

// Package mapping validates untrusted quote documents and maps them into the
// remote accounting system's estimate representation. Validate is the only
// producer of models.Quote, so everything downstream works on checked data.
package mapping

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/greentech-painting/greenpush/models"
)

// Validate checks raw against the required quote shape and returns the typed
// document. Checks run in a fixed order and stop at the first violation:
// customer section, items array presence and non-emptiness, customer display
// name, then per-item description/qty/unit_price presence with numeric
// coercion of qty and unit_price.
func Validate(raw models.RawQuote) (models.Quote, error) {
	if raw.Customer == nil {
		return models.Quote{}, validationErrorf("Missing 'customer' section")
	}

	rawItems, ok := raw.Items.([]any)
	if !ok {
		return models.Quote{}, validationErrorf("Missing or invalid 'items' array")
	}
	if len(rawItems) == 0 {
		return models.Quote{}, validationErrorf("No items in quote")
	}

	displayName, _ := raw.Customer["display_name"].(string)
	if displayName == "" {
		return models.Quote{}, validationErrorf("Customer display_name is required")
	}

	items := make([]models.LineItem, 0, len(rawItems))
	for i, rawItem := range rawItems {
		item, ok := rawItem.(map[string]any)
		if !ok {
			return models.Quote{}, validationErrorf("Item %d: Missing description", i)
		}

		if _, ok = item["description"]; !ok {
			return models.Quote{}, validationErrorf("Item %d: Missing description", i)
		}
		if _, ok = item["qty"]; !ok {
			return models.Quote{}, validationErrorf("Item %d: Missing qty", i)
		}
		if _, ok = item["unit_price"]; !ok {
			return models.Quote{}, validationErrorf("Item %d: Missing unit_price", i)
		}

		qty, qtyOK := toFloat(item["qty"])
		unitPrice, priceOK := toFloat(item["unit_price"])
		if !qtyOK || !priceOK {
			return models.Quote{}, validationErrorf("Item %d: qty and unit_price must be numeric", i)
		}

		items = append(items, models.LineItem{
			Description: toString(item["description"]),
			Qty:         &qty,
			UnitPrice:   unitPrice,
		})
	}

	return models.Quote{
		Customer: models.QuoteCustomer{
			DisplayName: displayName,
			Email:       stringField(raw.Customer, "email"),
			Phone:       stringField(raw.Customer, "phone"),
		},
		Reference:      extractReference(raw),
		TxnDate:        stringField(raw.Quote, "date"),
		Items:          items,
		Currency:       defaultCurrency(raw.Currency),
		Sustainability: extractSustainability(raw.Sustainability),
	}, nil
}

// Subtotal sums qty × unit_price over items. A missing quantity zeroes its
// line here, while MapToEstimate defaults it to 1 — a deliberate, preserved
// asymmetry pinned by regression tests.
func Subtotal(items []models.LineItem) float64 {
	var total float64
	for _, item := range items {
		qty := 0.0
		if item.Qty != nil {
			qty = *item.Qty
		}
		total += qty * item.UnitPrice
	}
	return total
}

// MapToEstimate maps a validated quote plus a resolved customer id into the
// remote system's estimate payload. Line numbers are 1-based in input order;
// each line references a catalog item by its description text.
func MapToEstimate(q models.Quote, customerID string, now time.Time) models.EstimatePayload {
	lines := make([]models.EstimateLine, 0, len(q.Items))
	for idx, item := range q.Items {
		qty := 1.0
		if item.Qty != nil {
			qty = *item.Qty
		}

		lines = append(lines, models.EstimateLine{
			LineNum:     idx + 1,
			Description: item.Description,
			DetailType:  "SalesItemLineDetail",
			Amount:      qty * item.UnitPrice,
			SalesItemLineDetail: models.SalesItemLineDetail{
				Qty:       qty,
				UnitPrice: item.UnitPrice,
				ItemRef:   models.ItemRef{Name: item.Description},
			},
		})
	}

	payload := models.EstimatePayload{
		CustomerRef: models.Ref{Value: customerID},
		Line:        lines,
		CurrencyRef: models.Ref{Value: q.Currency},
	}

	if q.Reference != "" {
		payload.DocNumber = q.Reference
	}
	if q.TxnDate != "" {
		payload.TxnDate = q.TxnDate
	}

	if memo := composeMemo(q); memo != "" {
		payload.CustomerMemo = &models.Memo{Value: memo}
	}

	// Presence of the sustainability section gates the internal note, even
	// when every metric is zero.
	if q.Sustainability != nil {
		payload.PrivateNote = "GreenTech Quote " + q.Reference +
			"\nGenerated: " + now.UTC().Format(time.RFC3339) +
			"\nSustainability metrics included in customer memo"
	}

	return payload
}

// composeMemo builds the customer-visible memo: the quote reference joined
// with the sustainability summary by " | ". Either part may be absent.
func composeMemo(q models.Quote) string {
	var parts []string
	if q.Reference != "" {
		parts = append(parts, "Reference: "+q.Reference)
	}
	if summary := SustainabilitySummary(q.Sustainability); summary != "" {
		parts = append(parts, summary)
	}
	return strings.Join(parts, " | ")
}

// SustainabilitySummary renders the non-zero environmental metrics with fixed
// labels. Returns "" when the section is absent or every metric is zero.
func SustainabilitySummary(s *models.Sustainability) string {
	if s == nil {
		return ""
	}

	var parts []string
	if s.Trees != 0 {
		parts = append(parts, formatMetric(s.Trees)+" tree(s)")
	}
	if s.CO2Tons != 0 {
		parts = append(parts, formatMetric(s.CO2Tons)+" tons CO₂")
	}
	if s.WaterLiters != 0 {
		parts = append(parts, formatMetric(s.WaterLiters)+"L water saved")
	}

	if len(parts) == 0 {
		return ""
	}
	return "Environmental impact: " + strings.Join(parts, ", ")
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func extractReference(raw models.RawQuote) string {
	if raw.Quote == nil {
		return models.NoReference
	}
	ref, ok := raw.Quote["reference"]
	if !ok {
		return models.NoReference
	}
	return toString(ref)
}

func extractSustainability(raw map[string]any) *models.Sustainability {
	if raw == nil {
		return nil
	}

	metric := func(key string) float64 {
		v, _ := toFloat(raw[key])
		return v
	}

	return &models.Sustainability{
		Trees:       metric("trees"),
		CO2Tons:     metric("co2_tons"),
		WaterLiters: metric("water_liters"),
	}
}

func defaultCurrency(currency string) string {
	if currency == "" {
		return "CAD"
	}
	return currency
}

func stringField(section map[string]any, key string) string {
	if section == nil {
		return ""
	}
	v, _ := section[key].(string)
	return v
}

// toFloat coerces JSON numbers and numeric strings. The calculation engine
// sometimes emits quantities as strings, so plain type assertion is not
// enough.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	if n, ok := toFloat(v); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}
