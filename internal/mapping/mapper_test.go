package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentech-painting/greenpush/models"
)

func validRaw() models.RawQuote {
	return models.RawQuote{
		Customer: map[string]any{
			"display_name": "Maple Ridge Properties",
			"email":        "ap@mapleridge.example",
			"phone":        "604-555-0199",
		},
		Quote: map[string]any{
			"reference": "GT-2026-0042",
			"date":      "2026-08-20",
		},
		Items: []any{
			map[string]any{"description": "Interior wall paint - low VOC", "qty": 2.0, "unit_price": 150.0},
			map[string]any{"description": "Exterior trim", "qty": 1.0, "unit_price": 300.0},
		},
		Currency: "CAD",
		Sustainability: map[string]any{
			"trees":        3.0,
			"co2_tons":     0.5,
			"water_liters": 120.0,
		},
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(raw *models.RawQuote)
		wantMsg string
	}{
		{
			name:    "missing customer section",
			mutate:  func(raw *models.RawQuote) { raw.Customer = nil },
			wantMsg: "Missing 'customer' section",
		},
		{
			name:    "missing items",
			mutate:  func(raw *models.RawQuote) { raw.Items = nil },
			wantMsg: "Missing or invalid 'items' array",
		},
		{
			name:    "items not an array",
			mutate:  func(raw *models.RawQuote) { raw.Items = map[string]any{"oops": true} },
			wantMsg: "Missing or invalid 'items' array",
		},
		{
			name:    "empty items",
			mutate:  func(raw *models.RawQuote) { raw.Items = []any{} },
			wantMsg: "No items in quote",
		},
		{
			name:    "missing display name",
			mutate:  func(raw *models.RawQuote) { delete(raw.Customer, "display_name") },
			wantMsg: "Customer display_name is required",
		},
		{
			name: "empty display name",
			mutate: func(raw *models.RawQuote) {
				raw.Customer["display_name"] = ""
			},
			wantMsg: "Customer display_name is required",
		},
		{
			name: "item missing description",
			mutate: func(raw *models.RawQuote) {
				raw.Items = []any{
					map[string]any{"qty": 1.0, "unit_price": 10.0},
				}
			},
			wantMsg: "Item 0: Missing description",
		},
		{
			name: "second item missing qty",
			mutate: func(raw *models.RawQuote) {
				raw.Items = []any{
					map[string]any{"description": "a", "qty": 1.0, "unit_price": 10.0},
					map[string]any{"description": "b", "unit_price": 10.0},
				}
			},
			wantMsg: "Item 1: Missing qty",
		},
		{
			name: "item missing unit price",
			mutate: func(raw *models.RawQuote) {
				raw.Items = []any{
					map[string]any{"description": "a", "qty": 1.0},
				}
			},
			wantMsg: "Item 0: Missing unit_price",
		},
		{
			name: "non-numeric qty",
			mutate: func(raw *models.RawQuote) {
				raw.Items = []any{
					map[string]any{"description": "a", "qty": "lots", "unit_price": 10.0},
				}
			},
			wantMsg: "Item 0: qty and unit_price must be numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			_, err := Validate(raw)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestValidate_OK(t *testing.T) {
	quote, err := Validate(validRaw())
	require.NoError(t, err)

	assert.Equal(t, "Maple Ridge Properties", quote.Customer.DisplayName)
	assert.Equal(t, "ap@mapleridge.example", quote.Customer.Email)
	assert.Equal(t, "604-555-0199", quote.Customer.Phone)
	assert.Equal(t, "GT-2026-0042", quote.Reference)
	assert.Equal(t, "2026-08-20", quote.TxnDate)
	assert.Equal(t, "CAD", quote.Currency)
	require.Len(t, quote.Items, 2)
	require.NotNil(t, quote.Items[0].Qty)
	assert.Equal(t, 2.0, *quote.Items[0].Qty)
	assert.Equal(t, 150.0, quote.Items[0].UnitPrice)
	require.NotNil(t, quote.Sustainability)
	assert.Equal(t, 3.0, quote.Sustainability.Trees)
	assert.Equal(t, 0.5, quote.Sustainability.CO2Tons)
	assert.Equal(t, 120.0, quote.Sustainability.WaterLiters)
}

func TestValidate_StringNumbersAreCoerced(t *testing.T) {
	raw := validRaw()
	raw.Items = []any{
		map[string]any{"description": "a", "qty": "2", "unit_price": "99.50"},
	}

	quote, err := Validate(raw)
	require.NoError(t, err)
	require.Len(t, quote.Items, 1)
	assert.Equal(t, 2.0, *quote.Items[0].Qty)
	assert.Equal(t, 99.50, quote.Items[0].UnitPrice)
}

func TestValidate_ReferenceFallback(t *testing.T) {
	t.Run("missing quote section", func(t *testing.T) {
		raw := validRaw()
		raw.Quote = nil

		quote, err := Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, models.NoReference, quote.Reference)
	})

	t.Run("missing reference key", func(t *testing.T) {
		raw := validRaw()
		raw.Quote = map[string]any{"date": "2026-08-20"}

		quote, err := Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, models.NoReference, quote.Reference)
	})

	t.Run("present but empty reference stays empty", func(t *testing.T) {
		raw := validRaw()
		raw.Quote["reference"] = ""

		quote, err := Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, "", quote.Reference)
	})
}

func TestValidate_CurrencyDefault(t *testing.T) {
	raw := validRaw()
	raw.Currency = ""

	quote, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "CAD", quote.Currency)
}

func TestSubtotal(t *testing.T) {
	quote, err := Validate(validRaw())
	require.NoError(t, err)

	assert.Equal(t, 600.0, Subtotal(quote.Items))
}

// A missing quantity zeroes the line in the subtotal but defaults to 1 in the
// mapped estimate. Both halves are pinned here so neither gets "fixed"
// unilaterally.
func TestMissingQtyAsymmetry(t *testing.T) {
	items := []models.LineItem{
		{Description: "Primer coat", Qty: nil, UnitPrice: 80},
	}

	assert.Equal(t, 0.0, Subtotal(items))

	payload := MapToEstimate(models.Quote{
		Customer: models.QuoteCustomer{DisplayName: "X"},
		Items:    items,
		Currency: "CAD",
	}, "42", time.Now())

	require.Len(t, payload.Line, 1)
	assert.Equal(t, 1.0, payload.Line[0].SalesItemLineDetail.Qty)
	assert.Equal(t, 80.0, payload.Line[0].Amount)
}

func TestMapToEstimate(t *testing.T) {
	quote, err := Validate(validRaw())
	require.NoError(t, err)

	now := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	payload := MapToEstimate(quote, "7", now)

	assert.Equal(t, "7", payload.CustomerRef.Value)
	assert.Equal(t, "CAD", payload.CurrencyRef.Value)
	assert.Equal(t, "GT-2026-0042", payload.DocNumber)
	assert.Equal(t, "2026-08-20", payload.TxnDate)

	require.Len(t, payload.Line, 2)
	first := payload.Line[0]
	assert.Equal(t, 1, first.LineNum)
	assert.Equal(t, "Interior wall paint - low VOC", first.Description)
	assert.Equal(t, "SalesItemLineDetail", first.DetailType)
	assert.Equal(t, 300.0, first.Amount)
	assert.Equal(t, 2.0, first.SalesItemLineDetail.Qty)
	assert.Equal(t, 150.0, first.SalesItemLineDetail.UnitPrice)
	assert.Equal(t, "Interior wall paint - low VOC", first.SalesItemLineDetail.ItemRef.Name)
	assert.Equal(t, 2, payload.Line[1].LineNum)

	require.NotNil(t, payload.CustomerMemo)
	assert.Equal(t,
		"Reference: GT-2026-0042 | Environmental impact: 3 tree(s), 0.5 tons CO₂, 120L water saved",
		payload.CustomerMemo.Value)

	assert.Equal(t,
		"GreenTech Quote GT-2026-0042\nGenerated: 2026-08-23T10:30:00Z\nSustainability metrics included in customer memo",
		payload.PrivateNote)
}

func TestMapToEstimate_NoReferenceNoSustainability(t *testing.T) {
	quote := models.Quote{
		Customer: models.QuoteCustomer{DisplayName: "X"},
		Items:    []models.LineItem{{Description: "a", Qty: ptr(1.0), UnitPrice: 10}},
		Currency: "CAD",
	}

	payload := MapToEstimate(quote, "42", time.Now())

	assert.Empty(t, payload.DocNumber)
	assert.Empty(t, payload.TxnDate)
	assert.Nil(t, payload.CustomerMemo)
	assert.Empty(t, payload.PrivateNote)
}

// Presence of the sustainability section gates the internal note even when
// every metric is zero.
func TestMapToEstimate_ZeroMetricsStillNoted(t *testing.T) {
	quote := models.Quote{
		Customer:       models.QuoteCustomer{DisplayName: "X"},
		Reference:      "GT-1",
		Items:          []models.LineItem{{Description: "a", Qty: ptr(1.0), UnitPrice: 10}},
		Currency:       "CAD",
		Sustainability: &models.Sustainability{},
	}

	payload := MapToEstimate(quote, "42", time.Now())

	assert.NotEmpty(t, payload.PrivateNote)
	require.NotNil(t, payload.CustomerMemo)
	assert.Equal(t, "Reference: GT-1", payload.CustomerMemo.Value)
}

func TestSustainabilitySummary(t *testing.T) {
	assert.Empty(t, SustainabilitySummary(nil))
	assert.Empty(t, SustainabilitySummary(&models.Sustainability{}))

	assert.Equal(t,
		"Environmental impact: 2 tree(s)",
		SustainabilitySummary(&models.Sustainability{Trees: 2}))

	assert.Equal(t,
		"Environmental impact: 1.5 tons CO₂, 40L water saved",
		SustainabilitySummary(&models.Sustainability{CO2Tons: 1.5, WaterLiters: 40}))
}

func ptr(v float64) *float64 { return &v }
