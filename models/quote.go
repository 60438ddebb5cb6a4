package models

// RawQuote is the untrusted parse of an input quote document. Field types are
// deliberately loose: the calculation engine that produces these files is not
// under our control, so shape and numeric types are only guaranteed after
// mapping.Validate has produced a Quote from it.
type RawQuote struct {
	Customer       map[string]any `json:"customer"`
	Quote          map[string]any `json:"quote"`
	Items          any            `json:"items"`
	Currency       string         `json:"currency"`
	Sustainability map[string]any `json:"sustainability"`
}

// Quote is a validated quote document. Instances are only produced by
// mapping.Validate; downstream code never observes an unvalidated document.
type Quote struct {
	Customer       QuoteCustomer
	Reference      string
	TxnDate        string
	Items          []LineItem
	Currency       string
	Sustainability *Sustainability
}

// QuoteCustomer is the customer section of a validated quote.
type QuoteCustomer struct {
	DisplayName string
	Email       string
	Phone       string
}

// LineItem is one priced line of a validated quote.
//
// Qty is a pointer on purpose: subtotal computation treats a missing quantity
// as 0 while estimate mapping treats it as 1. Both behaviors are pinned by
// regression tests and must not be unified.
type LineItem struct {
	Description string
	Qty         *float64
	UnitPrice   float64
}

// Sustainability holds the environmental-impact metrics attached to a quote.
// Presence of the section (not magnitude of its fields) gates the internal
// note on the mapped estimate.
type Sustainability struct {
	Trees       float64
	CO2Tons     float64
	WaterLiters float64
}

// NoReference is the fallback reference used when the quote section carries
// no reference at all.
const NoReference = "NO-REF"
