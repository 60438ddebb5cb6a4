package models

// SyncResult is the machine-parseable outcome printed to stdout at the end of
// every invocation. The calling spreadsheet/automation layer parses it, so
// field names are part of the external contract.
type SyncResult struct {
	OK           bool    `json:"ok"`
	Mode         string  `json:"mode,omitempty"`
	Status       string  `json:"status,omitempty"`
	Reference    string  `json:"reference,omitempty"`
	CustomerName string  `json:"customer_name,omitempty"`
	CustomerID   string  `json:"customer_id,omitempty"`
	EstimateID   string  `json:"estimate_id,omitempty"`
	Items        int     `json:"items,omitempty"`
	Subtotal     float64 `json:"subtotal,omitempty"`
	Total        float64 `json:"total,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	PDFPath      string  `json:"pdf_path,omitempty"`
	Error        string  `json:"error,omitempty"`
	StatusCode   int     `json:"status_code,omitempty"`
}
