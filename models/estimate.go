package models

// Ref is QBO's generic entity reference: a value (usually an id) plus an
// optional display name.
type Ref struct {
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

// Memo is QBO's wrapper for customer-visible memo text.
type Memo struct {
	Value string `json:"value"`
}

// ItemRef references a catalog item by name. No canonical item lookup is
// performed locally; the remote system matches or creates the item from the
// name text.
type ItemRef struct {
	Name string `json:"name"`
}

// SalesItemLineDetail carries the quantity and unit price of an estimate line.
type SalesItemLineDetail struct {
	Qty       float64 `json:"Qty"`
	UnitPrice float64 `json:"UnitPrice"`
	ItemRef   ItemRef `json:"ItemRef"`
}

// EstimateLine is one line of an estimate payload or response.
type EstimateLine struct {
	LineNum             int                 `json:"LineNum,omitempty"`
	Description         string              `json:"Description"`
	DetailType          string              `json:"DetailType"`
	Amount              float64             `json:"Amount"`
	SalesItemLineDetail SalesItemLineDetail `json:"SalesItemLineDetail"`
}

// EstimatePayload is the estimate creation request sent to the remote system.
type EstimatePayload struct {
	CustomerRef  Ref            `json:"CustomerRef"`
	Line         []EstimateLine `json:"Line"`
	CurrencyRef  Ref            `json:"CurrencyRef"`
	DocNumber    string         `json:"DocNumber,omitempty"`
	TxnDate      string         `json:"TxnDate,omitempty"`
	CustomerMemo *Memo          `json:"CustomerMemo,omitempty"`
	PrivateNote  string         `json:"PrivateNote,omitempty"`
}

// Estimate is the remote system's estimate record as returned after creation
// or fetch. Once created, its DocNumber and TotalAmt are authoritative over
// whatever the local document claimed.
type Estimate struct {
	ID           string         `json:"Id"`
	DocNumber    string         `json:"DocNumber"`
	TotalAmt     float64        `json:"TotalAmt"`
	CustomerRef  Ref            `json:"CustomerRef"`
	CurrencyRef  Ref            `json:"CurrencyRef"`
	TxnDate      string         `json:"TxnDate,omitempty"`
	TxnStatus    string         `json:"TxnStatus,omitempty"`
	Line         []EstimateLine `json:"Line,omitempty"`
	CustomerMemo *Memo          `json:"CustomerMemo,omitempty"`
	PrivateNote  string         `json:"PrivateNote,omitempty"`
}

// Item is a catalog item (product/service) in the remote system.
type Item struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
	Type string `json:"Type,omitempty"`
}
