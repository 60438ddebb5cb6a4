package models

// Customer is the remote accounting system's customer record (QBO wire shape).
type Customer struct {
	ID               string        `json:"Id,omitempty"`
	DisplayName      string        `json:"DisplayName"`
	PrimaryEmailAddr *EmailAddress `json:"PrimaryEmailAddr,omitempty"`
	PrimaryPhone     *Phone        `json:"PrimaryPhone,omitempty"`
}

// EmailAddress wraps a single email address the way QBO nests it.
type EmailAddress struct {
	Address string `json:"Address"`
}

// Phone wraps a free-form phone number the way QBO nests it.
type Phone struct {
	FreeFormNumber string `json:"FreeFormNumber"`
}

// CompanyInfo identifies the company namespace behind the configured realm.
// Fetching it is used as a connectivity probe before any mutating call.
type CompanyInfo struct {
	ID          string `json:"Id"`
	CompanyName string `json:"CompanyName"`
	Country     string `json:"Country,omitempty"`
}
