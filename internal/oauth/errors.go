package oauth

import "fmt"

// CredentialError reports a missing or rejected credential. StatusCode and
// Body are populated when the remote token endpoint answered with a
// non-success status; both stay zero-valued for purely local failures.
type CredentialError struct {
	Message    string
	StatusCode int
	Body       string
}

func (e *CredentialError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %d - %s", e.Message, e.StatusCode, e.Body)
	}
	return e.Message
}
