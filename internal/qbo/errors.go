package qbo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIError is the single error type for every failed interaction with the
// remote accounting API. StatusCode is zero for network-level failures
// (connection, DNS, timeout) where no HTTP status exists.
type APIError struct {
	Message    string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// faultEnvelope is the structured error body the remote system returns on
// most failures.
type faultEnvelope struct {
	Fault struct {
		Error []struct {
			Message string `json:"Message"`
			Detail  string `json:"Detail"`
			Code    string `json:"code"`
		} `json:"Error"`
		Type string `json:"type"`
	} `json:"Fault"`
}

// mapAPIError translates any response with status >= 400 into an *APIError.
// The message prefers the first structured fault message, falling back to the
// raw response text.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	message := body
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	var fault faultEnvelope
	if err := json.Unmarshal(resp.Body(), &fault); err == nil {
		if len(fault.Fault.Error) > 0 && fault.Fault.Error[0].Message != "" {
			message = fault.Fault.Error[0].Message
		}
	}

	return &APIError{
		Message:    message,
		StatusCode: resp.StatusCode(),
		Body:       body,
	}
}

func networkError(op string, err error) error {
	return &APIError{Message: fmt.Sprintf("Network error: %s: %v", op, err)}
}
