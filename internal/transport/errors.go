package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

// ErrorDetail is one entry of the "errors" array Pagar.me returns on failure.
type ErrorDetail struct {
	Type          string `json:"type"`
	ParameterName string `json:"parameter_name"`
	Message       string `json:"message"`
}

// APIError represents an error returned by the Pagar.me API
type APIError struct {
	StatusCode int
	Message    string
	Errors     []ErrorDetail
}

// Error joins the status code and the server messages.
func (e *APIError) Error() string {
	return fmt.Sprintf("pagarme API error (status %d): %s", e.StatusCode, e.Message)
}

// newAPIError drains and closes resp.Body.
func (c *Client) newAPIError(resp *http.Response) *APIError {
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(raw)),
	}

	var envelope struct {
		Errors []ErrorDetail `json:"errors"`
	}
	if err := c.consumer.Consume(bytes.NewReader(raw), &envelope); err == nil && len(envelope.Errors) > 0 {
		apiErr.Errors = envelope.Errors
		apiErr.Message = strings.Join(lo.Map(envelope.Errors, func(d ErrorDetail, _ int) string {
			return d.Message
		}), "; ")
	}

	return apiErr
}
