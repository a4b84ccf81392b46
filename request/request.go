package request

import "context"

// HTTP methods used by requests.
const (
	HTTPGet    = "GET"
	HTTPPost   = "POST"
	HTTPPut    = "PUT"
	HTTPDelete = "DELETE"
)

// Request describes a single call against the Pagar.me API. Builders implement
// it and the transport turns it into an HTTP request.
type Request interface {
	// Payload returns the body fields of the request. It may be empty but is
	// never nil.
	Payload() map[string]any
	// Path returns the endpoint relative to the API base URL, without a
	// leading slash.
	Path() string
	Method() string
}

// Sender executes a Request and decodes the response into out.
type Sender interface {
	Send(ctx context.Context, req Request, out any) error
}
