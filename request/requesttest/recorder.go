// Package requesttest provides a request.Sender that records what it is asked
// to send, for handler tests.
package requesttest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cloudson/pagarme-go/request"
)

// Recorder is a request.Sender that keeps every request and answers with Response.
type Recorder struct {
	mu       sync.Mutex
	Requests []request.Request
	// Response is decoded into out on every Send.
	Response string
	Err      error
}

// Send records req and decodes Response into out. Err, when set, is returned instead.
func (r *Recorder) Send(_ context.Context, req request.Request, out any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Requests = append(r.Requests, req)
	if r.Err != nil {
		return r.Err
	}
	if out == nil || r.Response == "" {
		return nil
	}

	return json.Unmarshal([]byte(r.Response), out)
}

// Last returns the most recently sent request, or nil.
func (r *Recorder) Last() request.Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Requests) == 0 {
		return nil
	}
	return r.Requests[len(r.Requests)-1]
}
