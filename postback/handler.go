package postback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// Postback is a notification Pagar.me sends to a postback_url when an object
// changes status.
type Postback struct {
	ID            string
	Event         string
	Object        string
	OldStatus     string
	CurrentStatus string
	DesiredStatus string
	Fingerprint   string
	// Fields holds every form field, including the nested object ones such as
	// subscription[plan][id].
	Fields url.Values
}

// Func handles a verified postback. Returning an error makes the handler
// answer with a 500 so Pagar.me retries the delivery.
type Func func(ctx context.Context, pb Postback) error

// Handler verifies and decodes postbacks and hands them to a Func.
type Handler struct {
	apiKey string
	fn     Func
	logger *zap.Logger
}

// NewHandler creates a postback handler verifying signatures with apiKey.
func NewHandler(apiKey string, fn Func, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{apiKey: apiKey, fn: fn, logger: logger}
}

// Register mounts the handler on router for POST requests to path.
func (h *Handler) Register(router *mux.Router, path string) {
	router.Handle(path, h).Methods(http.MethodPost)
}

// ServeHTTP verifies and decodes a postback, then hands it to the callback.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.logger.Error("failed to read postback body", zap.Error(err))
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	pb, err := h.Decode(body, r.Header.Get(SignatureHeader))
	if err != nil {
		h.logger.Warn("rejected postback", zap.Error(err))
		if errors.Is(err, ErrInvalidSignature) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Info("postback received",
		zap.String("object", pb.Object),
		zap.String("id", pb.ID),
		zap.String("event", pb.Event),
		zap.String("old_status", pb.OldStatus),
		zap.String("current_status", pb.CurrentStatus),
	)

	if err := h.fn(r.Context(), *pb); err != nil {
		h.logger.Error("postback handler failed",
			zap.String("id", pb.ID),
			zap.Error(err),
		)
		http.Error(w, "postback handling failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Decode verifies signature against body and parses the form-encoded
// postback.
func (h *Handler) Decode(body []byte, signature string) (*Postback, error) {
	if !ValidateSignature(body, signature, h.apiKey) {
		return nil, ErrInvalidSignature
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse postback body: %w", err)
	}

	return &Postback{
		ID:            values.Get("id"),
		Event:         values.Get("event"),
		Object:        values.Get("object"),
		OldStatus:     values.Get("old_status"),
		CurrentStatus: values.Get("current_status"),
		DesiredStatus: values.Get("desired_status"),
		Fingerprint:   values.Get("fingerprint"),
		Fields:        values,
	}, nil
}
