// Package pagarme is a client for the Pagar.me payment API.
//
// Requests are plain values built by the resource packages (subscription,
// card, plan); the handlers returned here send them through a shared
// transport configured with the account api key.
package pagarme

import (
	"context"
	"fmt"

	"github.com/cloudson/pagarme-go/card"
	"github.com/cloudson/pagarme-go/internal/config"
	"github.com/cloudson/pagarme-go/internal/transport"
	"github.com/cloudson/pagarme-go/plan"
	"github.com/cloudson/pagarme-go/postback"
	"github.com/cloudson/pagarme-go/request"
	"github.com/cloudson/pagarme-go/subscription"
	"go.uber.org/zap"
)

// Config is the client configuration. A zero MaxRetries disables retries;
// set it to UseDefaultRetries for the default count.
type Config = config.ClientConfig

// APIError is returned, possibly wrapped, for non-2xx API responses.
type APIError = transport.APIError

// ErrorDetail is one entry of APIError.Errors.
type ErrorDetail = transport.ErrorDetail

// UseDefaultRetries in Config.MaxRetries selects the default retry count.
const UseDefaultRetries = config.UseDefaultRetries

// ErrMissingAPIKey is returned by New when Config.APIKey is empty.
var ErrMissingAPIKey = config.ErrMissingAPIKey

// IsAPIError reports whether err carries an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	return transport.IsAPIError(err)
}

// PagarMe groups the resource handlers sharing one transport.
type PagarMe struct {
	cfg          Config
	transport    *transport.Client
	logger       *zap.Logger
	subscription *subscription.Handler
	card         *card.Handler
	plan         *plan.Handler
}

// New validates cfg and creates a client.
func New(cfg Config, logger *zap.Logger) (*PagarMe, error) {
	cfg = cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pagarme config: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "pagarme"))

	t := transport.NewClient(cfg, logger)

	return &PagarMe{
		cfg:          cfg,
		transport:    t,
		logger:       logger,
		subscription: subscription.NewHandler(t, logger),
		card:         card.NewHandler(t, logger),
		plan:         plan.NewHandler(t, logger),
	}, nil
}

// NewFromEnv builds a client from PAGARME_* environment variables.
func NewFromEnv(logger *zap.Logger) (*PagarMe, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	return New(cfg, logger)
}

// Subscription returns the subscription handler.
func (p *PagarMe) Subscription() *subscription.Handler {
	return p.subscription
}

// Card returns the card handler.
func (p *PagarMe) Card() *card.Handler {
	return p.card
}

// Plan returns the plan handler.
func (p *PagarMe) Plan() *plan.Handler {
	return p.plan
}

// CardHash encrypts raw card data with a key fetched using the configured
// encryption key and returns a card.ByHash value.
func (p *PagarMe) CardHash(ctx context.Context, number, holderName, expirationDate, cvv string) (card.Card, error) {
	return p.card.Hash(ctx, p.cfg.EncryptionKey, number, holderName, expirationDate, cvv)
}

// Postback returns an http.Handler that verifies postbacks signed with the
// configured api key before passing them to fn.
func (p *PagarMe) Postback(fn postback.Func) *postback.Handler {
	return postback.NewHandler(p.cfg.APIKey, fn, p.logger)
}

// Sender exposes the underlying transport so custom requests can be sent.
func (p *PagarMe) Sender() request.Sender {
	return p.transport
}
