package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudson/pagarme-go/card"
	"github.com/cloudson/pagarme-go/customer"
	"github.com/cloudson/pagarme-go/plan"
	"github.com/cloudson/pagarme-go/request"
	"go.uber.org/zap"
)

// ErrCardNotIdentified is returned when a card subscription is requested with
// a card that carries neither an id nor a hash.
var ErrCardNotIdentified = errors.New("card has neither id nor hash")

// Handler runs subscription requests against the API.
type Handler struct {
	sender request.Sender
	logger *zap.Logger
}

// NewHandler creates a subscription handler sending through sender.
func NewHandler(sender request.Sender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{sender: sender, logger: logger}
}

// CreateCardSubscription subscribes cust to p, charging c.
func (h *Handler) CreateCardSubscription(ctx context.Context, p plan.Plan, c card.Card, cust customer.Customer, postbackURL *string, metadata map[string]string) (*Subscription, error) {
	if c.IsZero() {
		return nil, ErrCardNotIdentified
	}

	h.logger.Info("creating card subscription",
		zap.Int("plan_id", p.ID),
		zap.Stringer("card", c),
		zap.String("customer_email", cust.Email),
	)

	sub, err := h.send(ctx, NewCardSubscriptionCreate(p, c, cust, postbackURL, metadata))
	if err != nil {
		return nil, fmt.Errorf("create card subscription failed: %w", err)
	}

	h.logger.Info("subscription created successfully",
		zap.Int("subscription_id", sub.ID),
		zap.String("status", string(sub.Status)),
	)

	return sub, nil
}

// CreateBoletoSubscription subscribes cust to p, paying by boleto.
func (h *Handler) CreateBoletoSubscription(ctx context.Context, p plan.Plan, cust customer.Customer, postbackURL *string, metadata map[string]string) (*Subscription, error) {
	h.logger.Info("creating boleto subscription",
		zap.Int("plan_id", p.ID),
		zap.String("customer_email", cust.Email),
	)

	sub, err := h.send(ctx, NewBoletoSubscriptionCreate(p, cust, postbackURL, metadata))
	if err != nil {
		return nil, fmt.Errorf("create boleto subscription failed: %w", err)
	}

	h.logger.Info("subscription created successfully",
		zap.Int("subscription_id", sub.ID),
		zap.String("status", string(sub.Status)),
	)

	return sub, nil
}

// Get retrieves a subscription by id.
func (h *Handler) Get(ctx context.Context, id int) (*Subscription, error) {
	sub, err := h.send(ctx, NewSubscriptionGet(id))
	if err != nil {
		return nil, fmt.Errorf("get subscription %d failed: %w", id, err)
	}

	h.logger.Debug("subscription details retrieved",
		zap.Int("subscription_id", sub.ID),
		zap.String("status", string(sub.Status)),
	)

	return sub, nil
}

// Cancel stops a subscription immediately.
func (h *Handler) Cancel(ctx context.Context, id int) (*Subscription, error) {
	sub, err := h.send(ctx, NewSubscriptionCancel(id))
	if err != nil {
		h.logger.Error("failed to cancel subscription",
			zap.Int("subscription_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("cancel subscription %d failed: %w", id, err)
	}

	h.logger.Info("subscription cancelled", zap.Int("subscription_id", id))

	return sub, nil
}

func (h *Handler) send(ctx context.Context, req request.Request) (*Subscription, error) {
	var sub Subscription
	if err := h.sender.Send(ctx, req, &sub); err != nil {
		return nil, err
	}

	return &sub, nil
}
