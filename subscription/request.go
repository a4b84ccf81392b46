package subscription

import (
	"fmt"

	"github.com/cloudson/pagarme-go/card"
	"github.com/cloudson/pagarme-go/customer"
	"github.com/cloudson/pagarme-go/plan"
	"github.com/cloudson/pagarme-go/request"
	"github.com/samber/lo"
)

var (
	_ request.Request = (*CardSubscriptionCreate)(nil)
	_ request.Request = (*BoletoSubscriptionCreate)(nil)
	_ request.Request = (*SubscriptionGet)(nil)
	_ request.Request = (*SubscriptionCancel)(nil)
)

const (
	path = "subscriptions"

	PaymentMethodCreditCard = "credit_card"
	PaymentMethodBoleto     = "boleto"
)

// CardSubscriptionCreate subscribes a customer to a plan, charging a credit
// card. The card is referenced by card_id or card_hash depending on how it
// was built; a zero card.Card contributes no key and the API will reject the
// request.
type CardSubscriptionCreate struct {
	plan        plan.Plan
	card        card.Card
	customer    customer.Customer
	postbackURL *string
	metadata    map[string]string
}

// NewCardSubscriptionCreate builds the request; postbackURL may be nil.
func NewCardSubscriptionCreate(p plan.Plan, c card.Card, cust customer.Customer, postbackURL *string, metadata map[string]string) *CardSubscriptionCreate {
	return &CardSubscriptionCreate{
		plan:        p,
		card:        c,
		customer:    cust,
		postbackURL: postbackURL,
		metadata:    metadata,
	}
}

// Payload carries card_id or card_hash depending on how the card was identified.
func (r *CardSubscriptionCreate) Payload() map[string]any {
	payload := basePayload(r.plan, r.customer, r.postbackURL, r.metadata, PaymentMethodCreditCard)

	return lo.Assign(payload, r.card.Fields())
}

func (r *CardSubscriptionCreate) Path() string   { return path }
func (r *CardSubscriptionCreate) Method() string { return request.HTTPPost }

// Card returns the card the request will charge.
func (r *CardSubscriptionCreate) Card() card.Card { return r.card }

// BoletoSubscriptionCreate subscribes a customer to a plan paid by boleto.
type BoletoSubscriptionCreate struct {
	plan        plan.Plan
	customer    customer.Customer
	postbackURL *string
	metadata    map[string]string
}

// NewBoletoSubscriptionCreate builds a POST subscriptions request paid by boleto.
func NewBoletoSubscriptionCreate(p plan.Plan, cust customer.Customer, postbackURL *string, metadata map[string]string) *BoletoSubscriptionCreate {
	return &BoletoSubscriptionCreate{
		plan:        p,
		customer:    cust,
		postbackURL: postbackURL,
		metadata:    metadata,
	}
}

func (r *BoletoSubscriptionCreate) Payload() map[string]any {
	return basePayload(r.plan, r.customer, r.postbackURL, r.metadata, PaymentMethodBoleto)
}

func (r *BoletoSubscriptionCreate) Path() string   { return path }
func (r *BoletoSubscriptionCreate) Method() string { return request.HTTPPost }

func basePayload(p plan.Plan, cust customer.Customer, postbackURL *string, metadata map[string]string, method string) map[string]any {
	payload := map[string]any{
		"plan_id":        p.ID,
		"payment_method": method,
		"metadata":       metadata,
		"customer":       cust.Payload(),
	}

	if postbackURL != nil {
		payload["postback_url"] = *postbackURL
	}

	return payload
}

// SubscriptionGet fetches a subscription by id.
type SubscriptionGet struct {
	id int
}

// NewSubscriptionGet builds a GET subscriptions/{id} request.
func NewSubscriptionGet(id int) *SubscriptionGet {
	return &SubscriptionGet{id: id}
}

func (r *SubscriptionGet) Payload() map[string]any { return map[string]any{} }
func (r *SubscriptionGet) Path() string            { return fmt.Sprintf("%s/%d", path, r.id) }
func (r *SubscriptionGet) Method() string          { return request.HTTPGet }

// SubscriptionCancel cancels a subscription.
type SubscriptionCancel struct {
	id int
}

// NewSubscriptionCancel builds a POST subscriptions/{id}/cancel request.
func NewSubscriptionCancel(id int) *SubscriptionCancel {
	return &SubscriptionCancel{id: id}
}

func (r *SubscriptionCancel) Payload() map[string]any { return map[string]any{} }
func (r *SubscriptionCancel) Path() string            { return fmt.Sprintf("%s/%d/cancel", path, r.id) }
func (r *SubscriptionCancel) Method() string          { return request.HTTPPost }
