package subscription

import (
	"github.com/cloudson/pagarme-go/customer"
	"github.com/cloudson/pagarme-go/plan"
	"github.com/go-openapi/strfmt"
)

// Status is the lifecycle state of a subscription.
type Status string

const (
	StatusTrialing       Status = "trialing"
	StatusPaid           Status = "paid"
	StatusPendingPayment Status = "pending_payment"
	StatusUnpaid         Status = "unpaid"
	StatusCanceled       Status = "canceled"
	StatusEnded          Status = "ended"
)

// Subscription is the subscription object returned by the API.
type Subscription struct {
	Object             string             `json:"object"`
	ID                 int                `json:"id"`
	Plan               plan.Plan          `json:"plan"`
	Status             Status             `json:"status"`
	PaymentMethod      string             `json:"payment_method"`
	PostbackURL        *string            `json:"postback_url"`
	CardBrand          string             `json:"card_brand"`
	CardLastDigits     string             `json:"card_last_digits"`
	CurrentPeriodStart *strfmt.DateTime   `json:"current_period_start"`
	CurrentPeriodEnd   *strfmt.DateTime   `json:"current_period_end"`
	Charges            int                `json:"charges"`
	DateCreated        strfmt.DateTime    `json:"date_created"`
	Customer           *customer.Customer `json:"customer"`
	Metadata           map[string]string  `json:"metadata"`
	ManageURL          string             `json:"manage_url"`
}

// Active reports whether the subscription is still being charged.
func (s Subscription) Active() bool {
	switch s.Status {
	case StatusTrialing, StatusPaid, StatusPendingPayment:
		return true
	default:
		return false
	}
}
