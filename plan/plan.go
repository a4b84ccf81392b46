package plan

import "github.com/go-openapi/strfmt"

// Plan is a recurring billing plan. Amount is in cents.
type Plan struct {
	Object         string          `json:"object,omitempty"`
	ID             int             `json:"id"`
	Amount         int             `json:"amount"`
	Days           int             `json:"days"`
	Name           string          `json:"name"`
	TrialDays      int             `json:"trial_days"`
	DateCreated    strfmt.DateTime `json:"date_created"`
	PaymentMethods []string        `json:"payment_methods"`
	Color          string          `json:"color,omitempty"`
	Charges        *int            `json:"charges"`
	Installments   int             `json:"installments"`
}
