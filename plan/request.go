package plan

import (
	"fmt"

	"github.com/cloudson/pagarme-go/request"
)

var (
	_ request.Request = (*PlanCreate)(nil)
	_ request.Request = (*PlanGet)(nil)
)

const path = "plans"

// PlanCreate registers a new plan. Zero-valued optional fields are left out
// so the API applies its own defaults.
type PlanCreate struct {
	amount         int
	days           int
	name           string
	trialDays      int
	paymentMethods []string
	charges        *int
	installments   int
}

// NewPlanCreate builds a POST plans request. A nil charges means unlimited.
func NewPlanCreate(amount, days int, name string, trialDays int, paymentMethods []string, charges *int, installments int) *PlanCreate {
	return &PlanCreate{
		amount:         amount,
		days:           days,
		name:           name,
		trialDays:      trialDays,
		paymentMethods: paymentMethods,
		charges:        charges,
		installments:   installments,
	}
}

// Payload omits optional fields left at their zero value.
func (r *PlanCreate) Payload() map[string]any {
	payload := map[string]any{
		"amount": r.amount,
		"days":   r.days,
		"name":   r.name,
	}

	if r.trialDays > 0 {
		payload["trial_days"] = r.trialDays
	}
	if len(r.paymentMethods) > 0 {
		payload["payment_methods"] = r.paymentMethods
	}
	if r.charges != nil {
		payload["charges"] = *r.charges
	}
	if r.installments > 0 {
		payload["installments"] = r.installments
	}

	return payload
}

func (r *PlanCreate) Path() string   { return path }
func (r *PlanCreate) Method() string { return request.HTTPPost }

// PlanGet fetches a plan by id.
type PlanGet struct {
	id int
}

// NewPlanGet builds a GET plans/{id} request.
func NewPlanGet(id int) *PlanGet {
	return &PlanGet{id: id}
}

func (r *PlanGet) Payload() map[string]any { return map[string]any{} }
func (r *PlanGet) Path() string            { return fmt.Sprintf("%s/%d", path, r.id) }
func (r *PlanGet) Method() string          { return request.HTTPGet }
