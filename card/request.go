package card

import (
	"fmt"

	"github.com/cloudson/pagarme-go/request"
)

var (
	_ request.Request = (*CardCreate)(nil)
	_ request.Request = (*CardCreateFromHash)(nil)
	_ request.Request = (*CardGet)(nil)
)

const path = "cards"

// CardCreate stores a card from its raw data.
type CardCreate struct {
	number         string
	holderName     string
	expirationDate string
	cvv            string
}

// NewCardCreate builds a POST cards request from raw card data.
func NewCardCreate(number, holderName, expirationDate, cvv string) *CardCreate {
	return &CardCreate{
		number:         number,
		holderName:     holderName,
		expirationDate: expirationDate,
		cvv:            cvv,
	}
}

// Payload returns the raw card fields.
func (r *CardCreate) Payload() map[string]any {
	return map[string]any{
		"card_number":          r.number,
		"holder_name":          r.holderName,
		"card_expiration_date": r.expirationDate,
		"card_cvv":             r.cvv,
	}
}

func (r *CardCreate) Path() string   { return path }
func (r *CardCreate) Method() string { return request.HTTPPost }

// CardCreateFromHash stores a card from a client-side generated card_hash.
type CardCreateFromHash struct {
	hash string
}

// NewCardCreateFromHash builds a POST cards request from a card_hash.
func NewCardCreateFromHash(hash string) *CardCreateFromHash {
	return &CardCreateFromHash{hash: hash}
}

func (r *CardCreateFromHash) Payload() map[string]any {
	return map[string]any{"card_hash": r.hash}
}

func (r *CardCreateFromHash) Path() string   { return path }
func (r *CardCreateFromHash) Method() string { return request.HTTPPost }

// CardGet fetches a stored card by id.
type CardGet struct {
	id int
}

// NewCardGet builds a GET cards/{id} request.
func NewCardGet(id int) *CardGet {
	return &CardGet{id: id}
}

func (r *CardGet) Payload() map[string]any { return map[string]any{} }
func (r *CardGet) Path() string            { return fmt.Sprintf("%s/%d", path, r.id) }
func (r *CardGet) Method() string          { return request.HTTPGet }
