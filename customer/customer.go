package customer

// Customer is the buyer attached to a subscription or transaction. BornAt is
// sent exactly as given, e.g. "12031990".
type Customer struct {
	ID             int     `json:"id,omitempty"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	DocumentNumber string  `json:"document_number"`
	BornAt         string  `json:"born_at"`
	Gender         string  `json:"gender"`
	Address        Address `json:"address"`
	Phone          Phone   `json:"phone"`
}

// Address is the customer billing address.
type Address struct {
	Street       string `json:"street"`
	StreetNumber string `json:"street_number"`
	Neighborhood string `json:"neighborhood"`
	Zipcode      string `json:"zipcode"`
}

// Phone is a Brazilian phone number split into area code and number.
type Phone struct {
	DDD    string `json:"ddd"`
	Number string `json:"number"`
}

// Payload returns the customer as the nested map the API expects inside
// subscription and transaction bodies.
func (c Customer) Payload() map[string]any {
	return map[string]any{
		"name":            c.Name,
		"email":           c.Email,
		"document_number": c.DocumentNumber,
		"address":         c.Address.Payload(),
		"phone":           c.Phone.Payload(),
		"born_at":         c.BornAt,
		"gender":          c.Gender,
	}
}

// Payload returns the address as sent under customer.address.
func (a Address) Payload() map[string]any {
	return map[string]any{
		"street":        a.Street,
		"street_number": a.StreetNumber,
		"neighborhood":  a.Neighborhood,
		"zipcode":       a.Zipcode,
	}
}

// Payload returns the phone as sent under customer.phone.
func (p Phone) Payload() map[string]any {
	return map[string]any{
		"ddd":    p.DDD,
		"number": p.Number,
	}
}
