package card

import "github.com/go-openapi/strfmt"

// Info is a card as stored and returned by the API.
type Info struct {
	Object         string          `json:"object"`
	ID             int             `json:"id"`
	DateCreated    strfmt.DateTime `json:"date_created"`
	DateUpdated    strfmt.DateTime `json:"date_updated"`
	Brand          string          `json:"brand"`
	HolderName     string          `json:"holder_name"`
	FirstDigits    string          `json:"first_digits"`
	LastDigits     string          `json:"last_digits"`
	Country        string          `json:"country"`
	Fingerprint    string          `json:"fingerprint"`
	Valid          bool            `json:"valid"`
	ExpirationDate string          `json:"expiration_date"`
}

// Card returns a reference to the stored card usable in other requests.
func (i Info) Card() Card {
	return ByID(i.ID)
}
