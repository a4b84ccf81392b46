package card

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"

	"github.com/cloudson/pagarme-go/request"
	"github.com/go-openapi/strfmt"
)

var _ request.Request = (*CardHashKeyGet)(nil)

// ErrMissingEncryptionKey is returned when a card hash is requested without an encryption key.
var ErrMissingEncryptionKey = errors.New("pagarme encryption key is required")

// CardHashKeyGet fetches a one-time RSA public key used to build a card_hash.
type CardHashKeyGet struct {
	encryptionKey string
}

// NewCardHashKeyGet builds a GET transactions/card_hash_key request.
func NewCardHashKeyGet(encryptionKey string) *CardHashKeyGet {
	return &CardHashKeyGet{encryptionKey: encryptionKey}
}

// Payload sends the encryption key as a query parameter.
func (r *CardHashKeyGet) Payload() map[string]any {
	return map[string]any{"encryption_key": r.encryptionKey}
}

func (r *CardHashKeyGet) Path() string   { return "transactions/card_hash_key" }
func (r *CardHashKeyGet) Method() string { return request.HTTPGet }

// HashKey is the response of CardHashKeyGet.
type HashKey struct {
	ID          int             `json:"id"`
	PublicKey   string          `json:"public_key"`
	IP          string          `json:"ip"`
	DateCreated strfmt.DateTime `json:"date_created"`
}

// Encrypt builds a card_hash for the given card data: the key id, an
// underscore, and the base64 RSA encryption of the card fields.
func (k HashKey) Encrypt(number, holderName, expirationDate, cvv string) (string, error) {
	block, _ := pem.Decode([]byte(k.PublicKey))
	if block == nil {
		return "", errors.New("card hash key: public key is not PEM encoded")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("card hash key: parse public key: %w", err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return "", fmt.Errorf("card hash key: unexpected key type %T", parsed)
	}

	fields := url.Values{}
	fields.Set("card_number", number)
	fields.Set("card_holder_name", holderName)
	fields.Set("card_expiration_date", expirationDate)
	fields.Set("card_cvv", cvv)

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(fields.Encode()))
	if err != nil {
		return "", fmt.Errorf("card hash key: encrypt: %w", err)
	}

	return fmt.Sprintf("%d_%s", k.ID, base64.StdEncoding.EncodeToString(encrypted)), nil
}
