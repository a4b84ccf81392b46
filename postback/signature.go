package postback

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strings"
)

// SignatureHeader carries the postback HMAC.
const SignatureHeader = "X-Hub-Signature"

// ErrInvalidSignature is returned when a postback signature does not match the body.
var ErrInvalidSignature = errors.New("invalid postback signature")

// Sign returns the X-Hub-Signature value Pagar.me sends with body.
func Sign(body []byte, apiKey string) string {
	mac := hmac.New(sha1.New, []byte(apiKey))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}

// ValidateSignature reports whether signature, in "sha1=<hex>" form, matches
// body signed with apiKey.
func ValidateSignature(body []byte, signature, apiKey string) bool {
	if apiKey == "" || !strings.HasPrefix(signature, "sha1=") {
		return false
	}

	return hmac.Equal([]byte(signature), []byte(Sign(body, apiKey)))
}
