package card

import "fmt"

type kind uint8

const (
	kindNone kind = iota
	kindID
	kindHash
)

// Card identifies the card a charge is made against, either by the id of a
// card already stored at Pagar.me or by a one-time card_hash generated by the
// client-side encryption library. The zero value identifies no card.
type Card struct {
	kind kind
	id   int
	hash string
}

// ByID references a card already stored at Pagar.me.
func ByID(id int) Card {
	return Card{kind: kindID, id: id}
}

// ByHash references a card through a one-time card_hash.
func ByHash(hash string) Card {
	return Card{kind: kindHash, hash: hash}
}

// ID returns the card id and whether the card was built with ByID.
func (c Card) ID() (int, bool) {
	return c.id, c.kind == kindID
}

// Hash returns the card hash and whether the card was built with ByHash.
func (c Card) Hash() (string, bool) {
	return c.hash, c.kind == kindHash
}

// IsZero reports whether c identifies no card.
func (c Card) IsZero() bool {
	return c.kind == kindNone
}

// Fields returns the single key that identifies the card in a request body:
// card_id or card_hash. It is empty for the zero Card.
func (c Card) Fields() map[string]any {
	switch c.kind {
	case kindID:
		return map[string]any{"card_id": c.id}
	case kindHash:
		return map[string]any{"card_hash": c.hash}
	default:
		return map[string]any{}
	}
}

// String prints the id but never the hash.
func (c Card) String() string {
	switch c.kind {
	case kindID:
		return fmt.Sprintf("card(id=%d)", c.id)
	case kindHash:
		return "card(hash)"
	default:
		return "card(none)"
	}
}
