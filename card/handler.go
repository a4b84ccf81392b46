package card

import (
	"context"
	"fmt"

	"github.com/cloudson/pagarme-go/request"
	"go.uber.org/zap"
)

// Handler runs card requests against the API.
type Handler struct {
	sender request.Sender
	logger *zap.Logger
}

// NewHandler creates a card handler sending through sender.
func NewHandler(sender request.Sender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{sender: sender, logger: logger}
}

// Create stores a card from its raw data.
func (h *Handler) Create(ctx context.Context, number, holderName, expirationDate, cvv string) (*Info, error) {
	info, err := h.send(ctx, NewCardCreate(number, holderName, expirationDate, cvv))
	if err != nil {
		return nil, fmt.Errorf("create card failed: %w", err)
	}

	h.logger.Info("card created",
		zap.Int("card_id", info.ID),
		zap.String("brand", info.Brand),
		zap.String("last_digits", info.LastDigits),
	)

	return info, nil
}

// CreateFromHash stores a card from a card_hash.
func (h *Handler) CreateFromHash(ctx context.Context, hash string) (*Info, error) {
	info, err := h.send(ctx, NewCardCreateFromHash(hash))
	if err != nil {
		return nil, fmt.Errorf("create card from hash failed: %w", err)
	}

	h.logger.Info("card created from hash", zap.Int("card_id", info.ID))

	return info, nil
}

// Get retrieves a stored card.
func (h *Handler) Get(ctx context.Context, id int) (*Info, error) {
	info, err := h.send(ctx, NewCardGet(id))
	if err != nil {
		return nil, fmt.Errorf("get card %d failed: %w", id, err)
	}

	return info, nil
}

// HashKey fetches a public key for building card hashes locally.
func (h *Handler) HashKey(ctx context.Context, encryptionKey string) (*HashKey, error) {
	if encryptionKey == "" {
		return nil, ErrMissingEncryptionKey
	}

	var key HashKey
	if err := h.sender.Send(ctx, NewCardHashKeyGet(encryptionKey), &key); err != nil {
		return nil, fmt.Errorf("get card hash key failed: %w", err)
	}

	h.logger.Debug("card hash key retrieved", zap.Int("key_id", key.ID))

	return &key, nil
}

// Hash encrypts raw card data into a card_hash and returns it as a Card, so
// the card number never reaches the API in clear text.
func (h *Handler) Hash(ctx context.Context, encryptionKey, number, holderName, expirationDate, cvv string) (Card, error) {
	key, err := h.HashKey(ctx, encryptionKey)
	if err != nil {
		return Card{}, err
	}

	hash, err := key.Encrypt(number, holderName, expirationDate, cvv)
	if err != nil {
		return Card{}, err
	}

	return ByHash(hash), nil
}

func (h *Handler) send(ctx context.Context, req request.Request) (*Info, error) {
	var info Info
	if err := h.sender.Send(ctx, req, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
