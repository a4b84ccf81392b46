package plan

import (
	"context"
	"fmt"

	"github.com/cloudson/pagarme-go/request"
	"go.uber.org/zap"
)

// Handler runs plan requests against the API.
type Handler struct {
	sender request.Sender
	logger *zap.Logger
}

// NewHandler creates a plan handler sending through sender.
func NewHandler(sender request.Sender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{sender: sender, logger: logger}
}

// Create registers a new plan.
func (h *Handler) Create(ctx context.Context, req *PlanCreate) (*Plan, error) {
	var p Plan
	if err := h.sender.Send(ctx, req, &p); err != nil {
		return nil, fmt.Errorf("create plan failed: %w", err)
	}

	h.logger.Info("plan created",
		zap.Int("plan_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("amount", p.Amount),
	)

	return &p, nil
}

// Get retrieves a plan by id.
func (h *Handler) Get(ctx context.Context, id int) (*Plan, error) {
	var p Plan
	if err := h.sender.Send(ctx, NewPlanGet(id), &p); err != nil {
		return nil, fmt.Errorf("get plan %d failed: %w", id, err)
	}

	return &p, nil
}
