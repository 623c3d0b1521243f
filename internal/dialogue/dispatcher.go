package dialogue

import (
	"context"

	"foodchat/internal/catalog"
	"foodchat/internal/logger"
	"foodchat/internal/models"
)

// ConfidenceThreshold is the recognizer score below which a turn is
// treated as misunderstood rather than routed by its intent label
const ConfidenceThreshold = 0.6

// ConfirmedOrder carries the priced order of a confirmed purchase
type ConfirmedOrder struct {
	Lines     []models.OrderLine
	Total     int64
	Discount  int64
	Payable   int64
	Promotion string
}

// Result is the outcome of one turn: at most one outgoing message plus
// directives for the dialogue runtime
type Result struct {
	// Message is the reply text; empty means the turn produced none.
	Message string

	// RevertTurn tells the runtime to discard the triggering user turn.
	RevertTurn bool

	// Confirmed is set when the user confirmed a non-empty order. The
	// session is reset only after the runtime has handed the order off.
	Confirmed *ConfirmedOrder

	// SessionReset reports that the conversation state was reset.
	SessionReset bool
}

// Dispatcher routes one incoming turn to the right dialogue component
type Dispatcher struct {
	catalog     catalog.Gateway
	accumulator *Accumulator
	fallback    *FallbackController
	logger      *logger.Logger
}

// NewDispatcher creates a turn dispatcher
func NewDispatcher(gateway catalog.Gateway, maxFallbacks int, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		catalog:     gateway,
		accumulator: NewAccumulator(gateway),
		fallback:    NewFallbackController(maxFallbacks),
		logger:      log,
	}
}

// HandleTurn processes one turn against the conversation state and
// returns the reply plus runtime directives. Collaborator outages never
// escape: they become a generic service-busy reply with state untouched.
func (d *Dispatcher) HandleTurn(ctx context.Context, state *ConversationState, turn models.Turn, requestID string) Result {
	if d.misunderstood(turn) {
		return d.handleFallback(ctx, state, turn, requestID)
	}

	switch turn.Intent {
	case models.IntentShowMenu:
		return d.handleShowMenu(ctx, requestID)

	case models.IntentAddToOrder, models.IntentSpecificOrder:
		return d.handleAddToOrder(ctx, state, turn, requestID)

	case models.IntentShowOrder:
		return d.handleShowOrder(ctx, state, requestID)

	case models.IntentConfirmOrder:
		return d.handleConfirmOrder(ctx, state, requestID)

	case models.IntentCancelOrder:
		state.ClearOrderSession()
		return Result{Message: msgOrderCancelled, SessionReset: true}

	default:
		// Unknown intent labels land in the fallback loop too.
		return d.handleFallback(ctx, state, turn, requestID)
	}
}

// misunderstood reports whether the recognizer flagged the turn as
// low confidence
func (d *Dispatcher) misunderstood(turn models.Turn) bool {
	return turn.Confidence > 0 && turn.Confidence < ConfidenceThreshold
}

func (d *Dispatcher) handleShowMenu(ctx context.Context, requestID string) Result {
	dishes, err := d.catalog.ListDishes(ctx)
	if err != nil {
		d.logger.Error("catalog_unavailable", "Failed to list dishes", requestID, err, nil)
		return Result{Message: msgServiceBusy}
	}
	return Result{Message: msgMenu(dishes)}
}

func (d *Dispatcher) handleAddToOrder(ctx context.Context, state *ConversationState, turn models.Turn, requestID string) Result {
	message, err := d.accumulator.AddToOrder(ctx, state, turn.Entities)
	if err != nil {
		d.logger.Error("catalog_unavailable", "Failed to resolve dish", requestID, err, nil)
	}
	return Result{Message: message}
}

func (d *Dispatcher) handleShowOrder(ctx context.Context, state *ConversationState, requestID string) Result {
	if len(state.OrderList) == 0 {
		return Result{Message: msgEmptyOrder}
	}

	rules, err := d.catalog.ListPromotions(ctx)
	if err != nil {
		d.logger.Error("catalog_unavailable", "Failed to list promotions", requestID, err, nil)
		return Result{Message: msgServiceBusy}
	}

	return Result{Message: Summarize(state.OrderList, rules)}
}

func (d *Dispatcher) handleConfirmOrder(ctx context.Context, state *ConversationState, requestID string) Result {
	if len(state.OrderList) == 0 {
		return Result{Message: msgNothingToConfirm}
	}

	rules, err := d.catalog.ListPromotions(ctx)
	if err != nil {
		d.logger.Error("catalog_unavailable", "Failed to list promotions", requestID, err, nil)
		return Result{Message: msgServiceBusy}
	}

	receipt := PriceOrder(state.OrderList, rules)
	confirmed := &ConfirmedOrder{
		Lines:    receipt.Lines,
		Total:    receipt.Total,
		Discount: receipt.Discount,
		Payable:  receipt.Payable,
	}
	if receipt.Promotion != nil {
		confirmed.Promotion = receipt.Promotion.Description
	}

	return Result{Message: msgOrderConfirmed, Confirmed: confirmed}
}

func (d *Dispatcher) handleFallback(ctx context.Context, state *ConversationState, turn models.Turn, requestID string) Result {
	outcome, message := d.fallback.Handle(state, turn)

	switch outcome {
	case FallbackPassThrough:
		// The turn carries usable order details; handle it as an
		// ordering turn instead of counting it against the user.
		return d.handleAddToOrder(ctx, state, turn, requestID)

	case FallbackExhausted:
		d.logger.Info("fallback_exhausted", "Giving up on conversation turn", requestID, map[string]interface{}{
			"intent": turn.Intent,
		})
		return Result{Message: message, RevertTurn: true}

	default:
		return Result{Message: message}
	}
}
