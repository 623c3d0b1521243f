package dialogue

import "foodchat/internal/models"

// DefaultMaxFallbacks is the number of consecutive misunderstood turns
// tolerated before the loop resets
const DefaultMaxFallbacks = 3

// FallbackOutcome is the decision the controller takes for one
// misunderstood turn
type FallbackOutcome int

const (
	// FallbackPassThrough means the turn was misrouted here: it carries
	// usable order details and must be handled by the order components.
	FallbackPassThrough FallbackOutcome = iota

	// FallbackReprompt means the user is asked to rephrase.
	FallbackReprompt

	// FallbackExhausted means the loop gives up: the counter is reset
	// and the triggering turn must be reverted.
	FallbackExhausted
)

// FallbackController tracks consecutive misunderstood turns per
// conversation and bounds the retry loop
type FallbackController struct {
	max int
}

// NewFallbackController creates a controller that exhausts after max
// consecutive misunderstood turns
func NewFallbackController(max int) *FallbackController {
	if max <= 0 {
		max = DefaultMaxFallbacks
	}
	return &FallbackController{max: max}
}

// Handle processes one unrecognized or low-confidence turn and returns
// the outcome plus the reply text, which is empty for a pass-through.
func (f *FallbackController) Handle(state *ConversationState, turn models.Turn) (FallbackOutcome, string) {
	if state.FallbackCount >= f.max {
		state.FallbackCount = 0
		return FallbackExhausted, msgFallbackExhausted
	}

	// A specific-order intent that still carries entities is a false
	// trigger: upstream routing misclassified the turn, not the user.
	if turn.Intent == models.IntentSpecificOrder && hasOrderEntity(turn.Entities) {
		return FallbackPassThrough, ""
	}

	state.FallbackCount++
	return FallbackReprompt, msgFallback
}

func hasOrderEntity(entities []models.ExtractedEntity) bool {
	for _, entity := range entities {
		if entity.Kind == models.EntityDish || entity.Kind == models.EntityQuantity {
			return true
		}
	}
	return false
}
