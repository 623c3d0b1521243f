package models

import "fmt"

// Intent labels produced by the upstream recognizer.
const (
	IntentShowMenu      = "show_menu"
	IntentAddToOrder    = "add_to_order"
	IntentSpecificOrder = "specific_order"
	IntentShowOrder     = "show_order"
	IntentConfirmOrder  = "confirm_order"
	IntentCancelOrder   = "cancel_order"
)

// EntityKind identifies the type of an extracted entity
type EntityKind string

const (
	EntityDish     EntityKind = "dish"
	EntityQuantity EntityKind = "quantity"
)

// ExtractedEntity is a single typed entity extracted from one user turn.
// Entities live only for the turn that produced them.
type ExtractedEntity struct {
	Kind  EntityKind `json:"entity"`
	Value string     `json:"value"`
}

// Turn is one user turn as delivered by the dialogue runtime.
// Confidence is the recognizer's score for the intent label; zero means
// the recognizer did not report one.
type Turn struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   []ExtractedEntity `json:"entities"`
	Utterance  string            `json:"message"`
}

// ChatRequest represents the request body of POST /chat
type ChatRequest struct {
	SessionID  string            `json:"session_id,omitempty"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence,omitempty"`
	Message    string            `json:"message,omitempty"`
	Entities   []ExtractedEntity `json:"entities,omitempty"`
}

// BotResponse is a single outgoing message
type BotResponse struct {
	Text string `json:"text"`
}

// ChatResponse represents the response body of POST /chat
type ChatResponse struct {
	Responses []BotResponse `json:"responses"`
	SessionID string        `json:"session_id"`
}

// Validate validates the chat request
func (req *ChatRequest) Validate() error {
	if req.Intent == "" {
		return fmt.Errorf("intent is required")
	}
	if len(req.Intent) > 100 {
		return fmt.Errorf("intent must not exceed 100 characters")
	}
	if len(req.SessionID) > 64 {
		return fmt.Errorf("session_id must not exceed 64 characters")
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return fmt.Errorf("confidence must be between 0 and 1")
	}
	for i, entity := range req.Entities {
		switch entity.Kind {
		case EntityDish, EntityQuantity:
		default:
			return fmt.Errorf("entities[%d].entity must be one of: dish, quantity", i)
		}
		if entity.Value == "" {
			return fmt.Errorf("entities[%d].value is required", i)
		}
	}
	return nil
}

// Turn converts the request into a dialogue turn
func (req *ChatRequest) Turn() Turn {
	return Turn{
		Intent:     req.Intent,
		Confidence: req.Confidence,
		Entities:   req.Entities,
		Utterance:  req.Message,
	}
}
