// Package dialogue implements the order-taking conversation logic: slot
// filling, order accumulation, pricing with promotions, and the bounded
// fallback loop.
package dialogue

import "foodchat/internal/models"

// Slot keys understood by the conversation state
const (
	SlotDish     = "dish"
	SlotQuantity = "quantity"
)

// ConversationState holds everything the dialogue remembers about one
// conversation. It is owned by exactly one session; turns within a session
// are processed sequentially, so no locking happens here.
type ConversationState struct {
	dish     string
	quantity string

	// OrderList is the accumulated order. Lines are append-only; the
	// whole list is dropped on confirm, cancel, or session reset.
	OrderList []models.OrderLine

	// FallbackCount is the number of consecutive misunderstood turns.
	FallbackCount int
}

// NewConversationState creates an empty conversation state
func NewConversationState() *ConversationState {
	return &ConversationState{}
}

// Slot returns the value stored under key, or the empty string when the
// key is unset or unknown
func (s *ConversationState) Slot(key string) string {
	switch key {
	case SlotDish:
		return s.dish
	case SlotQuantity:
		return s.quantity
	default:
		return ""
	}
}

// SetSlot stores value under key. Unknown keys are ignored.
func (s *ConversationState) SetSlot(key, value string) {
	switch key {
	case SlotDish:
		s.dish = value
	case SlotQuantity:
		s.quantity = value
	}
}

// ClearSlot resets the value stored under key
func (s *ConversationState) ClearSlot(key string) {
	s.SetSlot(key, "")
}

// AppendLine appends a line to the order list
func (s *ConversationState) AppendLine(line models.OrderLine) {
	s.OrderList = append(s.OrderList, line)
}

// ClearOrderSession resets the dish and quantity slots, the order list and
// the fallback counter in one step. There is no observable intermediate
// state: the caller holds the session for the whole turn.
func (s *ConversationState) ClearOrderSession() {
	s.dish = ""
	s.quantity = ""
	s.OrderList = nil
	s.FallbackCount = 0
}
