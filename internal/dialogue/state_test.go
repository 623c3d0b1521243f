package dialogue

import (
	"testing"

	"foodchat/internal/models"
)

func TestConversationState_Slots(t *testing.T) {
	state := NewConversationState()

	if got := state.Slot(SlotDish); got != "" {
		t.Errorf("expected empty dish slot, got %q", got)
	}
	if got := state.Slot("unknown"); got != "" {
		t.Errorf("expected empty value for unknown key, got %q", got)
	}

	state.SetSlot(SlotDish, "phở bò")
	state.SetSlot(SlotQuantity, "2")
	state.SetSlot("unknown", "ignored")

	if got := state.Slot(SlotDish); got != "phở bò" {
		t.Errorf("expected dish slot set, got %q", got)
	}
	if got := state.Slot(SlotQuantity); got != "2" {
		t.Errorf("expected quantity slot set, got %q", got)
	}

	state.ClearSlot(SlotQuantity)
	if got := state.Slot(SlotQuantity); got != "" {
		t.Errorf("expected quantity slot cleared, got %q", got)
	}
}

func TestConversationState_ClearOrderSession(t *testing.T) {
	state := NewConversationState()
	state.SetSlot(SlotDish, "phở bò")
	state.SetSlot(SlotQuantity, "2")
	state.AppendLine(models.OrderLine{Dish: "phở bò", Quantity: 2, UnitPrice: 50000})
	state.FallbackCount = 2

	state.ClearOrderSession()

	if state.Slot(SlotDish) != "" || state.Slot(SlotQuantity) != "" {
		t.Error("expected slots cleared")
	}
	if len(state.OrderList) != 0 {
		t.Errorf("expected empty order list, got %d lines", len(state.OrderList))
	}
	if state.FallbackCount != 0 {
		t.Errorf("expected fallback count 0, got %d", state.FallbackCount)
	}
}
