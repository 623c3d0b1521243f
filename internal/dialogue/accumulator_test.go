package dialogue

import (
	"context"
	"errors"
	"testing"

	"foodchat/internal/catalog"
	"foodchat/internal/models"
)

func testGateway() *catalog.Static {
	return catalog.NewStatic(catalog.DefaultMenu(), []models.PromotionRule{
		{MinTotal: 90000, DiscountPercent: 10, Description: "Giảm 10% cho đơn hàng từ 90000₫"},
	})
}

func dishEntity(value string) models.ExtractedEntity {
	return models.ExtractedEntity{Kind: models.EntityDish, Value: value}
}

func quantityEntity(value string) models.ExtractedEntity {
	return models.ExtractedEntity{Kind: models.EntityQuantity, Value: value}
}

func TestAddToOrder_AppendsLine(t *testing.T) {
	acc := NewAccumulator(testGateway())
	state := NewConversationState()

	msg, err := acc.AddToOrder(context.Background(), state, []models.ExtractedEntity{
		dishEntity("phở bò"), quantityEntity("2"),
	})
	if err != nil {
		t.Fatalf("AddToOrder returned error: %v", err)
	}
	if msg != "Đã thêm 2 phần phở bò vào đơn hàng." {
		t.Errorf("unexpected message: %q", msg)
	}
	if len(state.OrderList) != 1 {
		t.Fatalf("expected 1 order line, got %d", len(state.OrderList))
	}
	line := state.OrderList[0]
	if line.Dish != "phở bò" || line.Quantity != 2 || line.UnitPrice != 50000 {
		t.Errorf("unexpected line: %+v", line)
	}
	if state.Slot(SlotDish) != "" || state.Slot(SlotQuantity) != "" {
		t.Errorf("expected both slots cleared, got dish=%q quantity=%q",
			state.Slot(SlotDish), state.Slot(SlotQuantity))
	}
}

func TestAddToOrder_CanonicalCasing(t *testing.T) {
	acc := NewAccumulator(testGateway())
	state := NewConversationState()

	if _, err := acc.AddToOrder(context.Background(), state, []models.ExtractedEntity{
		dishEntity("Phở Bò"), quantityEntity("1"),
	}); err != nil {
		t.Fatalf("AddToOrder returned error: %v", err)
	}
	if len(state.OrderList) != 1 {
		t.Fatalf("expected 1 order line, got %d", len(state.OrderList))
	}
	// The stored name is the catalog's, not the user's casing.
	if state.OrderList[0].Dish != "phở bò" {
		t.Errorf("expected canonical name %q, got %q", "phở bò", state.OrderList[0].Dish)
	}
}

func TestAddToOrder_InvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
	}{
		{name: "not a number", quantity: "abc"},
		{name: "zero", quantity: "0"},
		{name: "negative", quantity: "-3"},
		{name: "phrase", quantity: "2 phần"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccumulator(testGateway())
			state := NewConversationState()

			msg, err := acc.AddToOrder(context.Background(), state, []models.ExtractedEntity{
				dishEntity("phở bò"), quantityEntity(tt.quantity),
			})
			if err != nil {
				t.Fatalf("AddToOrder returned error: %v", err)
			}
			if msg != msgInvalidQuantity {
				t.Errorf("unexpected message: %q", msg)
			}
			if len(state.OrderList) != 0 {
				t.Errorf("expected no order line, got %d", len(state.OrderList))
			}
			if state.Slot(SlotDish) != "phở bò" {
				t.Errorf("expected dish slot preserved, got %q", state.Slot(SlotDish))
			}
			if state.Slot(SlotQuantity) != "" {
				t.Errorf("expected quantity slot cleared, got %q", state.Slot(SlotQuantity))
			}
		})
	}
}

func TestAddToOrder_DishNotFound(t *testing.T) {
	acc := NewAccumulator(testGateway())
	state := NewConversationState()

	msg, err := acc.AddToOrder(context.Background(), state, []models.ExtractedEntity{
		dishEntity("sushi"), quantityEntity("2"),
	})
	if err != nil {
		t.Fatalf("AddToOrder returned error: %v", err)
	}
	if msg != msgDishNotFound("sushi") {
		t.Errorf("unexpected message: %q", msg)
	}
	if state.Slot(SlotDish) != "" {
		t.Errorf("expected dish slot cleared, got %q", state.Slot(SlotDish))
	}
	if state.Slot(SlotQuantity) != "2" {
		t.Errorf("expected quantity slot preserved, got %q", state.Slot(SlotQuantity))
	}
	if len(state.OrderList) != 0 {
		t.Errorf("expected no order line, got %d", len(state.OrderList))
	}
}

func TestAddToOrder_DishOnlyAsksForQuantity(t *testing.T) {
	acc := NewAccumulator(testGateway())
	state := NewConversationState()

	msg, err := acc.AddToOrder(context.Background(), state, []models.ExtractedEntity{
		dishEntity("bún chả"),
	})
	if err != nil {
		t.Fatalf("AddToOrder returned error: %v", err)
	}
	if msg != msgAskQuantity("bún chả") {
		t.Errorf("unexpected message: %q", msg)
	}
	if state.Slot(SlotDish) != "bún chả" {
		t.Errorf("expected dish slot set, got %q", state.Slot(SlotDish))
	}
}

func TestAddToOrder_NoEntitiesIsNoOp(t *testing.T) {
	acc := NewAccumulator(testGateway())
	state := NewConversationState()

	msg, err := acc.AddToOrder(context.Background(), state, nil)
	if err != nil {
		t.Fatalf("AddToOrder returned error: %v", err)
	}
	if msg != "" {
		t.Errorf("expected no message, got %q", msg)
	}
	if state.Slot(SlotDish) != "" || state.Slot(SlotQuantity) != "" || len(state.OrderList) != 0 {
		t.Error("expected state untouched")
	}
}

func TestAddToOrder_LatestTurnWins(t *testing.T) {
	acc := NewAccumulator(testGateway())
	state := NewConversationState()
	state.SetSlot(SlotDish, "trà sữa")

	// A fresh dish entity overrides the stored slot value.
	msg, err := acc.AddToOrder(context.Background(), state, []models.ExtractedEntity{
		dishEntity("cơm gà"), quantityEntity("1"),
	})
	if err != nil {
		t.Fatalf("AddToOrder returned error: %v", err)
	}
	if msg != "Đã thêm 1 phần cơm gà vào đơn hàng." {
		t.Errorf("unexpected message: %q", msg)
	}
	if state.OrderList[0].Dish != "cơm gà" {
		t.Errorf("expected fresh entity to win, got %q", state.OrderList[0].Dish)
	}
}

func TestAddToOrder_CompletesStoredDish(t *testing.T) {
	acc := NewAccumulator(testGateway())
	state := NewConversationState()
	state.SetSlot(SlotDish, "gỏi cuốn")

	// The quantity arrives one turn later.
	msg, err := acc.AddToOrder(context.Background(), state, []models.ExtractedEntity{
		quantityEntity("3"),
	})
	if err != nil {
		t.Fatalf("AddToOrder returned error: %v", err)
	}
	if msg != "Đã thêm 3 phần gỏi cuốn vào đơn hàng." {
		t.Errorf("unexpected message: %q", msg)
	}
	if len(state.OrderList) != 1 || state.OrderList[0].UnitPrice != 20000 {
		t.Errorf("unexpected order list: %+v", state.OrderList)
	}
}

func TestAddToOrder_CatalogUnavailable(t *testing.T) {
	gateway := testGateway()
	gateway.SetError(catalog.ErrUnavailable)
	acc := NewAccumulator(gateway)
	state := NewConversationState()
	state.SetSlot(SlotDish, "phở bò")
	state.SetSlot(SlotQuantity, "2")

	msg, err := acc.AddToOrder(context.Background(), state, nil)
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if msg != msgServiceBusy {
		t.Errorf("unexpected message: %q", msg)
	}
	// The turn must not partially apply: slots and order list untouched.
	if state.Slot(SlotDish) != "phở bò" || state.Slot(SlotQuantity) != "2" {
		t.Error("expected slots untouched on catalog outage")
	}
	if len(state.OrderList) != 0 {
		t.Errorf("expected no order line, got %d", len(state.OrderList))
	}
}
