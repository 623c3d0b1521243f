package dialogue

import (
	"context"
	"strings"
	"testing"

	"foodchat/internal/catalog"
	"foodchat/internal/logger"
	"foodchat/internal/models"
)

func testDispatcher(gateway catalog.Gateway) *Dispatcher {
	return NewDispatcher(gateway, 3, logger.New("dialogue-test"))
}

func TestHandleTurn_ShowMenu(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()

	res := d.HandleTurn(context.Background(), state, models.Turn{Intent: models.IntentShowMenu}, "req")
	if !strings.Contains(res.Message, "Đây là menu của chúng tôi:") {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if !strings.Contains(res.Message, "- phở bò: 50000₫") {
		t.Errorf("menu missing dish line:\n%s", res.Message)
	}
}

func TestHandleTurn_AddThenShowThenConfirm(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()
	ctx := context.Background()

	res := d.HandleTurn(ctx, state, models.Turn{
		Intent: models.IntentAddToOrder,
		Entities: []models.ExtractedEntity{
			{Kind: models.EntityDish, Value: "phở bò"},
			{Kind: models.EntityQuantity, Value: "2"},
		},
	}, "req")
	if res.Message != "Đã thêm 2 phần phở bò vào đơn hàng." {
		t.Fatalf("unexpected add message: %q", res.Message)
	}

	res = d.HandleTurn(ctx, state, models.Turn{Intent: models.IntentShowOrder}, "req")
	if !strings.Contains(res.Message, "Thành tiền: 90000₫") {
		t.Errorf("unexpected summary:\n%s", res.Message)
	}

	res = d.HandleTurn(ctx, state, models.Turn{Intent: models.IntentConfirmOrder}, "req")
	if res.Message != msgOrderConfirmed {
		t.Errorf("unexpected confirm message: %q", res.Message)
	}
	if res.Confirmed == nil {
		t.Fatal("expected confirmed order")
	}
	if res.Confirmed.Total != 100000 || res.Confirmed.Discount != 10000 || res.Confirmed.Payable != 90000 {
		t.Errorf("unexpected confirmed amounts: %+v", res.Confirmed)
	}
	// The session is reset by the runtime after hand-off, not here.
	if len(state.OrderList) != 1 {
		t.Errorf("expected order list intact until hand-off, got %d lines", len(state.OrderList))
	}
}

func TestHandleTurn_ShowOrderEmpty(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()

	res := d.HandleTurn(context.Background(), state, models.Turn{Intent: models.IntentShowOrder}, "req")
	if res.Message != msgEmptyOrder {
		t.Errorf("unexpected message: %q", res.Message)
	}
}

func TestHandleTurn_ConfirmEmpty(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()

	res := d.HandleTurn(context.Background(), state, models.Turn{Intent: models.IntentConfirmOrder}, "req")
	if res.Message != msgNothingToConfirm {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if res.Confirmed != nil {
		t.Error("expected no confirmed order")
	}
}

func TestHandleTurn_CancelResetsSession(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()
	state.AppendLine(models.OrderLine{Dish: "phở bò", Quantity: 2, UnitPrice: 50000})
	state.SetSlot(SlotDish, "cơm gà")
	state.FallbackCount = 2

	res := d.HandleTurn(context.Background(), state, models.Turn{Intent: models.IntentCancelOrder}, "req")
	if res.Message != msgOrderCancelled {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if !res.SessionReset {
		t.Error("expected session reset")
	}
	if len(state.OrderList) != 0 || state.Slot(SlotDish) != "" || state.FallbackCount != 0 {
		t.Errorf("expected state fully reset, got %+v", state)
	}
}

func TestHandleTurn_UnknownIntentFallsBack(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()

	res := d.HandleTurn(context.Background(), state, models.Turn{Intent: "weather"}, "req")
	if res.Message != msgFallback {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if state.FallbackCount != 1 {
		t.Errorf("expected fallback count 1, got %d", state.FallbackCount)
	}
}

func TestHandleTurn_LowConfidenceFallsBack(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()

	res := d.HandleTurn(context.Background(), state, models.Turn{
		Intent:     models.IntentShowMenu,
		Confidence: 0.3,
	}, "req")
	if res.Message != msgFallback {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if state.FallbackCount != 1 {
		t.Errorf("expected fallback count 1, got %d", state.FallbackCount)
	}
}

func TestHandleTurn_LowConfidenceSpecificOrderPassesThrough(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()

	res := d.HandleTurn(context.Background(), state, models.Turn{
		Intent:     models.IntentSpecificOrder,
		Confidence: 0.4,
		Entities: []models.ExtractedEntity{
			{Kind: models.EntityDish, Value: "bánh mì"},
			{Kind: models.EntityQuantity, Value: "1"},
		},
	}, "req")
	if res.Message != "Đã thêm 1 phần bánh mì vào đơn hàng." {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if state.FallbackCount != 0 {
		t.Errorf("expected fallback counter untouched, got %d", state.FallbackCount)
	}
	if len(state.OrderList) != 1 {
		t.Errorf("expected order line appended, got %d", len(state.OrderList))
	}
}

func TestHandleTurn_ExhaustedRevertsTurn(t *testing.T) {
	d := testDispatcher(testGateway())
	state := NewConversationState()
	state.FallbackCount = 3

	res := d.HandleTurn(context.Background(), state, models.Turn{Intent: "gibberish"}, "req")
	if res.Message != msgFallbackExhausted {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if !res.RevertTurn {
		t.Error("expected turn revert")
	}
	if state.FallbackCount != 0 {
		t.Errorf("expected fallback count reset, got %d", state.FallbackCount)
	}
}

func TestHandleTurn_CatalogOutageLeavesStateUntouched(t *testing.T) {
	gateway := testGateway()
	d := testDispatcher(gateway)
	state := NewConversationState()
	state.AppendLine(models.OrderLine{Dish: "phở bò", Quantity: 2, UnitPrice: 50000})

	gateway.SetError(catalog.ErrUnavailable)

	for _, intent := range []string{
		models.IntentShowMenu,
		models.IntentShowOrder,
		models.IntentConfirmOrder,
	} {
		res := d.HandleTurn(context.Background(), state, models.Turn{Intent: intent}, "req")
		if res.Message != msgServiceBusy {
			t.Errorf("%s: unexpected message: %q", intent, res.Message)
		}
		if res.Confirmed != nil {
			t.Errorf("%s: expected no confirmed order", intent)
		}
	}

	if len(state.OrderList) != 1 {
		t.Errorf("expected order list untouched, got %d lines", len(state.OrderList))
	}
}
