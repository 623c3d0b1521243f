package dialogue

import (
	"context"
	"strconv"
	"strings"

	"foodchat/internal/catalog"
	"foodchat/internal/models"
)

// Accumulator merges freshly extracted entities with stored slot values
// and grows the order list
type Accumulator struct {
	catalog catalog.Gateway
}

// NewAccumulator creates an order accumulator backed by the given catalog
func NewAccumulator(gateway catalog.Gateway) *Accumulator {
	return &Accumulator{catalog: gateway}
}

// AddToOrder processes one order-taking turn. A value extracted in the
// current turn always overrides the stored slot value of the same kind.
// The returned message is empty when neither slot resolves, in which case
// the turn is a no-op. A non-nil error reports a catalog outage; in that
// case the state has not been touched and the message already tells the
// user to retry later.
func (a *Accumulator) AddToOrder(ctx context.Context, state *ConversationState, entities []models.ExtractedEntity) (string, error) {
	dish := state.Slot(SlotDish)
	quantity := state.Slot(SlotQuantity)

	// Latest-turn-wins: fresh entities override stored slots.
	for _, entity := range entities {
		value := strings.TrimSpace(entity.Value)
		if value == "" {
			continue
		}
		switch entity.Kind {
		case models.EntityDish:
			dish = value
		case models.EntityQuantity:
			quantity = value
		}
	}

	switch {
	case dish != "" && quantity != "":
		return a.resolveLine(ctx, state, dish, quantity)

	case dish != "":
		state.SetSlot(SlotDish, dish)
		state.ClearSlot(SlotQuantity)
		return msgAskQuantity(dish), nil

	default:
		return "", nil
	}
}

// resolveLine validates the quantity, looks the dish up and appends an
// order line priced at the catalog price of this moment
func (a *Accumulator) resolveLine(ctx context.Context, state *ConversationState, dish, quantity string) (string, error) {
	parsed, err := strconv.Atoi(quantity)
	if err != nil || parsed <= 0 {
		state.SetSlot(SlotDish, dish)
		state.ClearSlot(SlotQuantity)
		return msgInvalidQuantity, nil
	}

	found, ok, err := a.catalog.FindDish(ctx, dish)
	if err != nil {
		return msgServiceBusy, err
	}
	if !ok {
		state.ClearSlot(SlotDish)
		state.SetSlot(SlotQuantity, quantity)
		return msgDishNotFound(dish), nil
	}

	state.AppendLine(models.OrderLine{
		Dish:      found.Name,
		Quantity:  parsed,
		UnitPrice: found.Price,
	})
	state.ClearSlot(SlotDish)
	state.ClearSlot(SlotQuantity)

	return msgAddedToOrder(parsed, found.Name), nil
}
