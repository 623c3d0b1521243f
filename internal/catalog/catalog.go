// Package catalog provides read-only access to the menu and active
// promotion rules. The dialogue core treats any error from a Gateway as a
// recoverable collaborator outage, never as a fatal condition.
package catalog

import (
	"context"
	"errors"

	"foodchat/internal/models"
)

// ErrUnavailable indicates the backing catalog store cannot be reached
var ErrUnavailable = errors.New("catalog unavailable")

// Gateway is the read-only catalog contract exposed to the dialogue core
type Gateway interface {
	// FindDish looks up a dish by case-insensitive exact name match and
	// returns its canonical name and price. The boolean reports whether
	// the dish exists.
	FindDish(ctx context.Context, name string) (models.Dish, bool, error)

	// ListDishes returns all available dishes
	ListDishes(ctx context.Context) ([]models.Dish, error)

	// ListPromotions returns all active promotion rules
	ListPromotions(ctx context.Context) ([]models.PromotionRule, error)
}
