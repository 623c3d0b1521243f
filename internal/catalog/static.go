package catalog

import (
	"context"
	"strings"

	"foodchat/internal/models"
)

// Static is an in-memory Gateway with a fixed menu. It backs tests and
// lets the service run without a database.
type Static struct {
	dishes     []models.Dish
	promotions []models.PromotionRule
	err        error
}

// NewStatic creates a Static gateway from the given menu and promotion rules
func NewStatic(dishes []models.Dish, promotions []models.PromotionRule) *Static {
	return &Static{
		dishes:     dishes,
		promotions: promotions,
	}
}

// DefaultMenu returns the built-in menu
func DefaultMenu() []models.Dish {
	return []models.Dish{
		{Name: "phở bò", Price: 50000},
		{Name: "cơm gà", Price: 60000},
		{Name: "bánh mì", Price: 30000},
		{Name: "trà sữa", Price: 40000},
		{Name: "gỏi cuốn", Price: 20000},
		{Name: "bún chả", Price: 55000},
	}
}

// SetError makes every subsequent call fail with err; passing nil restores
// normal operation. Used to simulate a catalog outage.
func (s *Static) SetError(err error) {
	s.err = err
}

// FindDish looks up a dish by case-insensitive exact name match
func (s *Static) FindDish(_ context.Context, name string) (models.Dish, bool, error) {
	if s.err != nil {
		return models.Dish{}, false, s.err
	}
	for _, dish := range s.dishes {
		if strings.EqualFold(dish.Name, name) {
			return dish, true, nil
		}
	}
	return models.Dish{}, false, nil
}

// ListDishes returns all dishes
func (s *Static) ListDishes(_ context.Context) ([]models.Dish, error) {
	if s.err != nil {
		return nil, s.err
	}
	dishes := make([]models.Dish, len(s.dishes))
	copy(dishes, s.dishes)
	return dishes, nil
}

// ListPromotions returns all promotion rules
func (s *Static) ListPromotions(_ context.Context) ([]models.PromotionRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	rules := make([]models.PromotionRule, len(s.promotions))
	copy(rules, s.promotions)
	return rules, nil
}
