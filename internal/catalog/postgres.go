package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"foodchat/internal/database"
	"foodchat/internal/models"
)

// Postgres is a Gateway backed by the PostgreSQL menu tables
type Postgres struct {
	db *database.DB
}

// NewPostgres creates a Postgres catalog gateway
func NewPostgres(db *database.DB) *Postgres {
	return &Postgres{db: db}
}

// FindDish looks up a dish by case-insensitive exact name match
func (p *Postgres) FindDish(ctx context.Context, name string) (models.Dish, bool, error) {
	var dish models.Dish
	err := p.db.QueryRow(ctx, database.FindDishSQL, name).Scan(&dish.Name, &dish.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Dish{}, false, nil
	}
	if err != nil {
		return models.Dish{}, false, fmt.Errorf("%w: find dish: %v", ErrUnavailable, err)
	}
	return dish, true, nil
}

// ListDishes returns all available dishes
func (p *Postgres) ListDishes(ctx context.Context) ([]models.Dish, error) {
	rows, err := p.db.Query(ctx, database.ListDishesSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: list dishes: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var dishes []models.Dish
	for rows.Next() {
		var dish models.Dish
		if err := rows.Scan(&dish.Name, &dish.Price); err != nil {
			return nil, fmt.Errorf("%w: scan dish: %v", ErrUnavailable, err)
		}
		dishes = append(dishes, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list dishes: %v", ErrUnavailable, err)
	}

	return dishes, nil
}

// ListPromotions returns all active promotion rules
func (p *Postgres) ListPromotions(ctx context.Context) ([]models.PromotionRule, error) {
	rows, err := p.db.Query(ctx, database.ListPromotionsSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: list promotions: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var rules []models.PromotionRule
	for rows.Next() {
		var rule models.PromotionRule
		if err := rows.Scan(&rule.MinTotal, &rule.DiscountPercent, &rule.Description); err != nil {
			return nil, fmt.Errorf("%w: scan promotion: %v", ErrUnavailable, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list promotions: %v", ErrUnavailable, err)
	}

	return rules, nil
}
