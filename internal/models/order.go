package models

// Dish is a menu entry as returned by the catalog.
// Prices are whole currency units (VND).
type Dish struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OrderLine is one accumulated order item. UnitPrice is the catalog price
// at the moment the line was added; lines are never repriced or mutated.
type OrderLine struct {
	Dish      string `json:"dish"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// PromotionRule is a discount tier: orders totalling at least MinTotal
// qualify for DiscountPercent off.
type PromotionRule struct {
	MinTotal        int64  `json:"min_total"`
	DiscountPercent int    `json:"discount_percent"`
	Description     string `json:"description"`
}
