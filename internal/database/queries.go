package database

// Catalog queries
const (
	FindDishSQL = `
		SELECT name, price
		FROM dishes
		WHERE LOWER(name) = LOWER($1) AND available`

	ListDishesSQL = `
		SELECT name, price
		FROM dishes
		WHERE available
		ORDER BY name ASC`

	ListPromotionsSQL = `
		SELECT min_total, discount_percent, description
		FROM promotions
		WHERE active
		ORDER BY min_total ASC`
)

// Conversation log queries
const (
	InsertConversationSQL = `
		INSERT INTO conversations (session_id, request_id, intent, user_message, bot_response)
		VALUES ($1, $2, $3, $4, $5)`
)
