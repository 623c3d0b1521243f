package chat

import (
	"context"
	"fmt"

	"foodchat/internal/database"
)

// Repository persists conversation history
type Repository struct {
	db *database.DB
}

// NewRepository creates a conversation history repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// SaveExchange records one user/bot exchange
func (r *Repository) SaveExchange(ctx context.Context, sessionID, requestID, intent, userMessage, botResponse string) error {
	err := r.db.Exec(ctx, database.InsertConversationSQL, sessionID, requestID, intent, userMessage, botResponse)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}
	return nil
}
