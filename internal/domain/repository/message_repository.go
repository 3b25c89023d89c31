package repository

import (
	"context"

	"lens/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository defines the operations for chat-history persistence.
type MessageRepository interface {
	// Create appends a message to a user's chat history.
	Create(ctx context.Context, message *entity.Message) error

	// ListByUserID retrieves a user's messages, oldest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)
}
