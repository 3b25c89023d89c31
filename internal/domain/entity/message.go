package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message roles within a chat history.
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is one entry in a user's chat history with the vision assistant.
type Message struct {
	ID        uuid.UUID // The unique identifier for this message.
	UserID    uuid.UUID // Links this message to the User who owns the conversation.
	Role      string    // Either MessageRoleUser or MessageRoleAssistant.
	Content   string    // The message text.
	CreatedAt time.Time // Timestamp of when this message was recorded.
}
