// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"lens/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the read-only user data operations.
type ProfileUsecase interface {
	// GetProfile retrieves the user's own profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetMessages retrieves the user's chat history, oldest first.
	GetMessages(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)
}
