package repository

import (
	"context"
	"errors"
	"time"

	"lens/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no live session matches the given ID.
	// Rotation losers and revoked lineages both surface through this error.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session row exists but its expiry has passed.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the operations for refresh-session persistence.
// The session ID doubles as the refresh token's jti claim, so lookups by ID
// are the revocation check for otherwise self-contained refresh tokens.
type SessionRepository interface {
	// Create persists a new session, starting a refresh lineage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its current token identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Rotate atomically replaces a session's ID and expiry, invalidating the
	// previous refresh token. The update matches on currentID only; when zero
	// rows match (already rotated or revoked), ErrSessionNotFound is returned.
	// This compare-and-swap is the serialization point for concurrent refreshes.
	Rotate(ctx context.Context, currentID, newID uuid.UUID, expiresAt time.Time) error

	// Delete removes a session by its current ID, ending the lineage.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes all sessions belonging to a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes all sessions whose expiry has passed. Called
	// periodically for cleanup.
	DeleteExpired(ctx context.Context) error
}
