// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"lens/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
	// Remember selects the long refresh lifetime tier.
	Remember bool
	// IP is the caller's source address, used only for throttling.
	IP string
}

// --- Output DTOs ---

// TokenPair carries a freshly issued access/refresh token pair. RefreshTTL is
// the lifetime tier of the refresh token so the delivery layer can set the
// cookie max-age to match.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	RefreshTTL   time.Duration
}

// SignUpOutput returns the created user and their first token pair.
// Sign-up issues tokens immediately so a fresh account is usable without a
// second round trip.
type SignUpOutput struct {
	User   *entity.User
	Tokens *TokenPair
}

// SignInOutput returns the authenticated user and a new token pair.
type SignInOutput struct {
	User   *entity.User
	Tokens *TokenPair
}

// Identity is the authenticated subject recovered from a verified token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// AuthUsecase defines the session-lifecycle operations the delivery layer
// depends on.
type AuthUsecase interface {
	// SignUp registers a new account and signs it in.
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)

	// SignIn verifies credentials and starts a new session lineage.
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)

	// Refresh rotates the session behind the given refresh token and issues a
	// new token pair. The previous refresh token stops working.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// SignOut ends the session behind the given refresh token. It never
	// reports failure; the caller's contract is just "cookie cleared".
	SignOut(ctx context.Context, refreshToken string)

	// Check validates the refresh token and its session without rotating,
	// reporting the authenticated identity.
	Check(ctx context.Context, refreshToken string) (*Identity, error)

	// SignOutAll revokes every session belonging to the user.
	SignOutAll(ctx context.Context, userID uuid.UUID) error
}
