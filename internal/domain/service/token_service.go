package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token parse failures, ordered from most to least specific. The delivery
// layer maps all of them onto 401 semantics; the distinction matters for
// logging and for tests.
var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenSignatureInvalid is returned when the MAC check fails,
	// including when a token is verified against the wrong secret.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	// ErrTokenMalformed is returned when the token structure cannot be parsed.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenMissingClaim is returned when a required claim is absent.
	ErrTokenMissingClaim = errors.New("token is missing a required claim")
)

// Token type discriminators carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the structured fields carried inside a signed token.
type Claims struct {
	UserID    uuid.UUID // The authenticated user's ID ("sub").
	Email     string    // The authenticated user's email.
	SessionID uuid.UUID // The session identifier ("jti"). Zero for access tokens.
	Type      string    // TokenTypeAccess or TokenTypeRefresh.
	jwt.RegisteredClaims
}

// TokenService signs and verifies the two token kinds. Access and refresh
// tokens use distinct secrets so that leaking one cannot forge the other.
type TokenService interface {
	// SignAccessToken creates a short-lived stateless access token.
	SignAccessToken(userID uuid.UUID, email string) (string, error)

	// SignRefreshToken creates a refresh token bound to a session via its jti.
	SignRefreshToken(userID uuid.UUID, email string, sessionID uuid.UUID, ttl time.Duration) (string, error)

	// ParseAccessToken verifies signature and expiry of an access token
	// and returns its claims.
	ParseAccessToken(tokenString string) (*Claims, error)

	// ParseRefreshToken verifies signature and expiry of a refresh token
	// and returns its claims. The jti claim is required.
	ParseRefreshToken(tokenString string) (*Claims, error)

	// ParseRefreshTokenLenient verifies the signature but ignores expiry.
	// Used only by sign-out to recover the session ID for deletion.
	ParseRefreshTokenLenient(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the fixed lifetime of access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the refresh lifetime tier for the remember flag.
	RefreshTokenTTL(remember bool) time.Duration
}
