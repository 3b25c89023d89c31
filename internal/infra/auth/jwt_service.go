package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"lens/config"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with distinct secrets so a leaked
// access secret cannot forge refresh tokens, and vice versa.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration // Tier used when remember is false.
	rememberTTL   time.Duration // Tier used when remember is true.
}

// tokenClaims is the wire shape of both token kinds. The session ID rides in
// the registered "jti" claim and is only present on refresh tokens.
type tokenClaims struct {
	Email string `json:"email"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService. Missing secrets are a
// fatal configuration error surfaced at boot rather than on first use.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, domainerrors.ErrConfigMissing.WrapMessage("jwt signing secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		rememberTTL:   cfg.Auth.RememberTokenTTL,
	}, nil
}

// SignAccessToken creates a short-lived stateless access token.
func (s *jwtService) SignAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.sign(userID, email, uuid.Nil, service.TokenTypeAccess, s.accessSecret, s.accessTTL)
}

// SignRefreshToken creates a refresh token carrying the session ID as its jti claim.
func (s *jwtService) SignRefreshToken(userID uuid.UUID, email string, sessionID uuid.UUID, ttl time.Duration) (string, error) {
	return s.sign(userID, email, sessionID, service.TokenTypeRefresh, s.refreshSecret, ttl)
}

// ParseAccessToken verifies signature and expiry of an access token.
func (s *jwtService) ParseAccessToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ParseRefreshToken verifies signature and expiry of a refresh token.
func (s *jwtService) ParseRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// ParseRefreshTokenLenient verifies the signature but skips claim validation,
// so an expired-but-authentic refresh token still yields its session ID.
func (s *jwtService) ParseRefreshTokenLenient(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.refreshSecret, service.TokenTypeRefresh, jwt.WithoutClaimsValidation())
}

// AccessTokenTTL returns the fixed lifetime of access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the refresh lifetime tier for the remember flag.
func (s *jwtService) RefreshTokenTTL(remember bool) time.Duration {
	if remember {
		return s.rememberTTL
	}

	return s.refreshTTL
}

func (s *jwtService) sign(userID uuid.UUID, email string, sessionID uuid.UUID, tokenType, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: email,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if sessionID != uuid.Nil {
		claims.ID = sessionID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString, secret, wantType string, opts ...jwt.ParserOption) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		// Pin the signing method before touching the secret.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, mapJWTError(err)
	}

	raw, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return nil, errors.Wrap(service.ErrTokenMalformed, "unexpected claims type")
	}
	if raw.Type != wantType {
		return nil, errors.Wrapf(service.ErrTokenMalformed, "expected %s token, got %q", wantType, raw.Type)
	}

	return toServiceClaims(raw, wantType)
}

// toServiceClaims validates required claims and converts to the domain shape.
func toServiceClaims(raw *tokenClaims, tokenType string) (*service.Claims, error) {
	if raw.Subject == "" || raw.Email == "" {
		return nil, errors.Wrap(service.ErrTokenMissingClaim, "id and email claims are required")
	}

	userID, err := uuid.Parse(raw.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMissingClaim, "id claim is not a valid uuid")
	}

	claims := &service.Claims{
		UserID:           userID,
		Email:            raw.Email,
		Type:             raw.Type,
		RegisteredClaims: raw.RegisteredClaims,
	}

	if tokenType == service.TokenTypeRefresh {
		if raw.ID == "" {
			return nil, errors.Wrap(service.ErrTokenMissingClaim, "jti claim is required for refresh tokens")
		}
		sessionID, err := uuid.Parse(raw.ID)
		if err != nil {
			return nil, errors.Wrap(service.ErrTokenMissingClaim, "jti claim is not a valid uuid")
		}
		claims.SessionID = sessionID
	}

	return claims, nil
}

// mapJWTError converts golang-jwt parse errors onto the domain sentinels.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, "token verification failed")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Wrap(service.ErrTokenSignatureInvalid, "token verification failed")
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Wrap(service.ErrTokenMalformed, "failed to parse token structure")
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
