package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lens/internal/domain/entity"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/domain/repository"
	"lens/internal/domain/service"
	mockRepo "lens/internal/mocks/repository"
	mockService "lens/internal/mocks/service"
	"lens/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	loginLimiter *mockService.MockLoginLimiter
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	loginLimiter := mockService.NewMockLoginLimiter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		LoginLimiter: loginLimiter,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokenService: tokenService,
		loginLimiter: loginLimiter,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.SignUpInput{
		Email:    "new@example.com",
		Password: "password123",
		Name:     "New User",
	}
	userID := uuid.New()

	fixtures.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	fixtures.tokenService.EXPECT().RefreshTokenTTL(false).Return(20 * time.Minute)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			sessionRepo := mockRepo.NewMockSessionRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().SessionRepo().Return(sessionRepo)

			userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, u *entity.User) error {
					u.ID = userID

					return nil
				})
			sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

			return fn(factory)
		})

	fixtures.tokenService.EXPECT().
		SignRefreshToken(userID, "new@example.com", mock.AnythingOfType("uuid.UUID"), 20*time.Minute).
		Return("refresh-token", nil)
	fixtures.tokenService.EXPECT().
		SignAccessToken(userID, "new@example.com").
		Return("access-token", nil)

	output, err := fixtures.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "access-token", output.Tokens.AccessToken)
	assert.Equal(t, "refresh-token", output.Tokens.RefreshToken)
	assert.Equal(t, 20*time.Minute, output.Tokens.RefreshTTL)
}

func TestAuthService_SignUp_EmailAlreadyRegistered(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}

	fixtures.hasher.EXPECT().Hash("password123").Return("hashed", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(existing, nil)

			return fn(factory)
		})

	output, err := fixtures.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "taken@example.com",
		Password: "password123",
		Name:     "Dup",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_SignUp_HashFailure(t *testing.T) {
	fixtures := createTestAuthService(t)

	fixtures.hasher.EXPECT().Hash("password123").Return("", errors.New("entropy starvation"))

	output, err := fixtures.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:    "new@example.com",
		Password: "password123",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "hashed"}

	fixtures.loginLimiter.EXPECT().Enforce(ctx, "user@example.com", "10.0.0.1").Return(nil)
	fixtures.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("password123", "hashed").Return(true)
	fixtures.tokenService.EXPECT().RefreshTokenTTL(false).Return(20 * time.Minute)
	fixtures.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(_ context.Context, s *entity.Session) error {
			assert.Equal(t, userID, s.UserID)
			assert.False(t, s.Remember)
			assert.NotEqual(t, uuid.Nil, s.ID)

			return nil
		})
	fixtures.tokenService.EXPECT().
		SignRefreshToken(userID, "user@example.com", mock.AnythingOfType("uuid.UUID"), 20*time.Minute).
		Return("refresh-token", nil)
	fixtures.tokenService.EXPECT().SignAccessToken(userID, "user@example.com").Return("access-token", nil)

	output, err := fixtures.service.SignIn(ctx, usecase.SignInInput{
		Email:    "user@example.com",
		Password: "password123",
		IP:       "10.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.Tokens.AccessToken)
	assert.Equal(t, 20*time.Minute, output.Tokens.RefreshTTL)
}

func TestAuthService_SignIn_RememberUsesLongTier(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "hashed"}
	longTier := 30 * 24 * time.Hour

	fixtures.loginLimiter.EXPECT().Enforce(ctx, "user@example.com", "").Return(nil)
	fixtures.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("password123", "hashed").Return(true)
	fixtures.tokenService.EXPECT().RefreshTokenTTL(true).Return(longTier)
	fixtures.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(_ context.Context, s *entity.Session) error {
			assert.True(t, s.Remember)
			assert.WithinDuration(t, time.Now().Add(longTier), s.ExpiresAt, 5*time.Second)

			return nil
		})
	fixtures.tokenService.EXPECT().
		SignRefreshToken(userID, "user@example.com", mock.AnythingOfType("uuid.UUID"), longTier).
		Return("refresh-token", nil)
	fixtures.tokenService.EXPECT().SignAccessToken(userID, "user@example.com").Return("access-token", nil)

	output, err := fixtures.service.SignIn(ctx, usecase.SignInInput{
		Email:    "user@example.com",
		Password: "password123",
		Remember: true,
	})

	require.NoError(t, err)
	assert.Equal(t, longTier, output.Tokens.RefreshTTL)
}

func TestAuthService_SignIn_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.loginLimiter.EXPECT().Enforce(ctx, mock.Anything, mock.Anything).Return(nil)
	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "missing@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, errMissing := fixtures.service.SignIn(ctx, usecase.SignInInput{
		Email:    "missing@example.com",
		Password: "whatever",
	})

	user := &entity.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hashed"}
	fixtures.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, errWrongPassword := fixtures.service.SignIn(ctx, usecase.SignInInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, errMissing, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errMissing, errWrongPassword)
}

func TestAuthService_SignIn_Throttled(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.loginLimiter.EXPECT().
		Enforce(ctx, "user@example.com", "10.0.0.1").
		Return(service.ErrLoginRateLimited)

	output, err := fixtures.service.SignIn(ctx, usecase.SignInInput{
		Email:    "user@example.com",
		Password: "password123",
		IP:       "10.0.0.1",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTooManyLoginAttempts)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	claims := &service.Claims{UserID: userID, Email: "user@example.com", SessionID: sessionID}
	session := &entity.Session{ID: sessionID, UserID: userID, Remember: true}
	longTier := 30 * 24 * time.Hour

	fixtures.tokenService.EXPECT().ParseRefreshToken("old-refresh").Return(claims, nil)
	fixtures.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
	// Tier is taken from the stored session, not the request.
	fixtures.tokenService.EXPECT().RefreshTokenTTL(true).Return(longTier)
	fixtures.sessionRepo.EXPECT().
		Rotate(ctx, sessionID, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
		Return(nil)
	fixtures.tokenService.EXPECT().
		SignRefreshToken(userID, "user@example.com", mock.AnythingOfType("uuid.UUID"), longTier).
		Return("new-refresh", nil)
	fixtures.tokenService.EXPECT().SignAccessToken(userID, "user@example.com").Return("new-access", nil)

	tokens, err := fixtures.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
	assert.Equal(t, longTier, tokens.RefreshTTL)
}

func TestAuthService_Refresh_RotationRaceLoserUnauthorized(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	sessionID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), Email: "user@example.com", SessionID: sessionID}
	session := &entity.Session{ID: sessionID, Remember: false}

	fixtures.tokenService.EXPECT().ParseRefreshToken("stale-refresh").Return(claims, nil)
	fixtures.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
	fixtures.tokenService.EXPECT().RefreshTokenTTL(false).Return(20 * time.Minute)
	// The concurrent winner already replaced the session ID, so the update
	// matches zero rows.
	fixtures.sessionRepo.EXPECT().
		Rotate(ctx, sessionID, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
		Return(repository.ErrSessionNotFound)

	tokens, err := fixtures.service.Refresh(ctx, "stale-refresh")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_RevokedSessionUnauthorized(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	sessionID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), Email: "user@example.com", SessionID: sessionID}

	fixtures.tokenService.EXPECT().ParseRefreshToken("revoked-refresh").Return(claims, nil)
	fixtures.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

	tokens, err := fixtures.service.Refresh(ctx, "revoked-refresh")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_InvalidTokenUnauthorized(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	for _, parseErr := range []error{
		service.ErrTokenExpired,
		service.ErrTokenSignatureInvalid,
		service.ErrTokenMalformed,
		service.ErrTokenMissingClaim,
	} {
		fixtures.tokenService.EXPECT().ParseRefreshToken("bad-token").Return(nil, parseErr).Once()

		tokens, err := fixtures.service.Refresh(ctx, "bad-token")

		assert.Nil(t, tokens)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	}
}

func TestAuthService_SignOut_DeletesSession(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	sessionID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), Email: "user@example.com", SessionID: sessionID}

	fixtures.tokenService.EXPECT().ParseRefreshTokenLenient("refresh-token").Return(claims, nil)
	fixtures.sessionRepo.EXPECT().Delete(ctx, sessionID).Return(nil)

	fixtures.service.SignOut(ctx, "refresh-token")
}

func TestAuthService_SignOut_SwallowsAllFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		fixtures.service.SignOut(ctx, "")
	})

	t.Run("unparseable token", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		fixtures.tokenService.EXPECT().
			ParseRefreshTokenLenient("garbage").
			Return(nil, service.ErrTokenMalformed)

		fixtures.service.SignOut(ctx, "garbage")
	})

	t.Run("session already gone", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		sessionID := uuid.New()
		claims := &service.Claims{UserID: uuid.New(), SessionID: sessionID}

		fixtures.tokenService.EXPECT().ParseRefreshTokenLenient("refresh-token").Return(claims, nil)
		fixtures.sessionRepo.EXPECT().Delete(ctx, sessionID).Return(repository.ErrSessionNotFound)

		fixtures.service.SignOut(ctx, "refresh-token")
	})
}

func TestAuthService_Check_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	claims := &service.Claims{UserID: userID, Email: "user@example.com", SessionID: sessionID}
	session := &entity.Session{ID: sessionID, UserID: userID}

	fixtures.tokenService.EXPECT().ParseRefreshToken("refresh-token").Return(claims, nil)
	fixtures.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

	identity, err := fixtures.service.Check(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "user@example.com", identity.Email)
}

func TestAuthService_Check_DoesNotRotate(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	sessionID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), Email: "user@example.com", SessionID: sessionID}
	session := &entity.Session{ID: sessionID}

	fixtures.tokenService.EXPECT().ParseRefreshToken("refresh-token").Return(claims, nil)
	fixtures.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

	_, err := fixtures.service.Check(ctx, "refresh-token")

	require.NoError(t, err)
	fixtures.sessionRepo.AssertNotCalled(t, "Rotate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Check_ExpiredSessionUnauthorized(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	sessionID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), SessionID: sessionID}

	fixtures.tokenService.EXPECT().ParseRefreshToken("refresh-token").Return(claims, nil)
	fixtures.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionExpired)

	identity, err := fixtures.service.Check(ctx, "refresh-token")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_SignOutAll(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.sessionRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	require.NoError(t, fixtures.service.SignOutAll(ctx, userID))
}
