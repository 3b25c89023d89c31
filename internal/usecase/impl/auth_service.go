// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lens/internal/delivery/context"
	"lens/internal/domain/entity"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/domain/repository"
	"lens/internal/domain/service"
	"lens/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It owns the access/refresh
// token lifecycle and the session rotation state machine.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	loginLimiter service.LoginLimiter
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	LoginLimiter service.LoginLimiter
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		loginLimiter: params.LoginLimiter,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account and immediately signs it in so the caller
// gets a usable token pair without a second round trip.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	var (
		createdUser *entity.User
		session     *entity.Session
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The uniqueness check and the insert run in the same transaction, and
		// the insert still maps the unique-violation race onto the same error.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		createdUser = &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: passwordHash,
		}
		if err := userRepo.Create(ctx, createdUser); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create user")
		}

		session, err = srv.startSession(ctx, repoFactory.SessionRepo(), createdUser.ID, false)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	tokens, err := srv.issueTokens(createdUser, session)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", createdUser.ID))

	return &usecase.SignUpOutput{User: createdUser, Tokens: tokens}, nil
}

// SignIn verifies credentials and starts a new session lineage. A missing
// account and a wrong password produce the same error so callers cannot
// probe which emails are registered.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	if err := srv.loginLimiter.Enforce(ctx, input.Email, input.IP); err != nil {
		srv.log(ctx).Warn("Sign-in throttled", slog.String("email", input.Email), slog.String("ip", input.IP))

		return nil, domainerrors.ErrTooManyLoginAttempts
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := srv.startSession(ctx, srv.sessionRepo, user.ID, input.Remember)
	if err != nil {
		return nil, err
	}

	tokens, err := srv.issueTokens(user, session)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Sign-in succeeded",
		slog.Any("userID", user.ID),
		slog.Bool("remember", input.Remember),
	)

	return &usecase.SignInOutput{User: user, Tokens: tokens}, nil
}

// Refresh rotates the session behind the refresh token and issues a new token
// pair. Two concurrent refreshes on the same token race on the rotation
// update; the loser observes zero matched rows and gets Unauthorized.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	session, err := srv.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	// The lifetime tier comes from the stored session, never from the
	// request, so a tampered refresh call cannot extend its own lifetime.
	newID := uuid.New()
	ttl := srv.tokenService.RefreshTokenTTL(session.Remember)
	expiresAt := time.Now().Add(ttl)

	if err := srv.sessionRepo.Rotate(ctx, claims.SessionID, newID, expiresAt); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// Lost the rotation race or the session was revoked in between.
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to rotate session")
	}

	refreshTokenString, err := srv.tokenService.SignRefreshToken(claims.UserID, claims.Email, newID, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	accessToken, err := srv.tokenService.SignAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.log(ctx).Debug("Session rotated", slog.Any("userID", claims.UserID))

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		RefreshTTL:   ttl,
	}, nil
}

// SignOut deletes the session behind the refresh token. The token is decoded
// leniently so an expired-but-parseable token still revokes its session, and
// every failure is swallowed: the caller's contract is just "cookie cleared".
func (srv *authService) SignOut(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}

	claims, err := srv.tokenService.ParseRefreshTokenLenient(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Sign-out token unparseable", slog.Any("error", err))

		return
	}

	if err := srv.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		srv.log(ctx).Debug("Sign-out session delete skipped", slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Signed out", slog.Any("userID", claims.UserID))
}

// Check runs refresh's validation path without rotating, reporting the
// authenticated identity.
func (srv *authService) Check(ctx context.Context, refreshToken string) (*usecase.Identity, error) {
	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	if _, err := srv.sessionRepo.FindByID(ctx, claims.SessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	return &usecase.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// SignOutAll revokes every session belonging to the user.
func (srv *authService) SignOutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete user sessions")
	}

	srv.log(ctx).Info("All sessions revoked", slog.Any("userID", userID))

	return nil
}

// startSession persists a new session row, beginning a refresh lineage.
func (srv *authService) startSession(ctx context.Context, sessionRepo repository.SessionRepository, userID uuid.UUID, remember bool) (*entity.Session, error) {
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Remember:  remember,
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenTTL(remember)),
	}

	if err := sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return session, nil
}

// issueTokens signs the access/refresh pair for an established session.
func (srv *authService) issueTokens(user *entity.User, session *entity.Session) (*usecase.TokenPair, error) {
	ttl := srv.tokenService.RefreshTokenTTL(session.Remember)

	refreshToken, err := srv.tokenService.SignRefreshToken(user.ID, user.Email, session.ID, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	accessToken, err := srv.tokenService.SignAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshTTL:   ttl,
	}, nil
}
