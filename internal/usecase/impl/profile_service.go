package impl

import (
	"context"
	"log/slog"

	deliverycontext "lens/internal/delivery/context"
	"lens/internal/domain/entity"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/domain/repository"
	"lens/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's own profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The ID came from a verified access token, so a miss means the
			// account was deleted after issuance.
			return nil, domainerrors.ErrNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to look up profile")
	}

	return user, nil
}

// GetMessages retrieves the user's chat history, oldest first.
func (srv *profileService) GetMessages(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list messages", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}
