package postgres

import (
	"context"

	"lens/internal/domain/entity"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/domain/repository"
	"lens/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the domain.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create appends a message to a user's chat history.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthorized.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListByUserID retrieves all messages for a user, oldest first, so the
// conversation reads top to bottom.
func (repo *messageRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      data.Role,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      data.Role,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
