package impl

import (
	"context"
	"log/slog"

	deliverycontext "lens/internal/delivery/context"
	"lens/internal/domain/entity"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/domain/repository"
	"lens/internal/domain/service"
	"lens/internal/usecase"

	"go.uber.org/fx"
)

// visionService implements the VisionUsecase interface. It relays uploads to
// the inference collaborators and records Q&A exchanges as chat history.
type visionService struct {
	detector    service.ObjectDetector
	assistant   service.Assistant
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// VisionServiceParams holds dependencies for visionService, injected by Fx.
type VisionServiceParams struct {
	fx.In

	Detector    service.ObjectDetector
	Assistant   service.Assistant
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewVisionService is the constructor for visionService.
func NewVisionService(params VisionServiceParams) usecase.VisionUsecase {
	return &visionService{
		detector:    params.Detector,
		assistant:   params.Assistant,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *visionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Detect runs object detection on an uploaded image.
func (srv *visionService) Detect(ctx context.Context, image []byte, filename string) (*service.DetectionResult, error) {
	result, err := srv.detector.Detect(ctx, image, filename)
	if err != nil {
		srv.log(ctx).Error("Detection failed", slog.String("filename", filename), slog.Any("error", err))

		return nil, domainerrors.ErrInferenceFailed
	}

	srv.log(ctx).Debug("Detection completed",
		slog.String("filename", filename),
		slog.Int("objects", len(result.Detections)),
	)

	return result, nil
}

// Ask answers a question about an image. The question is recorded before the
// assistant call and the answer after it, so a failed call still leaves the
// question in the history.
func (srv *visionService) Ask(ctx context.Context, input usecase.AskInput) (string, error) {
	question := &entity.Message{
		UserID:  input.UserID,
		Role:    entity.MessageRoleUser,
		Content: input.Question,
	}
	if err := srv.messageRepo.Create(ctx, question); err != nil {
		srv.log(ctx).Error("Failed to record question", slog.Any("userID", input.UserID), slog.Any("error", err))

		return "", err
	}

	answer, err := srv.assistant.Answer(ctx, input.Image, input.Detections, input.Question)
	if err != nil {
		srv.log(ctx).Error("Assistant call failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return "", domainerrors.ErrAssistantFailed
	}

	reply := &entity.Message{
		UserID:  input.UserID,
		Role:    entity.MessageRoleAssistant,
		Content: answer,
	}
	if err := srv.messageRepo.Create(ctx, reply); err != nil {
		srv.log(ctx).Error("Failed to record answer", slog.Any("userID", input.UserID), slog.Any("error", err))

		return "", err
	}

	return answer, nil
}
