package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lens/internal/domain/entity"
	domainerrors "lens/internal/domain/errors"
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

// visionServiceFixtures holds all test dependencies for vision service tests.
type visionServiceFixtures struct {
	service     usecase.VisionUsecase
	detector    *mockService.MockObjectDetector
	assistant   *mockService.MockAssistant
	messageRepo *mockRepo.MockMessageRepository
}

func createTestVisionService(t *testing.T) visionServiceFixtures {
	t.Helper()

	detector := mockService.NewMockObjectDetector(t)
	assistant := mockService.NewMockAssistant(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewVisionService(VisionServiceParams{
		Detector:    detector,
		Assistant:   assistant,
		MessageRepo: messageRepo,
		Logger:      logger,
	})

	return visionServiceFixtures{
		service:     svc,
		detector:    detector,
		assistant:   assistant,
		messageRepo: messageRepo,
	}
}

func TestVisionService_Detect_Success(t *testing.T) {
	fixtures := createTestVisionService(t)
	ctx := context.Background()

	image := []byte("fake-png")
	expected := &service.DetectionResult{
		AnnotatedImage: "data:image/png;base64,abc",
		Detections: []entity.Detection{
			{Object: "dog", Confidence: 0.92, BoundingBox: [4]float64{10, 20, 110, 220}},
		},
	}

	fixtures.detector.EXPECT().Detect(ctx, image, "photo.png").Return(expected, nil)

	result, err := fixtures.service.Detect(ctx, image, "photo.png")

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestVisionService_Detect_InferenceFailure(t *testing.T) {
	fixtures := createTestVisionService(t)
	ctx := context.Background()

	fixtures.detector.EXPECT().
		Detect(ctx, mock.Anything, "photo.png").
		Return(nil, errors.New("inference service unreachable"))

	result, err := fixtures.service.Detect(ctx, []byte("fake-png"), "photo.png")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInferenceFailed)
}

func TestVisionService_Ask_RecordsQuestionAndAnswer(t *testing.T) {
	fixtures := createTestVisionService(t)
	ctx := context.Background()

	userID := uuid.New()
	image := []byte("fake-png")
	detections := `[{"object":"dog","confidence":0.92}]`

	var recorded []*entity.Message
	fixtures.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		RunAndReturn(func(_ context.Context, m *entity.Message) error {
			recorded = append(recorded, m)

			return nil
		}).
		Times(2)
	fixtures.assistant.EXPECT().
		Answer(ctx, image, detections, "what breed is the dog?").
		Return("it looks like a beagle", nil)

	answer, err := fixtures.service.Ask(ctx, usecase.AskInput{
		UserID:     userID,
		Image:      image,
		Detections: detections,
		Question:   "what breed is the dog?",
	})

	require.NoError(t, err)
	assert.Equal(t, "it looks like a beagle", answer)

	require.Len(t, recorded, 2)
	assert.Equal(t, entity.MessageRoleUser, recorded[0].Role)
	assert.Equal(t, "what breed is the dog?", recorded[0].Content)
	assert.Equal(t, entity.MessageRoleAssistant, recorded[1].Role)
	assert.Equal(t, "it looks like a beagle", recorded[1].Content)
	assert.Equal(t, userID, recorded[0].UserID)
	assert.Equal(t, userID, recorded[1].UserID)
}

func TestVisionService_Ask_AssistantFailureKeepsQuestion(t *testing.T) {
	fixtures := createTestVisionService(t)
	ctx := context.Background()

	// The question goes into the history before the assistant call, so the
	// failed call leaves exactly one recorded message.
	fixtures.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil).
		Once()
	fixtures.assistant.EXPECT().
		Answer(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("model overloaded"))

	answer, err := fixtures.service.Ask(ctx, usecase.AskInput{
		UserID:   uuid.New(),
		Image:    []byte("fake-png"),
		Question: "anything there?",
	})

	assert.Empty(t, answer)
	assert.ErrorIs(t, err, domainerrors.ErrAssistantFailed)
}
