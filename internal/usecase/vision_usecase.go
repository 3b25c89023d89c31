// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"lens/internal/domain/service"

	"github.com/google/uuid"
)

// AskInput defines the data required to ask a question about an image.
type AskInput struct {
	UserID uuid.UUID
	Image  []byte
	// Detections is the raw detection JSON from a prior Detect call,
	// passed through verbatim as grounding context.
	Detections string
	Question   string
}

// VisionUsecase defines the object-detection and question-answering
// operations.
type VisionUsecase interface {
	// Detect runs object detection on an uploaded image.
	Detect(ctx context.Context, image []byte, filename string) (*service.DetectionResult, error)

	// Ask answers a question about an image, recording both the question and
	// the answer in the user's chat history.
	Ask(ctx context.Context, input AskInput) (string, error)
}
