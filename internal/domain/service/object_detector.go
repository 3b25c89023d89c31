package service

import (
	"context"

	"lens/internal/domain/entity"
)

// DetectionResult is what the detection inference service returns for one image.
// The annotated image is an opaque data URI rendered by the service itself.
type DetectionResult struct {
	AnnotatedImage string             `json:"annotatedImage"`
	Detections     []entity.Detection `json:"detections"`
}

// ObjectDetector is the narrow contract with the external object-detection
// inference service. Model selection and annotation rendering live behind it.
type ObjectDetector interface {
	// Detect runs object detection on a single image.
	Detect(ctx context.Context, image []byte, filename string) (*DetectionResult, error)
}
