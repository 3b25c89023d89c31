package service

import "context"

// Assistant is the narrow contract with the external generative-text service.
// It answers a free-form question about an image given the detection context.
// Prompt construction is the implementation's concern.
type Assistant interface {
	// Answer returns free text for a question about the image. The detections
	// argument is the raw detection JSON produced earlier, passed through verbatim.
	Answer(ctx context.Context, image []byte, detections string, question string) (string, error)
}
