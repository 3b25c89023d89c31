// Package detector implements the call-through to the object-detection
// inference service.
package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"lens/config"
	"lens/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultDetectorTimeout = 30 * time.Second

// httpDetector implements ObjectDetector by forwarding the uploaded image to
// the inference service over HTTP and relaying its response.
type httpDetector struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPDetector is the constructor for httpDetector.
func NewHTTPDetector(cfg *config.Config, logger *slog.Logger) service.ObjectDetector {
	timeout := defaultDetectorTimeout
	endpoint := ""
	if cfg.Detector != nil {
		endpoint = cfg.Detector.Endpoint
		if cfg.Detector.Timeout > 0 {
			timeout = cfg.Detector.Timeout
		}
	}

	return &httpDetector{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Detect sends the image to the inference service as a multipart upload and
// decodes the annotated result.
func (d *httpDetector) Detect(ctx context.Context, image []byte, filename string) (*service.DetectionResult, error) {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, &body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	d.logger.LogAttrs(ctx, slog.LevelDebug, "forwarding image to detection service",
		slog.String("endpoint", d.endpoint),
		slog.Int("imageBytes", len(image)),
	)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "detection service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("detection service returned non-success status: %d", resp.StatusCode)
	}

	var result service.DetectionResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDetectorResponseBytes)).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode detection response")
	}

	return &result, nil
}

// Annotated PNGs come back base64-encoded inside the JSON body, so the cap
// has to leave room for large images.
const maxDetectorResponseBytes = 32 << 20
