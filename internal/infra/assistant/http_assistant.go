// Package assistant implements the call-through to the generative-text
// service answering questions about detection results.
package assistant

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lens/config"
	"lens/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultAssistantTimeout = 60 * time.Second

// httpAssistant implements Assistant against a generative-text HTTP API that
// accepts an image plus a text prompt and returns free text.
type httpAssistant struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPAssistant is the constructor for httpAssistant.
func NewHTTPAssistant(cfg *config.Config, logger *slog.Logger) service.Assistant {
	timeout := defaultAssistantTimeout
	a := &httpAssistant{logger: logger}
	if cfg.Assistant != nil {
		a.endpoint = cfg.Assistant.Endpoint
		a.apiKey = cfg.Assistant.APIKey
		a.model = cfg.Assistant.Model
		if cfg.Assistant.Timeout > 0 {
			timeout = cfg.Assistant.Timeout
		}
	}
	a.httpClient = &http.Client{Timeout: timeout}

	return a
}

// generateRequest is the wire format of the generative-text API.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	// Image is the base64-encoded original upload the question refers to.
	Image string `json:"image,omitempty"`
}

type generateResponse struct {
	Answer string `json:"answer"`
}

// Answer builds the detection-grounded prompt and relays it, together with
// the image, to the generative-text service.
func (a *httpAssistant) Answer(ctx context.Context, image []byte, detections, question string) (string, error) {
	payload := generateRequest{
		Model:  a.model,
		Prompt: buildPrompt(detections, question),
		Image:  base64.StdEncoding.EncodeToString(image),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	a.logger.LogAttrs(ctx, slog.LevelDebug, "forwarding question to assistant service",
		slog.String("endpoint", a.endpoint),
		slog.String("model", a.model),
	)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "assistant service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("assistant service returned non-success status: %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAssistantResponseBytes)).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode assistant response")
	}

	return result.Answer, nil
}

// buildPrompt grounds the question in the detection list so the model answers
// from both the structured data and the image.
func buildPrompt(detections, question string) string {
	return fmt.Sprintf(`You are an assistant that answers questions about object detections.

Detections:
%s

User question:
%s

Answer concisely based on both the detection data and the image provided.`, detections, question)
}

const maxAssistantResponseBytes = 1 << 20
