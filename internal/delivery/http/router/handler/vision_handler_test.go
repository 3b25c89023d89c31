package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "lens/internal/delivery/context"
	httpmiddleware "lens/internal/delivery/http/middleware"
	"lens/internal/domain/entity"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/domain/service"
	"lens/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVisionUsecase is a hand-rolled VisionUsecase double for handler tests.
type stubVisionUsecase struct {
	detectResult *service.DetectionResult
	detectErr    error
	askAnswer    string
	askErr       error

	gotDetectImage []byte
	gotAskInput    usecase.AskInput
}

func (s *stubVisionUsecase) Detect(_ context.Context, image []byte, _ string) (*service.DetectionResult, error) {
	s.gotDetectImage = image
	return s.detectResult, s.detectErr
}

func (s *stubVisionUsecase) Ask(_ context.Context, input usecase.AskInput) (string, error) {
	s.gotAskInput = input
	return s.askAnswer, s.askErr
}

func newVisionTestServer(t *testing.T, uc usecase.VisionUsecase, userID uuid.UUID) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	// Stands in for the bearer gate, which is covered by its own tests.
	identity := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(deliverycontext.KeyUserID, userID)
			return next(c)
		}
	}

	h := NewVisionHandler(uc, logger)
	e.POST("/vision/detect", h.Detect, identity)
	e.POST("/vision/ask", h.Ask, identity)

	return e
}

func multipartBody(t *testing.T, fields map[string]string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if fileContent != nil {
		part, err := writer.CreateFormFile("file", "photo.png")
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestVisionHandler_Detect(t *testing.T) {
	uc := &stubVisionUsecase{
		detectResult: &service.DetectionResult{
			AnnotatedImage: "data:image/png;base64,aGk=",
			Detections: []entity.Detection{
				{Object: "dog", Confidence: 0.87, BoundingBox: [4]float64{1, 2, 3, 4}},
			},
		},
	}
	e := newVisionTestServer(t, uc, uuid.New())

	body, contentType := multipartBody(t, nil, []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/vision/detect", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("fake-png"), uc.gotDetectImage)
	assert.Contains(t, rec.Body.String(), `"annotatedImage"`)
	assert.Contains(t, rec.Body.String(), `"dog"`)
}

func TestVisionHandler_Detect_MissingFile(t *testing.T) {
	e := newVisionTestServer(t, &stubVisionUsecase{}, uuid.New())

	body, contentType := multipartBody(t, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/vision/detect", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "image file is required")
}

func TestVisionHandler_Detect_InferenceFailure(t *testing.T) {
	uc := &stubVisionUsecase{detectErr: domainerrors.ErrInferenceFailed}
	e := newVisionTestServer(t, uc, uuid.New())

	body, contentType := multipartBody(t, nil, []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/vision/detect", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestVisionHandler_Ask(t *testing.T) {
	userID := uuid.New()
	uc := &stubVisionUsecase{askAnswer: "Two dogs."}
	e := newVisionTestServer(t, uc, userID)

	body, contentType := multipartBody(t, map[string]string{
		"detections": `[{"object":"dog"}]`,
		"question":   "How many dogs?",
	}, []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/vision/ask", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Two dogs.")
	assert.Equal(t, userID, uc.gotAskInput.UserID)
	assert.Equal(t, `[{"object":"dog"}]`, uc.gotAskInput.Detections)
	assert.Equal(t, "How many dogs?", uc.gotAskInput.Question)
	assert.Equal(t, []byte("fake-png"), uc.gotAskInput.Image)
}

func TestVisionHandler_Ask_MissingQuestion(t *testing.T) {
	e := newVisionTestServer(t, &stubVisionUsecase{}, uuid.New())

	body, contentType := multipartBody(t, map[string]string{
		"detections": `[]`,
	}, []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/vision/ask", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "question is required")
}
