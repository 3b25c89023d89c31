package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "lens/internal/delivery/context"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadBytes caps the image size accepted on the vision endpoints.
const maxUploadBytes = 16 << 20

// VisionHandler holds dependencies for the detection and Q&A handlers.
type VisionHandler struct {
	uc     usecase.VisionUsecase
	logger *slog.Logger
}

// NewVisionHandler is the constructor for VisionHandler, injected by Fx.
func NewVisionHandler(uc usecase.VisionUsecase, logger *slog.Logger) *VisionHandler {
	return &VisionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Detect runs object detection on a multipart image upload.
func (h *VisionHandler) Detect(c echo.Context) error {
	image, filename, err := readImageUpload(c)
	if err != nil {
		return err
	}

	result, err := h.uc.Detect(c.Request().Context(), image, filename)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, result)
}

// Ask answers a question about an uploaded image, grounded in a detection
// list produced by a prior Detect call.
func (h *VisionHandler) Ask(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	image, _, err := readImageUpload(c)
	if err != nil {
		return err
	}

	detections := c.FormValue("detections")
	question := c.FormValue("question")
	if question == "" {
		return domainerrors.ErrValidationFailed.WithDetails("question is required")
	}

	answer, err := h.uc.Ask(c.Request().Context(), usecase.AskInput{
		UserID:     userID,
		Image:      image,
		Detections: detections,
		Question:   question,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}

// readImageUpload pulls the "file" part out of the multipart form.
func readImageUpload(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("image file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("image file is too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	defer src.Close()

	image, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return image, fileHeader.Filename, nil
}
