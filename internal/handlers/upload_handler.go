package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UploadHandler stores media files for paper balls on local disk and hands
// back a relative URL, so the response adapts to whatever host serves it.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new UploadHandler, ensuring the upload
// directory exists
func NewUploadHandler(uploadDir string) (*UploadHandler, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	return &UploadHandler{uploadDir: uploadDir}, nil
}

// RegisterUploadRoutes registers the media upload route
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/upload", h.Upload)
}

// Upload accepts a single multipart file under the "media" field
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded file")
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store file")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "url": "/uploads/" + name})
}
