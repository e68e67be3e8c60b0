package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"roam/internal/services"
	"roam/internal/utils/logger"
)

// maxUploadFiles caps the file count of a single /api/upload request.
const maxUploadFiles = 10

type UploadHandler struct {
	uploader services.Uploader
	log      *logger.Logger
}

func NewUploadHandler(uploader services.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		log:      logger.New("upload_handler"),
	}
}

// UploadFiles stores every file part of the request and returns the
// public URLs in wire order. Parts are streamed straight to storage, so
// files already uploaded stay put when a later part fails.
func (h *UploadHandler) UploadFiles(c echo.Context) error {
	reader, err := c.Request().MultipartReader()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid multipart body",
		})
	}

	urls := []string{}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Malformed multipart body",
			})
		}
		if part.FileName() == "" {
			part.Close()
			continue
		}

		if len(urls) >= maxUploadFiles {
			part.Close()
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Too many files",
			})
		}

		url, err := h.uploader.UploadStream(c.Request().Context(), part.FileName(), part.Header.Get("Content-Type"), part)
		part.Close()
		if err != nil {
			h.log.Error("Failed to upload file", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to upload file",
			})
		}
		urls = append(urls, url)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"urls": urls,
	})
}
