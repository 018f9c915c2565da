package handler

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/infrastructure/storage"
	"jalsetu/pkg/errors"
	"jalsetu/pkg/response"
)

// PhotoHandler uploads complaint and work-completion photos. The returned
// URL is what gets attached to the complaint or completion record.
type PhotoHandler struct {
	storageClient *storage.CloudStorageClient
}

var photoHandler *PhotoHandler

func SetupPhotoHandler(storageClient *storage.CloudStorageClient) {
	photoHandler = &PhotoHandler{
		storageClient: storageClient,
	}
}

func GetPhotoHandler() *PhotoHandler {
	return photoHandler
}

func (h *PhotoHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.Error(c, errors.BadRequest("photo file is required", err))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "complaints"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("failed to open uploaded file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadPhoto(c.Request().Context(), src, fileHeader.Header.Get("Content-Type"), folder)
	if err != nil {
		return response.Error(c, errors.BadRequest("failed to upload photo", err))
	}

	return response.Created(c, map[string]string{"url": url})
}

type deletePhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (h *PhotoHandler) Delete(c echo.Context) error {
	var req deletePhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.storageClient.DeletePhoto(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, errors.BadRequest("failed to delete photo", err))
	}

	return response.Success(c, map[string]bool{"deleted": true})
}
