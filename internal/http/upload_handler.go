package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/service"
)

// maxImageSize caps uploaded images at 5 MiB.
const maxImageSize = 5 << 20

// UploadHandler provides HTTP handlers for image uploads.
type UploadHandler struct {
	storage service.ImageStorage
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(storage service.ImageStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload handles POST /api/uploads requests. The stored key and public URL
// are returned for use in category and product payloads.
//
// @Summary      Upload image
// @Description  Stores an image in the object bucket and returns its key and URL
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file, at most 5 MiB"
// @Success      201 {object} dto.SuccessResponse "Stored image reference"
// @Failure      400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	builder := NewResponseBuilder(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if fileHeader.Size > maxImageSize {
		builder.ErrorWithMessage(http.StatusBadRequest, "image exceeds the 5 MiB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	image, err := h.storage.Upload(
		c.Request.Context(),
		file,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(gin.H{"image": image})
}

// Remove handles DELETE /api/uploads/:key requests.
//
// @Summary      Remove image
// @Tags         Uploads
// @Produce      json
// @Param        key path string true "Object key"
// @Success      200 {object} dto.SuccessResponse "Removed"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/uploads/{key} [delete]
func (h *UploadHandler) Remove(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.storage.Remove(c.Request.Context(), c.Param("key")); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{"removed": true})
}
