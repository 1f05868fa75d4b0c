package handler

import (
	"net/http"

	"github.com/demianRod/alexshop-tienda/internal/apierror"
	"github.com/demianRod/alexshop-tienda/internal/dto"
	"github.com/demianRod/alexshop-tienda/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UploadsHandler receives product images. Upload is independent of form
// submission: the client stages the returned URL into image_url and may still
// clear it before saving. A failed upload changes nothing on disk.
type UploadsHandler struct {
	store    *infra.ImageStore
	maxBytes int64
}

func NewUploadsHandler(store *infra.ImageStore, maxUploadMB int) *UploadsHandler {
	return &UploadsHandler{store: store, maxBytes: int64(maxUploadMB) << 20}
}

func (h *UploadsHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("image file is required"))
		return
	}
	if fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, apierror.New("image exceeds the maximum upload size"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to read upload"))
		return
	}
	defer f.Close()

	publicURL, err := h.store.Save(fileHeader.Filename, f)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("image upload failed")
		c.JSON(http.StatusBadRequest, apierror.New("image upload failed: unsupported or unreadable file"))
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: publicURL})
}
