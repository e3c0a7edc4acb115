package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadMedia stores a multipart "file" and returns the URL to attach with
// POST /posts/{id}/media.
func (h *Handler) UploadMedia(c *gin.Context) {
	if h.uploads == nil {
		c.Error(NewAPIError("media uploads are not configured", http.StatusServiceUnavailable))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		msg(c, http.StatusBadRequest, "file is required")
		return
	}

	contentType := file.Header.Get("Content-Type")
	kind := mediaKind(contentType)
	if kind == "" {
		msg(c, http.StatusBadRequest, "file must be an image or a video")
		return
	}

	src, err := file.Open()
	if err != nil {
		msg(c, http.StatusBadRequest, "failed to open file")
		return
	}
	defer src.Close()

	url, err := h.uploads.Upload(c.Request.Context(), src, file.Size, contentType, filepath.Ext(file.Filename))
	if err != nil {
		c.Error(err)
		return
	}

	h.log.Info("media uploaded", zap.String("url", url), zap.Int64("size", file.Size))
	c.JSON(http.StatusCreated, gin.H{"url": url, "type": kind})
}

func mediaKind(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return ""
	}
}
