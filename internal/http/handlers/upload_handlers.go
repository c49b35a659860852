package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jasmitsingh01/school-management/domain"
)

// maxUploadSize caps school image uploads at 5 MiB.
const maxUploadSize = 5 << 20

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadHandlers handles image upload requests
type UploadHandlers struct {
	storage domain.FileStorage
}

// NewUploadHandlers creates new upload handlers
func NewUploadHandlers(storage domain.FileStorage) *UploadHandlers {
	return &UploadHandlers{storage: storage}
}

// Upload stores a multipart image and returns its reference
func (h *UploadHandlers) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds 5MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	ref, err := h.storage.Save(c.Request.Context(), header.Filename, contentType, f, header.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{"url": ref},
	})
}
