package helpers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadConfig struct {
	MaxSizeBytes     int64
	AllowedMimeTypes []string
}

// PostImageUploadConfig matches the social wall contract: images only,
// capped at 10MB.
var PostImageUploadConfig = UploadConfig{
	MaxSizeBytes: 10 * 1024 * 1024,
	AllowedMimeTypes: []string{
		"image/jpeg",
		"image/png",
		"image/gif",
	},
}

// UploadDir is the filesystem root for uploaded files.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// UploadFile persists a multipart file under a fresh random name and returns
// the stored basename. The content type is sniffed from the file bytes, not
// trusted from the request headers.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, config UploadConfig) (string, error) {
	if fileHeader.Size > config.MaxSizeBytes {
		return "", fmt.Errorf("file size exceeds maximum limit of %d MB", config.MaxSizeBytes/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && n == 0 {
		return "", err
	}
	mimeType := http.DetectContentType(buffer[:n])

	mimeTypeAllowed := false
	for _, allowedType := range config.AllowedMimeTypes {
		if mimeType == allowedType {
			mimeTypeAllowed = true
			break
		}
	}
	if !mimeTypeAllowed {
		return "", fmt.Errorf("invalid file type. Allowed types: %v", config.AllowedMimeTypes)
	}

	if err := os.MkdirAll(UploadDir(), os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(UploadDir(), filename)); err != nil {
		return "", err
	}

	return filename, nil
}
