package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"cityvibe/internal/helpers"

	"github.com/gin-gonic/gin"
)

// ServeUpload serves a previously uploaded file. Only the basename of the
// requested name is used, so path traversal cannot escape the upload dir.
func ServeUpload(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == string(filepath.Separator) {
		helpers.RespondWithError(c, http.StatusNotFound, "File not found")
		return
	}

	path := filepath.Join(helpers.UploadDir(), filename)
	if _, err := os.Stat(path); err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "File not found")
		return
	}

	c.File(path)
}
