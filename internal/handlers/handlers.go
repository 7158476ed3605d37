package handlers

import (
	"log/slog"
	"net/http"

	"cityvibe/internal/helpers"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
)

func getStorage(c *gin.Context) (storage.Storage, bool) {
	st, exists := c.Get("storage")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return nil, false
	}
	return st.(storage.Storage), true
}

// pageRequest reads page/limit from the query string. Malformed values
// degrade to defaults; the storage layer coerces the rest.
func pageRequest(c *gin.Context) storage.PageRequest {
	var req storage.PageRequest
	if page, err := helpers.StringToInt(c.DefaultQuery("page", "1")); err == nil {
		req.Page = page
	}
	if limit, err := helpers.StringToInt(c.DefaultQuery("limit", "12")); err == nil {
		req.Limit = limit
	}
	return req
}

func internalError(c *gin.Context, message string, err error) {
	slog.Error(message, "path", c.Request.URL.Path, "error", err)
	helpers.RespondWithError(c, http.StatusInternalServerError, message)
}
