package middleware

import (
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
)

// StorageMiddleware makes the storage layer available to handlers under the
// "storage" context key.
func StorageMiddleware(st storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("storage", st)
		c.Next()
	}
}
