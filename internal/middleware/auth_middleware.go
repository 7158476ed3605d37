package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"cityvibe/internal/helpers"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the profile carried by an identity-provider session
// token. Optional claims stay nil when the provider omits them.
type SessionClaims struct {
	UserID          string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// Authenticated validates the bearer session token and stores the user id
// and claims on the request context. Missing or invalid tokens end the
// request with 401.
func Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Authentication required.")
			return
		}

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			helpers.AbortWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, prefix), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired session.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired session.")
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired session.")
			return
		}

		session := SessionClaims{
			UserID:          sub,
			Email:           optionalClaim(claims, "email"),
			FirstName:       optionalClaim(claims, "first_name"),
			LastName:        optionalClaim(claims, "last_name"),
			ProfileImageURL: optionalClaim(claims, "picture"),
		}
		c.Set("user_id", session.UserID)
		c.Set("session", session)
		c.Next()
	}
}

// AdminOnly must run after Authenticated and StorageMiddleware. The session
// user is looked up fresh so a revoked admin flag takes effect immediately.
// Only a missing user or a cleared flag reads as forbidden; a store failure
// is a 500.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		st, exists := c.Get("storage")
		if !exists {
			helpers.AbortWithError(c, http.StatusInternalServerError, "Storage not configured.")
			return
		}

		user, err := st.(storage.Storage).GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				helpers.AbortWithError(c, http.StatusForbidden, "Unauthorized access.")
				return
			}
			slog.Error("Failed to verify permissions", "user_id", userID, "error", err)
			helpers.AbortWithError(c, http.StatusInternalServerError, "Failed to verify permissions")
			return
		}
		if !user.IsAdmin {
			helpers.AbortWithError(c, http.StatusForbidden, "Unauthorized access.")
			return
		}
		c.Next()
	}
}

func optionalClaim(claims jwt.MapClaims, key string) *string {
	if v, ok := claims[key].(string); ok && v != "" {
		return &v
	}
	return nil
}
