package handlers

import (
	"net/http"

	"cityvibe/internal/helpers"
	"cityvibe/internal/middleware"
	"cityvibe/internal/models"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the session user, refreshing the local user row
// from the identity-provider claims on every call.
func GetCurrentUser(c *gin.Context) {
	sessionAny, exists := c.Get("session")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required.")
		return
	}
	session := sessionAny.(middleware.SessionClaims)

	st, ok := getStorage(c)
	if !ok {
		return
	}

	user, err := st.UpsertUser(c.Request.Context(), &models.User{
		ID:              session.UserID,
		Email:           session.Email,
		FirstName:       session.FirstName,
		LastName:        session.LastName,
		ProfileImageURL: session.ProfileImageURL,
	})
	if err != nil {
		internalError(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
