package handlers

import (
	"errors"
	"net/http"
	"strings"

	"cityvibe/internal/helpers"
	"cityvibe/internal/models"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
)

func ListPosts(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	filter := storage.PostFilter{
		Query: c.Query("q"),
		Sort:  storage.ParsePostSort(c.Query("sort")),
	}
	if raw := c.Query("eventId"); raw != "" {
		if eventID, err := helpers.StringToUint(raw); err == nil && eventID > 0 {
			filter.EventID = &eventID
		}
	}

	result, err := st.ListPosts(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		internalError(c, "Failed to fetch social posts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      result.Posts,
		"total":      result.Total,
		"totalPages": result.TotalPages,
		"perPage":    result.PerPage,
	})
}

func RecentPosts(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	posts, err := st.RecentPosts(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to fetch recent posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func PostsByEvent(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	eventID, err := helpers.StringToUint(c.Param("eventId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	posts, err := st.PostsByEvent(c.Request.Context(), eventID)
	if err != nil {
		internalError(c, "Failed to fetch event posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost accepts a multipart form: content (required), eventId
// (optional) and image (optional, image types only, capped at 10MB). Like
// and comment counters always start at 0.
func CreatePost(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Content is required")
		return
	}

	post := models.SocialPost{
		UserID:  c.GetString("user_id"),
		Content: content,
	}

	if raw := c.PostForm("eventId"); raw != "" {
		if eventID, err := helpers.StringToUint(raw); err == nil && eventID > 0 {
			post.EventID = &eventID
		}
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		filename, err := helpers.UploadFile(c, fileHeader, helpers.PostImageUploadConfig)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		imageURL := "/uploads/" + filename
		post.ImageURL = &imageURL
	}

	created, err := st.CreatePost(c.Request.Context(), &post)
	if err != nil {
		if errors.Is(err, storage.ErrInvalid) {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c, "Failed to create social post", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
