package handlers

import (
	"errors"
	"net/http"
	"time"

	"cityvibe/internal/helpers"
	"cityvibe/internal/models"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
)

type EventRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
	Location       string    `json:"location" binding:"required"`
	ImageURL       string    `json:"imageUrl" binding:"required"`
	Category       string    `json:"category" binding:"required"`
	MinPrice       *float64  `json:"minPrice" binding:"required"`
	MaxPrice       *float64  `json:"maxPrice" binding:"required"`
	TicketsTotal   int       `json:"ticketsTotal" binding:"required"`
	TicketURL      string    `json:"ticketUrl" binding:"required"`
	Featured       bool      `json:"featured"`
	Performers     []string  `json:"performers"`
	Tags           []string  `json:"tags"`
	AgeRestriction *string   `json:"ageRestriction"`
	Accessibility  *string   `json:"accessibility"`
}

type EventUpdateRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Location       *string    `json:"location"`
	ImageURL       *string    `json:"imageUrl"`
	Category       *string    `json:"category"`
	MinPrice       *float64   `json:"minPrice"`
	MaxPrice       *float64   `json:"maxPrice"`
	TicketsTotal   *int       `json:"ticketsTotal"`
	TicketsSold    *int       `json:"ticketsSold"`
	TicketURL      *string    `json:"ticketUrl"`
	Featured       *bool      `json:"featured"`
	Performers     *[]string  `json:"performers"`
	Tags           *[]string  `json:"tags"`
	AgeRestriction *string    `json:"ageRestriction"`
	Accessibility  *string    `json:"accessibility"`
}

// ListEvents serves the public event search. Sentinel query values ("all",
// "any") and malformed numbers decode to "no filter" here, at the boundary.
func ListEvents(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	filter := storage.EventFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Date:     storage.ParseDateBucket(c.Query("date")),
	}
	if category := c.Query("category"); category != "" && category != "all" {
		filter.Category = category
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if maxPrice, err := helpers.StringToFloat(raw); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}

	result, err := st.ListEvents(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		internalError(c, "Failed to fetch events", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":     result.Events,
		"total":      result.Total,
		"totalPages": result.TotalPages,
		"perPage":    result.PerPage,
	})
}

func FeaturedEvents(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	events, err := st.FeaturedEvents(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to fetch featured events", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func AdminListEvents(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	events, err := st.AllEvents(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to fetch events", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}

	event, err := st.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
			return
		}
		internalError(c, "Failed to fetch event", err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func CreateEvent(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	organizerID := c.GetString("user_id")
	event := models.Event{
		Title:          req.Title,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
		ImageURL:       req.ImageURL,
		Category:       req.Category,
		MinPrice:       *req.MinPrice,
		MaxPrice:       *req.MaxPrice,
		TicketsTotal:   req.TicketsTotal,
		TicketURL:      req.TicketURL,
		Featured:       req.Featured,
		OrganizerID:    &organizerID,
		Performers:     req.Performers,
		Tags:           req.Tags,
		AgeRestriction: req.AgeRestriction,
		Accessibility:  req.Accessibility,
	}

	if err := st.CreateEvent(c.Request.Context(), &event); err != nil {
		if errors.Is(err, storage.ErrInvalid) {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c, "Failed to create event", err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func UpdateEvent(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}

	var req EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	event, err := st.UpdateEvent(c.Request.Context(), id, storage.EventUpdate{
		Title:          req.Title,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
		ImageURL:       req.ImageURL,
		Category:       req.Category,
		MinPrice:       req.MinPrice,
		MaxPrice:       req.MaxPrice,
		TicketsTotal:   req.TicketsTotal,
		TicketsSold:    req.TicketsSold,
		TicketURL:      req.TicketURL,
		Featured:       req.Featured,
		Performers:     req.Performers,
		Tags:           req.Tags,
		AgeRestriction: req.AgeRestriction,
		Accessibility:  req.Accessibility,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		case errors.Is(err, storage.ErrInvalid):
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			internalError(c, "Failed to update event", err)
		}
		return
	}

	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}

	if err := st.DeleteEvent(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		case errors.Is(err, storage.ErrEventHasTickets):
			helpers.RespondWithError(c, http.StatusConflict, "Event has sold tickets and cannot be deleted")
		default:
			internalError(c, "Failed to delete event", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
