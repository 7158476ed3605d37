package handlers

import (
	"errors"
	"net/http"

	"cityvibe/internal/helpers"
	"cityvibe/internal/models"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
)

type TicketLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func ListTicketLocations(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	locations, err := st.ListTicketLocations(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to fetch ticket locations", err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func CreateTicketLocation(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	var req TicketLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Name and address are required")
		return
	}

	location := models.TicketLocation{Name: req.Name, Address: req.Address}
	if err := st.CreateTicketLocation(c.Request.Context(), &location); err != nil {
		if errors.Is(err, storage.ErrInvalid) {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c, "Failed to create ticket location", err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

func DeleteTicketLocation(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket location not found")
		return
	}

	if err := st.DeleteTicketLocation(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket location not found")
			return
		}
		internalError(c, "Failed to delete ticket location", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket location deleted successfully"})
}
