package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"

	"cityvibe/internal/helpers"
	"cityvibe/internal/models"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

func ticketQRData(ticket *models.TicketWithEvent, secret string) string {
	return fmt.Sprintf("ticket:%d;order:%s;event:%d;signature:%s",
		ticket.ID,
		ticket.OrderNumber,
		ticket.EventID,
		signTicket(ticket, secret),
	)
}

func signTicket(ticket *models.TicketWithEvent, secret string) string {
	data := fmt.Sprintf("%d:%s:%s", ticket.ID, ticket.OrderNumber, ticket.UserID)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// ListMyTickets returns the caller's tickets with their events attached.
func ListMyTickets(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	tickets, err := st.UserTickets(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		internalError(c, "Failed to fetch tickets", err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// TicketQR renders a PNG QR code carrying the signed order payload for one
// of the caller's tickets. Tickets owned by other users read as missing.
func TicketQR(c *gin.Context) {
	st, ok := getStorage(c)
	if !ok {
		return
	}

	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found")
		return
	}

	ticket, err := st.GetUserTicket(c.Request.Context(), c.GetString("user_id"), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found")
			return
		}
		internalError(c, "Failed to fetch ticket", err)
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return
	}

	png, err := qrcode.Encode(ticketQRData(ticket, secret), qrcode.Medium, 256)
	if err != nil {
		internalError(c, "Failed to generate QR code", err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
