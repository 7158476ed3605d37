package models

import "time"

// Tickets originate from an external purchase flow; this service only reads
// them back for their owner.
type Ticket struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"not null;index" json:"userId"`
	EventID      uint      `gorm:"not null;index" json:"eventId"`
	Type         string    `gorm:"not null" json:"type"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	OrderNumber  string    `gorm:"not null" json:"orderNumber"`
	PurchaseDate time.Time `json:"purchaseDate"`
	TotalPrice   float64   `gorm:"not null" json:"totalPrice"`
}

type TicketWithEvent struct {
	Ticket
	Event *Event `json:"event"`
}
