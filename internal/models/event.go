package models

import (
	"time"

	"github.com/lib/pq"
)

type Event struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"not null" json:"description"`
	StartDate      time.Time      `gorm:"not null;index" json:"startDate"`
	EndDate        time.Time      `gorm:"not null" json:"endDate"`
	Location       string         `gorm:"not null" json:"location"`
	ImageURL       string         `gorm:"not null" json:"imageUrl"`
	Category       string         `gorm:"not null;index" json:"category"`
	MinPrice       float64        `gorm:"not null" json:"minPrice"`
	MaxPrice       float64        `gorm:"not null" json:"maxPrice"`
	TicketsTotal   int            `gorm:"not null" json:"ticketsTotal"`
	TicketsSold    int            `gorm:"not null;default:0" json:"ticketsSold"`
	TicketURL      string         `gorm:"not null" json:"ticketUrl"`
	Featured       bool           `gorm:"not null;default:false" json:"featured"`
	OrganizerID    *string        `json:"organizerId"`
	Organizer      *User          `gorm:"foreignKey:OrganizerID" json:"-"`
	Performers     pq.StringArray `gorm:"type:text[]" json:"performers"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	AgeRestriction *string        `json:"ageRestriction"`
	Accessibility  *string        `json:"accessibility"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
