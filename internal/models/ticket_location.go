package models

import "time"

type TicketLocation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"not null" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
