package storage

import (
	"context"
	"errors"

	"cityvibe/internal/models"

	"gorm.io/gorm"
)

// UserTickets returns the caller's tickets with their events attached,
// ordered by event start date, newest event first.
func (s *gormStorage) UserTickets(ctx context.Context, userID string) ([]models.TicketWithEvent, error) {
	var tickets []models.Ticket
	err := s.db.WithContext(ctx).
		Select("tickets.*").
		Joins("LEFT JOIN events ON events.id = tickets.event_id").
		Where("tickets.user_id = ?", userID).
		Order("events.start_date DESC, tickets.id DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return s.attachEvents(ctx, tickets)
}

func (s *gormStorage) GetUserTicket(ctx context.Context, userID string, id uint) (*models.TicketWithEvent, error) {
	var ticket models.Ticket
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	withEvents, err := s.attachEvents(ctx, []models.Ticket{ticket})
	if err != nil {
		return nil, err
	}
	return &withEvents[0], nil
}

// attachEvents maps tickets to their events with left-join semantics; a
// ticket whose event row is gone keeps a nil Event.
func (s *gormStorage) attachEvents(ctx context.Context, tickets []models.Ticket) ([]models.TicketWithEvent, error) {
	out := make([]models.TicketWithEvent, 0, len(tickets))
	if len(tickets) == 0 {
		return out, nil
	}

	seen := make(map[uint]bool, len(tickets))
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		if !seen[t.EventID] {
			seen[t.EventID] = true
			ids = append(ids, t.EventID)
		}
	}

	var events []models.Event
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&events).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Event, len(events))
	for i := range events {
		byID[events[i].ID] = &events[i]
	}

	for _, t := range tickets {
		out = append(out, models.TicketWithEvent{Ticket: t, Event: byID[t.EventID]})
	}
	return out, nil
}
