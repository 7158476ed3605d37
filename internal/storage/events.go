package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cityvibe/internal/models"

	"gorm.io/gorm"
)

const (
	eventOrder         = "start_date DESC, id DESC"
	featuredEventLimit = 4
)

// EventPage is one slice of a filtered event listing.
type EventPage struct {
	Events []models.Event
	PageInfo
}

// EventUpdate is a partial event change set; nil fields stay untouched.
type EventUpdate struct {
	Title          *string
	Description    *string
	StartDate      *time.Time
	EndDate        *time.Time
	Location       *string
	ImageURL       *string
	Category       *string
	MinPrice       *float64
	MaxPrice       *float64
	TicketsTotal   *int
	TicketsSold    *int
	TicketURL      *string
	Featured       *bool
	Performers     *[]string
	Tags           *[]string
	AgeRestriction *string
	Accessibility  *string
}

func validateEvent(e *models.Event) error {
	if e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalid)
	}
	if e.MinPrice > e.MaxPrice {
		return fmt.Errorf("%w: min price must not exceed max price", ErrInvalid)
	}
	if e.TicketsTotal <= 0 {
		return fmt.Errorf("%w: tickets total must be positive", ErrInvalid)
	}
	if e.TicketsSold < 0 || e.TicketsSold > e.TicketsTotal {
		return fmt.Errorf("%w: tickets sold must be between 0 and tickets total", ErrInvalid)
	}
	return nil
}

func (s *gormStorage) ListEvents(ctx context.Context, filter EventFilter, page PageRequest) (*EventPage, error) {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	q := s.db.WithContext(ctx).Model(&models.Event{})
	for _, c := range filter.clauses(now) {
		q = q.Where(c.expr, c.args...)
	}

	var events []models.Event
	info, err := paginate(q, eventOrder, page, func(q *gorm.DB) error {
		return q.Find(&events).Error
	})
	if err != nil {
		return nil, err
	}
	return &EventPage{Events: events, PageInfo: info}, nil
}

// FeaturedEvents returns up to 4 featured events that have not yet ended,
// soonest first.
func (s *gormStorage) FeaturedEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("featured = ? AND end_date >= ?", true, time.Now()).
		Order("start_date ASC, id ASC").
		Limit(featuredEventLimit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *gormStorage) AllEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Order(eventOrder).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *gormStorage) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// CreateEvent persists a new event. TicketsSold always starts at 0; any
// caller-supplied value is overwritten.
func (s *gormStorage) CreateEvent(ctx context.Context, event *models.Event) error {
	event.TicketsSold = 0
	if err := validateEvent(event); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *gormStorage) UpdateEvent(ctx context.Context, id uint, upd EventUpdate) (*models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	upd.apply(&event)
	if err := validateEvent(&event); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (u EventUpdate) apply(e *models.Event) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.StartDate != nil {
		e.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		e.EndDate = *u.EndDate
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.ImageURL != nil {
		e.ImageURL = *u.ImageURL
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.MinPrice != nil {
		e.MinPrice = *u.MinPrice
	}
	if u.MaxPrice != nil {
		e.MaxPrice = *u.MaxPrice
	}
	if u.TicketsTotal != nil {
		e.TicketsTotal = *u.TicketsTotal
	}
	if u.TicketsSold != nil {
		e.TicketsSold = *u.TicketsSold
	}
	if u.TicketURL != nil {
		e.TicketURL = *u.TicketURL
	}
	if u.Featured != nil {
		e.Featured = *u.Featured
	}
	if u.Performers != nil {
		e.Performers = *u.Performers
	}
	if u.Tags != nil {
		e.Tags = *u.Tags
	}
	if u.AgeRestriction != nil {
		e.AgeRestriction = u.AgeRestriction
	}
	if u.Accessibility != nil {
		e.Accessibility = u.Accessibility
	}
}

// DeleteEvent removes an event. Deletion is refused while sold tickets
// reference the event; social posts survive with their event link cleared.
func (s *gormStorage) DeleteEvent(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticketCount int64
		if err := tx.Model(&models.Ticket{}).Where("event_id = ?", id).Count(&ticketCount).Error; err != nil {
			return err
		}
		if ticketCount > 0 {
			return ErrEventHasTickets
		}

		if err := tx.Model(&models.SocialPost{}).Where("event_id = ?", id).Update("event_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
