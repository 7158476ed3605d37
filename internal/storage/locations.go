package storage

import (
	"context"
	"fmt"
	"strings"

	"cityvibe/internal/models"
)

func (s *gormStorage) ListTicketLocations(ctx context.Context) ([]models.TicketLocation, error) {
	var locations []models.TicketLocation
	err := s.db.WithContext(ctx).Order("name ASC, id ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *gormStorage) CreateTicketLocation(ctx context.Context, location *models.TicketLocation) error {
	if strings.TrimSpace(location.Name) == "" || strings.TrimSpace(location.Address) == "" {
		return fmt.Errorf("%w: name and address are required", ErrInvalid)
	}
	return s.db.WithContext(ctx).Create(location).Error
}

func (s *gormStorage) DeleteTicketLocation(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.TicketLocation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
