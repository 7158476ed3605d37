package storage

import (
	"context"
	"errors"

	"cityvibe/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *gormStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the user or refreshes its profile fields from the
// identity provider. IsAdmin is never written on conflict, so a flag set in
// the database survives subsequent logins.
func (s *gormStorage) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, user.ID)
}
