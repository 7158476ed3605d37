package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cityvibe/internal/models"

	"gorm.io/gorm"
)

const recentPostLimit = 3

// PostPage is one slice of a filtered social post listing.
type PostPage struct {
	Posts []models.PostWithAuthor
	PageInfo
}

func (s *gormStorage) ListPosts(ctx context.Context, filter PostFilter, page PageRequest) (*PostPage, error) {
	q := s.db.WithContext(ctx).Model(&models.SocialPost{})
	for _, c := range filter.clauses() {
		q = q.Where(c.expr, c.args...)
	}

	var posts []models.SocialPost
	info, err := paginate(q, filter.Sort.orderBy(), page, func(q *gorm.DB) error {
		return q.Find(&posts).Error
	})
	if err != nil {
		return nil, err
	}

	withAuthors, err := s.attachAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: withAuthors, PageInfo: info}, nil
}

func (s *gormStorage) RecentPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	var posts []models.SocialPost
	err := s.db.WithContext(ctx).
		Order(SortRecent.orderBy()).
		Limit(recentPostLimit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return s.attachAuthors(ctx, posts)
}

func (s *gormStorage) PostsByEvent(ctx context.Context, eventID uint) ([]models.PostWithAuthor, error) {
	var posts []models.SocialPost
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order(SortRecent.orderBy()).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return s.attachAuthors(ctx, posts)
}

// CreatePost persists a new post. Likes and comments always start at 0 and
// the creation time is stamped here, whatever the caller supplied.
func (s *gormStorage) CreatePost(ctx context.Context, post *models.SocialPost) (*models.PostWithAuthor, error) {
	if strings.TrimSpace(post.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalid)
	}
	post.Likes = 0
	post.Comments = 0
	post.CreatedAt = time.Now()

	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}

	withAuthor, err := s.attachAuthors(ctx, []models.SocialPost{*post})
	if err != nil {
		return nil, err
	}
	return &withAuthor[0], nil
}

// attachAuthors is the join-and-map step producing the PostWithAuthor
// composite. It keeps left-join semantics: a post whose author row is gone
// comes back with a nil User.
func (s *gormStorage) attachAuthors(ctx context.Context, posts []models.SocialPost) ([]models.PostWithAuthor, error) {
	out := make([]models.PostWithAuthor, 0, len(posts))
	if len(posts) == 0 {
		return out, nil
	}

	seen := make(map[string]bool, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			ids = append(ids, p.UserID)
		}
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	for _, p := range posts {
		out = append(out, models.PostWithAuthor{SocialPost: p, User: byID[p.UserID]})
	}
	return out, nil
}
