package storage

import (
	"context"
	"errors"

	"cityvibe/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrInvalid  = errors.New("invalid input")

	// ErrEventHasTickets blocks deletion of an event that sold tickets;
	// tickets are purchase records and must keep a resolvable event.
	ErrEventHasTickets = errors.New("event has sold tickets")
)

// Storage is the persistence boundary of the service. Handlers depend on
// this interface only, never on gorm directly.
type Storage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)

	ListEvents(ctx context.Context, filter EventFilter, page PageRequest) (*EventPage, error)
	FeaturedEvents(ctx context.Context) ([]models.Event, error)
	AllEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, id uint, upd EventUpdate) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error

	ListPosts(ctx context.Context, filter PostFilter, page PageRequest) (*PostPage, error)
	RecentPosts(ctx context.Context) ([]models.PostWithAuthor, error)
	PostsByEvent(ctx context.Context, eventID uint) ([]models.PostWithAuthor, error)
	CreatePost(ctx context.Context, post *models.SocialPost) (*models.PostWithAuthor, error)

	UserTickets(ctx context.Context, userID string) ([]models.TicketWithEvent, error)
	GetUserTicket(ctx context.Context, userID string, id uint) (*models.TicketWithEvent, error)

	ListTicketLocations(ctx context.Context) ([]models.TicketLocation, error)
	CreateTicketLocation(ctx context.Context, location *models.TicketLocation) error
	DeleteTicketLocation(ctx context.Context, id uint) error
}

type gormStorage struct {
	db *gorm.DB
}

func New(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}
