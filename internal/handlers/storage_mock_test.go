package handlers

import (
	"context"
	"testing"
	"time"

	"cityvibe/internal/middleware"
	"cityvibe/internal/models"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// mockStorage implements storage.Storage with per-test function fields; a
// call into an unset field panics and fails the test loudly.
type mockStorage struct {
	getUserFn    func(ctx context.Context, id string) (*models.User, error)
	upsertUserFn func(ctx context.Context, user *models.User) (*models.User, error)

	listEventsFn     func(ctx context.Context, filter storage.EventFilter, page storage.PageRequest) (*storage.EventPage, error)
	featuredEventsFn func(ctx context.Context) ([]models.Event, error)
	allEventsFn      func(ctx context.Context) ([]models.Event, error)
	getEventFn       func(ctx context.Context, id uint) (*models.Event, error)
	createEventFn    func(ctx context.Context, event *models.Event) error
	updateEventFn    func(ctx context.Context, id uint, upd storage.EventUpdate) (*models.Event, error)
	deleteEventFn    func(ctx context.Context, id uint) error

	listPostsFn    func(ctx context.Context, filter storage.PostFilter, page storage.PageRequest) (*storage.PostPage, error)
	recentPostsFn  func(ctx context.Context) ([]models.PostWithAuthor, error)
	postsByEventFn func(ctx context.Context, eventID uint) ([]models.PostWithAuthor, error)
	createPostFn   func(ctx context.Context, post *models.SocialPost) (*models.PostWithAuthor, error)

	userTicketsFn   func(ctx context.Context, userID string) ([]models.TicketWithEvent, error)
	getUserTicketFn func(ctx context.Context, userID string, id uint) (*models.TicketWithEvent, error)

	listTicketLocationsFn  func(ctx context.Context) ([]models.TicketLocation, error)
	createTicketLocationFn func(ctx context.Context, location *models.TicketLocation) error
	deleteTicketLocationFn func(ctx context.Context, id uint) error
}

func (m *mockStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	return m.getUserFn(ctx, id)
}
func (m *mockStorage) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	return m.upsertUserFn(ctx, user)
}
func (m *mockStorage) ListEvents(ctx context.Context, filter storage.EventFilter, page storage.PageRequest) (*storage.EventPage, error) {
	return m.listEventsFn(ctx, filter, page)
}
func (m *mockStorage) FeaturedEvents(ctx context.Context) ([]models.Event, error) {
	return m.featuredEventsFn(ctx)
}
func (m *mockStorage) AllEvents(ctx context.Context) ([]models.Event, error) {
	return m.allEventsFn(ctx)
}
func (m *mockStorage) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return m.getEventFn(ctx, id)
}
func (m *mockStorage) CreateEvent(ctx context.Context, event *models.Event) error {
	return m.createEventFn(ctx, event)
}
func (m *mockStorage) UpdateEvent(ctx context.Context, id uint, upd storage.EventUpdate) (*models.Event, error) {
	return m.updateEventFn(ctx, id, upd)
}
func (m *mockStorage) DeleteEvent(ctx context.Context, id uint) error {
	return m.deleteEventFn(ctx, id)
}
func (m *mockStorage) ListPosts(ctx context.Context, filter storage.PostFilter, page storage.PageRequest) (*storage.PostPage, error) {
	return m.listPostsFn(ctx, filter, page)
}
func (m *mockStorage) RecentPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	return m.recentPostsFn(ctx)
}
func (m *mockStorage) PostsByEvent(ctx context.Context, eventID uint) ([]models.PostWithAuthor, error) {
	return m.postsByEventFn(ctx, eventID)
}
func (m *mockStorage) CreatePost(ctx context.Context, post *models.SocialPost) (*models.PostWithAuthor, error) {
	return m.createPostFn(ctx, post)
}
func (m *mockStorage) UserTickets(ctx context.Context, userID string) ([]models.TicketWithEvent, error) {
	return m.userTicketsFn(ctx, userID)
}
func (m *mockStorage) GetUserTicket(ctx context.Context, userID string, id uint) (*models.TicketWithEvent, error) {
	return m.getUserTicketFn(ctx, userID, id)
}
func (m *mockStorage) ListTicketLocations(ctx context.Context) ([]models.TicketLocation, error) {
	return m.listTicketLocationsFn(ctx)
}
func (m *mockStorage) CreateTicketLocation(ctx context.Context, location *models.TicketLocation) error {
	return m.createTicketLocationFn(ctx, location)
}
func (m *mockStorage) DeleteTicketLocation(ctx context.Context, id uint) error {
	return m.deleteTicketLocationFn(ctx, id)
}

// newTestRouter builds the same route table the server wires up.
func newTestRouter(st storage.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StorageMiddleware(st))

	r.GET("/uploads/:filename", ServeUpload)

	api := r.Group("/api")
	{
		api.GET("/auth/user", middleware.Authenticated(), GetCurrentUser)

		events := api.Group("/events")
		{
			events.GET("", ListEvents)
			events.GET("/featured", FeaturedEvents)
			events.GET("/admin", middleware.Authenticated(), middleware.AdminOnly(), AdminListEvents)
			events.GET("/:id", GetEvent)
			events.POST("", middleware.Authenticated(), middleware.AdminOnly(), CreateEvent)
			events.PATCH("/:id", middleware.Authenticated(), middleware.AdminOnly(), UpdateEvent)
			events.DELETE("/:id", middleware.Authenticated(), middleware.AdminOnly(), DeleteEvent)
		}

		posts := api.Group("/social-posts")
		{
			posts.GET("", ListPosts)
			posts.GET("/recent", RecentPosts)
			posts.GET("/event/:eventId", PostsByEvent)
			posts.POST("", middleware.Authenticated(), CreatePost)
		}

		tickets := api.Group("/tickets", middleware.Authenticated())
		{
			tickets.GET("", ListMyTickets)
			tickets.GET("/:id/qr", TicketQR)
		}

		locations := api.Group("/ticket-locations")
		{
			locations.GET("", ListTicketLocations)
			locations.POST("", middleware.Authenticated(), middleware.AdminOnly(), CreateTicketLocation)
			locations.DELETE("/:id", middleware.Authenticated(), middleware.AdminOnly(), DeleteTicketLocation)
		}
	}

	return r
}

// authToken issues a session token the way the identity provider would.
func authToken(t *testing.T, sub string, extra map[string]any) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func adminGetUser(id string) func(ctx context.Context, got string) (*models.User, error) {
	return func(ctx context.Context, got string) (*models.User, error) {
		return &models.User{ID: got, IsAdmin: got == id}, nil
	}
}
