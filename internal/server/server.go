package server

import (
	"fmt"
	"os"

	"cityvibe/config"
	"cityvibe/internal/handlers"
	"cityvibe/internal/logger"
	"cityvibe/internal/middleware"
	"cityvibe/internal/storage"

	"github.com/gin-gonic/gin"
)

func Start() error {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery())

	setupRoutes(r, storage.New(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, st storage.Storage) {
	r.Use(middleware.StorageMiddleware(st))

	r.GET("/uploads/:filename", handlers.ServeUpload)

	api := r.Group("/api")
	{
		api.GET("/auth/user", middleware.Authenticated(), handlers.GetCurrentUser)

		events := api.Group("/events")
		{
			events.GET("", handlers.ListEvents)
			events.GET("/featured", handlers.FeaturedEvents)
			events.GET("/admin", middleware.Authenticated(), middleware.AdminOnly(), handlers.AdminListEvents)
			events.GET("/:id", handlers.GetEvent)
			events.POST("", middleware.Authenticated(), middleware.AdminOnly(), handlers.CreateEvent)
			events.PATCH("/:id", middleware.Authenticated(), middleware.AdminOnly(), handlers.UpdateEvent)
			events.DELETE("/:id", middleware.Authenticated(), middleware.AdminOnly(), handlers.DeleteEvent)
		}

		posts := api.Group("/social-posts")
		{
			posts.GET("", handlers.ListPosts)
			posts.GET("/recent", handlers.RecentPosts)
			posts.GET("/event/:eventId", handlers.PostsByEvent)
			posts.POST("", middleware.Authenticated(), handlers.CreatePost)
		}

		tickets := api.Group("/tickets", middleware.Authenticated())
		{
			tickets.GET("", handlers.ListMyTickets)
			tickets.GET("/:id/qr", handlers.TicketQR)
		}

		locations := api.Group("/ticket-locations")
		{
			locations.GET("", handlers.ListTicketLocations)
			locations.POST("", middleware.Authenticated(), middleware.AdminOnly(), handlers.CreateTicketLocation)
			locations.DELETE("/:id", middleware.Authenticated(), middleware.AdminOnly(), handlers.DeleteTicketLocation)
		}
	}
}
