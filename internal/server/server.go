package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"comanda/internal/config"
	"comanda/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	mongo  *mongo.Client
}

// New creates a new server instance. One Mongo client is created here and
// shared across requests for the life of the process.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(db)
	services := InitServices(cfg, repos)
	handlers := InitHandlers(log, services)

	if err := PopulateInitialData(cfg, log, services); err != nil {
		return nil, fmt.Errorf("failed to populate initial data: %w", err)
	}

	router := setupRouter(handlers, services)

	return &Server{
		cfg:    cfg,
		log:    log,
		router: router,
		mongo:  mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects the MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.log.Info("server listening", slog.String("address", s.cfg.Server.Address()))
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(h *Handlers, s *Services) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.POST("/auth", h.Auth.Login)
	r.GET("/health", h.Health.Check)

	// Every other route resolves the optional bearer token first; the
	// guards below decide per route.
	authed := r.Group("", middleware.Authenticate(s.Tokens))

	users := authed.Group("/users")
	{
		users.GET("", middleware.RequireAdmin(), h.Users.List)
		users.POST("", middleware.RequireAdmin(), h.Users.Create)
		users.GET("/:uid", middleware.RequireAuth(), h.Users.Get)
		users.PATCH("/:uid", middleware.RequireAuth(), h.Users.Update)
		users.DELETE("/:uid", middleware.RequireAuth(), h.Users.Delete)
	}

	products := authed.Group("/products")
	{
		products.GET("", middleware.RequireAuth(), h.Products.List)
		products.GET("/:id", middleware.RequireAuth(), h.Products.Get)
		products.POST("", middleware.RequireAdmin(), h.Products.Create)
		products.PATCH("/:id", middleware.RequireAdmin(), h.Products.Update)
		products.DELETE("/:id", middleware.RequireAdmin(), h.Products.Delete)
	}

	orders := authed.Group("/orders", middleware.RequireAuth())
	{
		orders.GET("", h.Orders.List)
		orders.POST("", h.Orders.Create)
		orders.GET("/:id", h.Orders.Get)
		orders.PATCH("/:id", h.Orders.Update)
		orders.DELETE("/:id", h.Orders.Delete)
	}

	return r
}
