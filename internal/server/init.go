package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"comanda/internal/config"
	"comanda/internal/handler"
	"comanda/internal/model"
	"comanda/internal/repository"
	"comanda/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories groups the per-entity repositories
type Repositories struct {
	Users    repository.IUserRepository
	Products repository.IProductRepository
	Orders   repository.IOrderRepository
}

// Services groups the business-logic services
type Services struct {
	Tokens   *service.TokenService
	Users    *service.UserService
	Products *service.ProductService
	Orders   *service.OrderService
}

// Handlers groups the HTTP handlers
type Handlers struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Health   *handler.HealthHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:    repository.NewUserRepository(db),
		Products: repository.NewProductRepository(db),
		Orders:   repository.NewOrderRepository(db),
	}
}

func InitServices(cfg *config.Config, repos *Repositories) *Services {
	return &Services{
		Tokens:   service.NewTokenService(cfg),
		Users:    service.NewUserService(repos.Users),
		Products: service.NewProductService(repos.Products),
		Orders:   service.NewOrderService(repos.Orders, repos.Products),
	}
}

func InitHandlers(log *slog.Logger, s *Services) *Handlers {
	return &Handlers{
		Auth:     handler.NewAuthHandler(log, s.Users, s.Tokens),
		Users:    handler.NewUserHandler(log, s.Users),
		Products: handler.NewProductHandler(log, s.Products),
		Orders:   handler.NewOrderHandler(log, s.Orders),
		Health:   handler.NewHealthHandler(),
	}
}

// PopulateInitialData seeds a single administrator account from configuration
// when one is configured and no user with that email exists yet.
func PopulateInitialData(cfg *config.Config, log *slog.Logger, s *Services) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	role := model.RoleAdmin
	_, err := s.Users.Create(ctx, &model.CreateUserRequest{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Role:     &role,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return nil
		}
		return err
	}

	log.Info("seeded administrator account", slog.String("email", cfg.Admin.Email))
	return nil
}
