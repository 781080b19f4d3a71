// Package app assembles repositories and services over one storage backend.
package app

import (
	"fmt"

	"github.com/angelmondragon/restroboost-backend/internal/analytics"
	"github.com/angelmondragon/restroboost-backend/internal/auth"
	"github.com/angelmondragon/restroboost-backend/internal/demo"
	"github.com/angelmondragon/restroboost-backend/internal/feedback"
	"github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/internal/orders"
	"github.com/angelmondragon/restroboost-backend/internal/records"
	"github.com/angelmondragon/restroboost-backend/internal/users"
	"github.com/angelmondragon/restroboost-backend/pkg/config"
	"github.com/angelmondragon/restroboost-backend/pkg/security"
)

type Repositories struct {
	Users     *users.Repository
	Inventory *inventory.Repository
	Menu      *menu.Repository
	Feedback  *feedback.Repository
	Orders    *orders.Repository
}

type App struct {
	Repos     Repositories
	Auth      auth.Service
	Inventory inventory.Service
	Menu      menu.Service
	Feedback  feedback.Service
	Orders    orders.Service
	Analytics analytics.Service
	Seeder    *demo.Seeder
}

// NewRepositories builds every collection repository over deps.
func NewRepositories(deps records.Deps) (Repositories, error) {
	var (
		repos Repositories
		err   error
	)
	if repos.Users, err = users.NewRepository(deps); err != nil {
		return repos, fmt.Errorf("users repository: %w", err)
	}
	if repos.Inventory, err = inventory.NewRepository(deps); err != nil {
		return repos, fmt.Errorf("inventory repository: %w", err)
	}
	if repos.Menu, err = menu.NewRepository(deps); err != nil {
		return repos, fmt.Errorf("menu repository: %w", err)
	}
	if repos.Feedback, err = feedback.NewRepository(deps); err != nil {
		return repos, fmt.Errorf("feedback repository: %w", err)
	}
	if repos.Orders, err = orders.NewRepository(deps); err != nil {
		return repos, fmt.Errorf("orders repository: %w", err)
	}
	return repos, nil
}

// NewSeeder builds the demo seeder over existing repositories.
func NewSeeder(repos Repositories, deps records.Deps) (*demo.Seeder, error) {
	return demo.NewSeeder(demo.SeederParams{
		Inventory: repos.Inventory,
		Menu:      repos.Menu,
		Feedback:  repos.Feedback,
		Orders:    repos.Orders,
		Logger:    deps.Logger,
	})
}

// New wires the full service graph.
func New(cfg *config.Config, deps records.Deps) (*App, error) {
	repos, err := NewRepositories(deps)
	if err != nil {
		return nil, err
	}

	sessions, err := auth.NewSessionStore(deps)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  repos.Users,
		Sessions:  sessions,
		Hasher:    security.NewHasher(cfg.Password),
		JWTConfig: cfg.JWT,
		DemoMode:  cfg.Auth.DemoMode,
	})
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	inventoryService, err := inventory.NewService(inventory.ServiceParams{Repo: repos.Inventory})
	if err != nil {
		return nil, err
	}
	menuService, err := menu.NewService(menu.ServiceParams{Repo: repos.Menu})
	if err != nil {
		return nil, err
	}
	feedbackService, err := feedback.NewService(feedback.ServiceParams{Repo: repos.Feedback})
	if err != nil {
		return nil, err
	}
	ordersService, err := orders.NewService(orders.ServiceParams{Repo: repos.Orders, Menu: repos.Menu})
	if err != nil {
		return nil, err
	}
	analyticsService, err := analytics.NewService(analytics.ServiceParams{
		Inventory: repos.Inventory,
		Menu:      repos.Menu,
		Feedback:  repos.Feedback,
		Orders:    repos.Orders,
	})
	if err != nil {
		return nil, err
	}
	seeder, err := NewSeeder(repos, deps)
	if err != nil {
		return nil, err
	}

	return &App{
		Repos:     repos,
		Auth:      authService,
		Inventory: inventoryService,
		Menu:      menuService,
		Feedback:  feedbackService,
		Orders:    ordersService,
		Analytics: analyticsService,
		Seeder:    seeder,
	}, nil
}
