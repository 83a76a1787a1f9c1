package ports

import (
	"context"

	"github.com/brightweb/agency-api/internal/core/domain"
)

// ServiceRepository defines persistence operations for catalog services.
type ServiceRepository interface {
	Insert(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	FindByName(ctx context.Context, name string) (*domain.Service, error)
	// List returns all services, newest first.
	List(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// PortfolioRepository defines persistence operations for portfolio items.
type PortfolioRepository interface {
	Insert(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	FindByID(ctx context.Context, id string) (*domain.PortfolioItem, error)
	FindByTitle(ctx context.Context, title string) (*domain.PortfolioItem, error)
	// List returns all portfolio items, newest first.
	List(ctx context.Context) ([]*domain.PortfolioItem, error)
	Delete(ctx context.Context, id string) error
}
