package ports

import (
	"context"

	"github.com/brightweb/agency-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Email uniqueness is enforced at the storage layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
