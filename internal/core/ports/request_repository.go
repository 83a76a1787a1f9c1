package ports

import (
	"context"

	"github.com/brightweb/agency-api/internal/core/domain"
)

// RequestRepository defines persistence operations for service requests.
type RequestRepository interface {
	Insert(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	// ListByUser returns the user's requests, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.ServiceRequest, error)
	// ListAll returns every request in the system, newest first.
	ListAll(ctx context.Context) ([]*domain.ServiceRequest, error)
	// UpdateStatus sets the status and returns the updated document.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.ServiceRequest, error)
}

// ContactRepository persists contact form submissions (append-only).
type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
}
