package ports

import (
	"context"

	"github.com/brightweb/agency-api/internal/core/domain"
)

// AuthService implements registration and login. Both return a signed
// session token alongside the user so clients can authenticate immediately.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// CreateServiceInput carries the data for a new catalog service. When Fields
// is empty the catalog substitutes its default intake template.
type CreateServiceInput struct {
	Name        string
	Description string
	Fields      []domain.FormField
	CreatedBy   string
}

// CatalogService defines use-case operations for the service catalog.
type CatalogService interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// CreatePortfolioInput carries the data for a new portfolio case study.
type CreatePortfolioInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Client      string
	Challenge   string
	Strategy    string
	Results     string
}

// PortfolioService defines use-case operations for portfolio items.
type PortfolioService interface {
	ListItems(ctx context.Context) ([]*domain.PortfolioItem, error)
	GetItem(ctx context.Context, id string) (*domain.PortfolioItem, error)
	CreateItem(ctx context.Context, input CreatePortfolioInput) (*domain.PortfolioItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// SubmitRequestInput carries a customer's intake form submission.
type SubmitRequestInput struct {
	UserID    string
	ServiceID string
	FormData  map[string]any
}

// RequestView is a service request with its weak references resolved for
// display. The resolved fields stay empty when the referent no longer exists.
type RequestView struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	ServiceID   string         `json:"service_id"`
	FormData    map[string]any `json:"form_data"`
	Status      string         `json:"status"`
	CreatedAt   string         `json:"created_at"`
	UserName    string         `json:"user_name,omitempty"`
	UserEmail   string         `json:"user_email,omitempty"`
	ServiceName string         `json:"service_name,omitempty"`
}

// RequestService drives the service-request lifecycle.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*domain.ServiceRequest, error)
	// ListMine returns the caller's requests; admins see every request.
	ListMine(ctx context.Context, userID, role string) ([]RequestView, error)
	// SetStatus transitions a request. Transitioning to completed sends the
	// customer a completion notification; notify controls whether the
	// side-effect fires (the legacy admin path skips it).
	SetStatus(ctx context.Context, id string, status string, notify bool) (*RequestView, error)
	ListAll(ctx context.Context) ([]RequestView, error)
}

// ContactService persists public contact messages and alerts the operator.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
}

// Notifier dispatches templated emails. Every method is best-effort:
// implementations log failures and never block or fail the caller.
type Notifier interface {
	NewRequestSubmitted(user *domain.User, service *domain.Service, formData map[string]any)
	RequestCompleted(name, email, serviceName string)
	ContactMessageReceived(msg *domain.ContactMessage)
}
