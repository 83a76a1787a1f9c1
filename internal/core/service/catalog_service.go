package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// DefaultServiceFields is the intake template applied when a service is
// created without an explicit field schema.
func DefaultServiceFields() []domain.FormField {
	return []domain.FormField{
		{Name: "budget", Label: "Monthly Budget ($)", Type: domain.FieldNumber, Required: true},
		{Name: "timeline", Label: "Project Timeline", Type: domain.FieldSelect, Required: true,
			Options: []string{"1 month", "3 months", "6 months", "12 months"}},
		{Name: "goals", Label: "Primary Goals", Type: domain.FieldTextarea, Required: true},
	}
}

// CatalogService manages the service catalog.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) CreateService(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	fields := input.Fields
	if len(fields) == 0 {
		fields = DefaultServiceFields()
	}

	svc := &domain.Service{
		Name:        input.Name,
		Description: input.Description,
		Fields:      fields,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, svc)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

// DeleteService removes a catalog entry. Existing requests referencing it
// are kept; their service reference simply stops resolving.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("service_id", id).Msg("service deleted")
	return nil
}
