package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// PortfolioService manages published case studies.
type PortfolioService struct {
	repo   ports.PortfolioRepository
	logger zerolog.Logger
}

func NewPortfolioService(repo ports.PortfolioRepository, logger zerolog.Logger) *PortfolioService {
	return &PortfolioService{repo: repo, logger: logger}
}

func (s *PortfolioService) ListItems(ctx context.Context) ([]*domain.PortfolioItem, error) {
	return s.repo.List(ctx)
}

func (s *PortfolioService) GetItem(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PortfolioService) CreateItem(ctx context.Context, input ports.CreatePortfolioInput) (*domain.PortfolioItem, error) {
	item := &domain.PortfolioItem{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Client:      input.Client,
		Challenge:   input.Challenge,
		Strategy:    input.Strategy,
		Results:     input.Results,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create portfolio item")
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("title", created.Title).Msg("portfolio item created")
	return created, nil
}

func (s *PortfolioService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("item_id", id).Msg("portfolio item deleted")
	return nil
}
