package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// ContactService persists public contact-form messages and alerts the
// operator. The alert is best-effort and never fails the submission.
type ContactService struct {
	repo     ports.ContactRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, notifier ports.Notifier, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, msg)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to persist contact message")
		return nil, err
	}

	s.notifier.ContactMessageReceived(created)

	s.logger.Info().Str("message_id", created.ID).Msg("contact message received")
	return created, nil
}
