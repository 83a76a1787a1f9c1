package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/api/metrics"
	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// CompletionDedup abstracts the marker store (Redis) that suppresses
// duplicate completion mails when a request is marked completed twice.
type CompletionDedup interface {
	// MarkIfFirst records the completion and reports whether this was the
	// first time the request reached completed.
	MarkIfFirst(ctx context.Context, requestID string) (bool, error)
}

type requestService struct {
	requests ports.RequestRepository
	services ports.ServiceRepository
	users    ports.UserRepository
	notifier ports.Notifier
	dedup    CompletionDedup
	log      zerolog.Logger
}

// NewRequestService returns a RequestService implementation.
func NewRequestService(
	requests ports.RequestRepository,
	services ports.ServiceRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	dedup CompletionDedup,
	log zerolog.Logger,
) ports.RequestService {
	return &requestService{
		requests: requests,
		services: services,
		users:    users,
		notifier: notifier,
		dedup:    dedup,
		log:      log,
	}
}

// Submit validates the intake form against the service schema, persists the
// request, and fires the operator notification. The notification is
// best-effort: its failure never fails the submission.
func (s *requestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*domain.ServiceRequest, error) {
	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}

	for _, name := range svc.RequiredFields() {
		v, ok := input.FormData[name]
		if !ok || v == nil || v == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, name)
		}
	}

	req := &domain.ServiceRequest{
		UserID:    input.UserID,
		ServiceID: input.ServiceID,
		FormData:  input.FormData,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.requests.Insert(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("service_id", input.ServiceID).Msg("failed to persist request")
		return nil, err
	}

	// Owner lookup only feeds the notification mail; a missing user record
	// must not fail an already-persisted submission.
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", input.UserID).Msg("owner lookup failed, skipping admin notification")
	} else {
		s.notifier.NewRequestSubmitted(user, svc, input.FormData)
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(svc.Name).Inc()
	s.log.Info().
		Str("request_id", created.ID).
		Str("service", svc.Name).
		Str("user_id", input.UserID).
		Msg("service request submitted")

	return created, nil
}

// ListMine returns the caller's requests newest first. Admin callers see
// every request in the system with owner details resolved.
func (s *requestService) ListMine(ctx context.Context, userID, role string) ([]ports.RequestView, error) {
	if role == domain.RoleAdmin {
		return s.ListAll(ctx)
	}

	reqs, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, reqs, false), nil
}

// ListAll returns every request with owner and service names resolved.
func (s *requestService) ListAll(ctx context.Context) ([]ports.RequestView, error) {
	reqs, err := s.requests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, reqs, true), nil
}

// SetStatus transitions a request through the pending → in_progress →
// completed machine. The transition to completed triggers the customer
// completion mail (once per request) when notify is set; a mail failure is
// logged and the update still succeeds.
func (s *requestService) SetStatus(ctx context.Context, id string, status string, notify bool) (*ports.RequestView, error) {
	next := domain.RequestStatus(status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	current, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, next)
	}

	updated, err := s.requests.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	view := s.resolveViews(ctx, []*domain.ServiceRequest{updated}, true)[0]

	if notify && next == domain.StatusCompleted {
		s.sendCompletionMail(ctx, &view)
	}

	s.log.Info().
		Str("request_id", id).
		Str("from", string(current.Status)).
		Str("to", string(next)).
		Msg("request status updated")

	return &view, nil
}

func (s *requestService) sendCompletionMail(ctx context.Context, view *ports.RequestView) {
	first, err := s.dedup.MarkIfFirst(ctx, view.ID)
	if err != nil {
		// Dedup store down: prefer a possible duplicate mail over none.
		s.log.Warn().Err(err).Str("request_id", view.ID).Msg("completion dedup check failed, sending anyway")
		first = true
	}
	if !first {
		s.log.Debug().Str("request_id", view.ID).Msg("completion mail already sent, skipping")
		return
	}
	if view.UserEmail == "" {
		s.log.Warn().Str("request_id", view.ID).Msg("request owner missing, no completion mail")
		return
	}
	s.notifier.RequestCompleted(view.UserName, view.UserEmail, view.ServiceName)
}

// resolveViews joins owner and service names onto the raw requests. Weak
// references may dangle after a user or service is deleted; missing
// referents leave the resolved fields empty.
func (s *requestService) resolveViews(ctx context.Context, reqs []*domain.ServiceRequest, withOwner bool) []ports.RequestView {
	serviceNames := make(map[string]string)
	users := make(map[string]*domain.User)

	views := make([]ports.RequestView, 0, len(reqs))
	for _, r := range reqs {
		view := ports.RequestView{
			ID:        r.ID,
			UserID:    r.UserID,
			ServiceID: r.ServiceID,
			FormData:  r.FormData,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		}

		name, seen := serviceNames[r.ServiceID]
		if !seen {
			svc, err := s.services.FindByID(ctx, r.ServiceID)
			if err == nil {
				name = svc.Name
			} else if !errors.Is(err, domain.ErrServiceNotFound) {
				s.log.Warn().Err(err).Str("service_id", r.ServiceID).Msg("service lookup failed")
			}
			serviceNames[r.ServiceID] = name
		}
		view.ServiceName = name

		if withOwner {
			owner, seen := users[r.UserID]
			if !seen {
				u, err := s.users.FindByID(ctx, r.UserID)
				if err == nil {
					owner = u
				} else if !errors.Is(err, domain.ErrUserNotFound) {
					s.log.Warn().Err(err).Str("user_id", r.UserID).Msg("owner lookup failed")
				}
				users[r.UserID] = owner
			}
			if owner != nil {
				view.UserName = owner.Name
				view.UserEmail = owner.Email
			}
		}

		views = append(views, view)
	}
	return views
}
