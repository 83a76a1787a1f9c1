// Package seed installs the fixture data the site expects on first run: the
// administrator account, the service catalog, and the sample portfolio.
// Every insert is keyed by a natural key (email, service name, item title),
// so running it on each startup is idempotent.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// Fixtures holds the repositories and settings the bootstrap writes through.
type Fixtures struct {
	Users     ports.UserRepository
	Services  ports.ServiceRepository
	Portfolio ports.PortfolioRepository

	AdminEmail    string
	AdminPassword string

	Log zerolog.Logger
}

// Apply installs all missing fixtures. Safe to run on every start.
func (f *Fixtures) Apply(ctx context.Context) error {
	admin, err := f.ensureAdmin(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := f.ensureServices(ctx, admin.ID); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if err := f.ensurePortfolio(ctx); err != nil {
		return fmt.Errorf("seed portfolio: %w", err)
	}
	return nil
}

func (f *Fixtures) ensureAdmin(ctx context.Context) (*domain.User, error) {
	existing, err := f.Users.FindByEmail(ctx, f.AdminEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.AdminPassword), 10)
	if err != nil {
		return nil, err
	}

	admin, err := f.Users.Create(ctx, &domain.User{
		Name:         "Admin",
		Email:        f.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// Lost a race against another instance seeding the same admin.
		if errors.Is(err, domain.ErrEmailTaken) {
			return f.Users.FindByEmail(ctx, f.AdminEmail)
		}
		return nil, err
	}

	f.Log.Info().Str("email", f.AdminEmail).Msg("admin user created")
	return admin, nil
}

func (f *Fixtures) ensureServices(ctx context.Context, adminID string) error {
	for _, svc := range catalogFixtures() {
		_, err := f.Services.FindByName(ctx, svc.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrServiceNotFound) {
			return err
		}

		svc.CreatedBy = adminID
		svc.CreatedAt = time.Now().UTC()
		if _, err := f.Services.Insert(ctx, &svc); err != nil {
			return err
		}
		f.Log.Info().Str("name", svc.Name).Msg("service seeded")
	}
	return nil
}

func (f *Fixtures) ensurePortfolio(ctx context.Context) error {
	for _, item := range portfolioFixtures() {
		_, err := f.Portfolio.FindByTitle(ctx, item.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrPortfolioItemNotFound) {
			return err
		}

		item.CreatedAt = time.Now().UTC()
		if _, err := f.Portfolio.Insert(ctx, &item); err != nil {
			return err
		}
		f.Log.Info().Str("title", item.Title).Msg("portfolio item seeded")
	}
	return nil
}
