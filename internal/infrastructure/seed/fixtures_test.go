package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightweb/agency-api/internal/core/domain"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	creates int
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	r.creates++
	copy := *u
	copy.ID = fmt.Sprintf("user-%d", r.creates)
	r.byEmail[copy.Email] = &copy
	return &copy, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memServiceRepo struct {
	byName  map[string]*domain.Service
	inserts int
}

func (r *memServiceRepo) Insert(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.inserts++
	copy := *s
	copy.ID = fmt.Sprintf("svc-%d", r.inserts)
	r.byName[copy.Name] = &copy
	return &copy, nil
}

func (r *memServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	for _, s := range r.byName {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (r *memServiceRepo) FindByName(_ context.Context, name string) (*domain.Service, error) {
	if s, ok := r.byName[name]; ok {
		return s, nil
	}
	return nil, domain.ErrServiceNotFound
}

func (r *memServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range r.byName {
		out = append(out, s)
	}
	return out, nil
}

func (r *memServiceRepo) Delete(_ context.Context, id string) error {
	for name, s := range r.byName {
		if s.ID == id {
			delete(r.byName, name)
			return nil
		}
	}
	return domain.ErrServiceNotFound
}

type memPortfolioRepo struct {
	byTitle map[string]*domain.PortfolioItem
	inserts int
}

func (r *memPortfolioRepo) Insert(_ context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	r.inserts++
	copy := *item
	copy.ID = fmt.Sprintf("item-%d", r.inserts)
	r.byTitle[copy.Title] = &copy
	return &copy, nil
}

func (r *memPortfolioRepo) FindByID(_ context.Context, id string) (*domain.PortfolioItem, error) {
	for _, item := range r.byTitle {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, domain.ErrPortfolioItemNotFound
}

func (r *memPortfolioRepo) FindByTitle(_ context.Context, title string) (*domain.PortfolioItem, error) {
	if item, ok := r.byTitle[title]; ok {
		return item, nil
	}
	return nil, domain.ErrPortfolioItemNotFound
}

func (r *memPortfolioRepo) List(_ context.Context) ([]*domain.PortfolioItem, error) {
	var out []*domain.PortfolioItem
	for _, item := range r.byTitle {
		out = append(out, item)
	}
	return out, nil
}

func (r *memPortfolioRepo) Delete(_ context.Context, id string) error {
	for title, item := range r.byTitle {
		if item.ID == id {
			delete(r.byTitle, title)
			return nil
		}
	}
	return domain.ErrPortfolioItemNotFound
}

func newTestFixtures() (*Fixtures, *memUserRepo, *memServiceRepo, *memPortfolioRepo) {
	users := &memUserRepo{byEmail: make(map[string]*domain.User)}
	services := &memServiceRepo{byName: make(map[string]*domain.Service)}
	portfolio := &memPortfolioRepo{byTitle: make(map[string]*domain.PortfolioItem)}

	f := &Fixtures{
		Users:         users,
		Services:      services,
		Portfolio:     portfolio,
		AdminEmail:    "admin@agency.test",
		AdminPassword: "admin-pass",
		Log:           zerolog.Nop(),
	}
	return f, users, services, portfolio
}

func TestFixtures_Apply_FreshDatabase(t *testing.T) {
	f, users, services, portfolio := newTestFixtures()

	if err := f.Apply(context.Background()); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	admin, err := users.FindByEmail(context.Background(), "admin@agency.test")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin-pass")); err != nil {
		t.Fatalf("admin password not hashed correctly: %v", err)
	}

	if services.inserts != 7 {
		t.Fatalf("expected 7 seeded services, got %d", services.inserts)
	}
	seo, err := services.FindByName(context.Background(), "SEO Optimization")
	if err != nil {
		t.Fatalf("expected SEO Optimization in catalog: %v", err)
	}
	if seo.CreatedBy != admin.ID {
		t.Fatalf("seeded services must be owned by the admin, got %s", seo.CreatedBy)
	}
	if len(seo.Fields) == 0 {
		t.Fatalf("seeded service has no intake schema")
	}

	if portfolio.inserts != 4 {
		t.Fatalf("expected 4 seeded portfolio items, got %d", portfolio.inserts)
	}
}

func TestFixtures_Apply_Idempotent(t *testing.T) {
	f, users, services, portfolio := newTestFixtures()

	if err := f.Apply(context.Background()); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if err := f.Apply(context.Background()); err != nil {
		t.Fatalf("second apply failed: %v", err)
	}

	if users.creates != 1 {
		t.Fatalf("admin created %d times", users.creates)
	}
	if services.inserts != 7 {
		t.Fatalf("services inserted %d times", services.inserts)
	}
	if portfolio.inserts != 4 {
		t.Fatalf("portfolio items inserted %d times", portfolio.inserts)
	}
}

// An existing admin account is reused even if it was created by hand with a
// different password; seeding never overwrites credentials.
func TestFixtures_Apply_ExistingAdminUntouched(t *testing.T) {
	f, users, _, _ := newTestFixtures()

	hash, _ := bcrypt.GenerateFromPassword([]byte("custom-pass"), 10)
	if _, err := users.Create(context.Background(), &domain.User{
		Name:         "Owner",
		Email:        "admin@agency.test",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("precreate admin: %v", err)
	}

	if err := f.Apply(context.Background()); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	admin, err := users.FindByEmail(context.Background(), "admin@agency.test")
	if err != nil {
		t.Fatalf("admin lookup failed: %v", err)
	}
	if admin.Name != "Owner" {
		t.Fatalf("existing admin was replaced: %+v", admin)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("custom-pass")) != nil {
		t.Fatalf("existing admin password was overwritten")
	}
}
