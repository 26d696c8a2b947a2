package ports

import (
	"context"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// AuthorStore wraps the external identity store. Uniqueness of username and
// email is enforced by the store itself; a concurrent duplicate write is
// reported as domain.ErrUserExists / domain.ErrEmailExists.
type AuthorStore interface {
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	FindByUsername(ctx context.Context, username string) (*domain.Author, error)
	FindByEmail(ctx context.Context, email string) (*domain.Author, error)
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id string) error
	// VerifyPassword reports whether password matches the stored hash.
	VerifyPassword(author *domain.Author, password string) bool
	GetRoles(ctx context.Context, id string) ([]string, error)
	AddRole(ctx context.Context, id, roleName string) error
	RoleExists(ctx context.Context, roleName string) (bool, error)
	// ListAll returns the full author collection for the listing engine.
	ListAll(ctx context.Context) ([]domain.Author, error)
}
