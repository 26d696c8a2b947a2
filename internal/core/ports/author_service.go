package ports

import (
	"context"
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	FirstName string
	LastName  string
	UserName  string
	Email     string
	Password  string
}

// UpdateAuthorInput carries the mutable profile fields.
type UpdateAuthorInput struct {
	FirstName string
	LastName  string
	UserName  string
	Email     string
}

// AuthorResult is an author profile together with the session credential
// minted for it. Token and ExpiresOn are empty for operations that do not
// issue a credential (update, delete).
type AuthorResult struct {
	Author    domain.Author
	Roles     []string
	Token     string
	ExpiresOn time.Time
}

// AuthorService defines the authorization use cases.
type AuthorService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthorResult, error)
	Login(ctx context.Context, email, password string) (*AuthorResult, error)
	AddRole(ctx context.Context, userID, roleName string) error
	GetAuthorByID(ctx context.Context, id string) (*AuthorResult, error)
	UpdateAuthor(ctx context.Context, id string, input UpdateAuthorInput) (*AuthorResult, error)
	DeleteAuthor(ctx context.Context, id string) (*AuthorResult, error)
	ListAuthors(ctx context.Context, params ListParams) ([]AuthorResult, error)
	CountAuthors(ctx context.Context, search string) (int, error)
}
