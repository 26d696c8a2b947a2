package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/listing"
	"github.com/newsdesk/news-api/internal/core/ports"
	"github.com/newsdesk/news-api/internal/core/token"
)

// authorListing configures the listing engine for the author collection.
// Unknown sort names fall back to id ordering.
var authorListing = listing.Config[domain.Author]{
	Search: []func(domain.Author) string{
		func(a domain.Author) string { return a.FirstName },
		func(a domain.Author) string { return a.LastName },
		func(a domain.Author) string { return a.Email },
		func(a domain.Author) string { return a.UserName },
	},
	Sort: map[string]listing.Comparator[domain.Author]{
		"FirstName": listing.ByString(func(a domain.Author) string { return a.FirstName }),
		"LastName":  listing.ByString(func(a domain.Author) string { return a.LastName }),
		"Email":     listing.ByString(func(a domain.Author) string { return a.Email }),
		"UserName":  listing.ByString(func(a domain.Author) string { return a.UserName }),
	},
	Default: listing.ByString(func(a domain.Author) string { return a.ID }),
}

// AuthorService implements registration, login, role assignment, and
// profile CRUD over the credential store.
type AuthorService struct {
	store  ports.AuthorStore
	news   ports.NewsRepository
	issuer *token.Issuer
	logger zerolog.Logger
}

func NewAuthorService(store ports.AuthorStore, news ports.NewsRepository, issuer *token.Issuer, logger zerolog.Logger) *AuthorService {
	return &AuthorService{store: store, news: news, issuer: issuer, logger: logger}
}

// Register creates a new author, grants the default role, and issues a
// session credential. The username check runs before the email check; a
// concurrent duplicate write is surfaced by the store as the same conflict
// errors.
func (s *AuthorService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthorResult, error) {
	if _, err := s.store.FindByUsername(ctx, input.UserName); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrAuthorNotFound) {
		return nil, err
	}
	if _, err := s.store.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrAuthorNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.store.Create(ctx, &domain.Author{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.AddRole(ctx, created.ID, domain.RoleUser); err != nil {
		return nil, err
	}

	roles := []string{domain.RoleUser}
	cred, err := s.issuer.Issue(created, roles)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("author_id", created.ID).Str("username", created.UserName).Msg("author registered")

	return &ports.AuthorResult{Author: *created, Roles: roles, Token: cred.Token, ExpiresOn: cred.ExpiresOn}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the identical error so callers learn nothing about
// which one failed.
func (s *AuthorService) Login(ctx context.Context, email, password string) (*ports.AuthorResult, error) {
	author, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return nil, domain.ErrInvalidLogin
		}
		return nil, err
	}

	if !s.store.VerifyPassword(author, password) {
		return nil, domain.ErrInvalidLogin
	}

	roles, err := s.store.GetRoles(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	cred, err := s.issuer.Issue(author, roles)
	if err != nil {
		return nil, err
	}

	return &ports.AuthorResult{Author: *author, Roles: roles, Token: cred.Token, ExpiresOn: cred.ExpiresOn}, nil
}

// AddRole grants roleName to the author. Granting an already-held role is
// reported as a conflict, not silently ignored. No credential is reissued.
func (s *AuthorService) AddRole(ctx context.Context, userID, roleName string) error {
	author, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return domain.ErrInvalidUserOrRole
		}
		return err
	}

	exists, err := s.store.RoleExists(ctx, roleName)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrInvalidUserOrRole
	}

	roles, err := s.store.GetRoles(ctx, author.ID)
	if err != nil {
		return err
	}
	if slices.Contains(roles, roleName) {
		return domain.ErrRoleAlreadyAssigned
	}

	if err := s.store.AddRole(ctx, author.ID, roleName); err != nil {
		return err
	}

	s.logger.Info().Str("author_id", author.ID).Str("role", roleName).Msg("role granted")
	return nil
}

// GetAuthorByID returns the profile with a freshly minted credential.
// Every read mints a new token; callers must not assume token stability
// across repeated reads.
func (s *AuthorService) GetAuthorByID(ctx context.Context, id string) (*ports.AuthorResult, error) {
	author, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.store.GetRoles(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	cred, err := s.issuer.Issue(author, roles)
	if err != nil {
		return nil, err
	}

	return &ports.AuthorResult{Author: *author, Roles: roles, Token: cred.Token, ExpiresOn: cred.ExpiresOn}, nil
}

// UpdateAuthor applies profile changes. Username and email collisions with
// a different author fail before anything is written (validate-then-commit,
// no rollback path needed).
func (s *AuthorService) UpdateAuthor(ctx context.Context, id string, input ports.UpdateAuthorInput) (*ports.AuthorResult, error) {
	author, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if other, err := s.store.FindByUsername(ctx, input.UserName); err == nil && other.ID != author.ID {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrAuthorNotFound) {
		return nil, err
	}
	if other, err := s.store.FindByEmail(ctx, input.Email); err == nil && other.ID != author.ID {
		return nil, domain.ErrEmailExists
	} else if err != nil && !errors.Is(err, domain.ErrAuthorNotFound) {
		return nil, err
	}

	author.FirstName = input.FirstName
	author.LastName = input.LastName
	author.UserName = input.UserName
	author.Email = input.Email
	author.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, author); err != nil {
		return nil, err
	}

	return &ports.AuthorResult{Author: *author}, nil
}

// DeleteAuthor removes the account and cascades to the author's news
// records. Stored images are left behind (consistent with the upload leak
// policy elsewhere).
func (s *AuthorService) DeleteAuthor(ctx context.Context, id string) (*ports.AuthorResult, error) {
	author, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, author.ID); err != nil {
		return nil, err
	}

	removed, err := s.news.DeleteByAuthor(ctx, author.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", author.ID).Msg("cascade delete of news failed")
		return nil, err
	}

	s.logger.Info().Str("author_id", author.ID).Int64("news_removed", removed).Msg("author deleted")

	return &ports.AuthorResult{Author: *author}, nil
}

// ListAuthors pages through the author collection. Each listed profile
// carries a freshly issued credential, mirroring GetAuthorByID.
func (s *AuthorService) ListAuthors(ctx context.Context, params ports.ListParams) ([]ports.AuthorResult, error) {
	authors, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	page := listing.Apply(authors, authorListing, params)

	results := make([]ports.AuthorResult, 0, len(page))
	for _, author := range page {
		roles, err := s.store.GetRoles(ctx, author.ID)
		if err != nil {
			return nil, err
		}
		cred, err := s.issuer.Issue(&author, roles)
		if err != nil {
			return nil, err
		}
		results = append(results, ports.AuthorResult{
			Author:    author,
			Roles:     roles,
			Token:     cred.Token,
			ExpiresOn: cred.ExpiresOn,
		})
	}
	return results, nil
}

// CountAuthors returns the number of authors matching search, unpaginated.
func (s *AuthorService) CountAuthors(ctx context.Context, search string) (int, error) {
	authors, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return listing.Count(authors, authorListing, search), nil
}
