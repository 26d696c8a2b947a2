package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
	"github.com/newsdesk/news-api/internal/core/token"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubAuthorStore struct {
	authors   map[string]*domain.Author
	roles     map[string][]string
	roleNames map[string]struct{}
	nextID    int
}

func newStubAuthorStore() *stubAuthorStore {
	return &stubAuthorStore{
		authors: make(map[string]*domain.Author),
		roles:   make(map[string][]string),
		roleNames: map[string]struct{}{
			domain.RoleUser:  {},
			domain.RoleAdmin: {},
		},
	}
}

func cloneAuthor(a *domain.Author) *domain.Author {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (s *stubAuthorStore) FindByID(_ context.Context, id string) (*domain.Author, error) {
	if a, ok := s.authors[id]; ok {
		return cloneAuthor(a), nil
	}
	return nil, domain.ErrAuthorNotFound
}

func (s *stubAuthorStore) FindByUsername(_ context.Context, username string) (*domain.Author, error) {
	for _, a := range s.authors {
		if a.UserName == username {
			return cloneAuthor(a), nil
		}
	}
	return nil, domain.ErrAuthorNotFound
}

func (s *stubAuthorStore) FindByEmail(_ context.Context, email string) (*domain.Author, error) {
	for _, a := range s.authors {
		if a.Email == email {
			return cloneAuthor(a), nil
		}
	}
	return nil, domain.ErrAuthorNotFound
}

func (s *stubAuthorStore) Create(_ context.Context, author *domain.Author) (*domain.Author, error) {
	// Mirrors the store's own uniqueness enforcement.
	for _, a := range s.authors {
		if a.UserName == author.UserName {
			return nil, domain.ErrUserExists
		}
		if a.Email == author.Email {
			return nil, domain.ErrEmailExists
		}
	}
	s.nextID++
	clone := cloneAuthor(author)
	clone.ID = fmt.Sprintf("author-%d", s.nextID)
	s.authors[clone.ID] = clone
	return cloneAuthor(clone), nil
}

func (s *stubAuthorStore) Update(_ context.Context, author *domain.Author) error {
	if _, ok := s.authors[author.ID]; !ok {
		return domain.ErrAuthorNotFound
	}
	s.authors[author.ID] = cloneAuthor(author)
	return nil
}

func (s *stubAuthorStore) Delete(_ context.Context, id string) error {
	if _, ok := s.authors[id]; !ok {
		return domain.ErrAuthorNotFound
	}
	delete(s.authors, id)
	delete(s.roles, id)
	return nil
}

func (s *stubAuthorStore) VerifyPassword(author *domain.Author, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte(password)) == nil
}

func (s *stubAuthorStore) GetRoles(_ context.Context, id string) ([]string, error) {
	return slices.Clone(s.roles[id]), nil
}

func (s *stubAuthorStore) AddRole(_ context.Context, id, roleName string) error {
	s.roles[id] = append(s.roles[id], roleName)
	return nil
}

func (s *stubAuthorStore) RoleExists(_ context.Context, roleName string) (bool, error) {
	_, ok := s.roleNames[roleName]
	return ok, nil
}

func (s *stubAuthorStore) ListAll(_ context.Context) ([]domain.Author, error) {
	all := make([]domain.Author, 0, len(s.authors))
	for _, a := range s.authors {
		all = append(all, *a)
	}
	return all, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testLogger = zerolog.Nop()

func newAuthorService(store *stubAuthorStore, news ports.NewsRepository) *AuthorService {
	if news == nil {
		news = newStubNewsRepo()
	}
	issuer := token.NewIssuer(token.Config{
		Secret:     "test-secret",
		Issuer:     "news-api",
		Audience:   "news-app",
		ExpiryDays: 2,
	})
	return NewAuthorService(store, news, issuer, testLogger)
}

func registerInput(username, email string) ports.RegisterInput {
	return ports.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		UserName:  username,
		Email:     email,
		Password:  "s3cret!pass",
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthorService_Register_Success(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	result, err := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if result.Author.UserName != "ada" || result.Author.Email != "ada@example.com" {
		t.Fatalf("unexpected profile: %+v", result.Author)
	}
	if result.Token == "" {
		t.Fatalf("expected a session credential")
	}
	if !slices.Contains(result.Roles, domain.RoleUser) {
		t.Fatalf("expected default role grant, got %v", result.Roles)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("credential does not verify: %v", err)
	}
	if claims["sub"] != "ada" || claims["email"] != "ada@example.com" {
		t.Fatalf("claims do not match input: %+v", claims)
	}

	wantExpiry := time.Now().UTC().AddDate(0, 0, 2)
	if d := result.ExpiresOn.Sub(wantExpiry); d < -time.Minute || d > time.Minute {
		t.Fatalf("expected expiry ~%v, got %v", wantExpiry, result.ExpiresOn)
	}

	if stored, _ := store.FindByUsername(context.Background(), "ada"); stored.PasswordHash == "s3cret!pass" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestAuthorService_Register_DuplicateUsername(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	if _, err := svc.Register(context.Background(), registerInput("ada", "ada@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), registerInput("ada", "other@example.com"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(store.authors) != 1 {
		t.Fatalf("expected no second author, got %d", len(store.authors))
	}
}

func TestAuthorService_Register_DuplicateEmail(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	_, _ = svc.Register(context.Background(), registerInput("ada", "ada@example.com"))

	_, err := svc.Register(context.Background(), registerInput("grace", "ada@example.com"))
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthorService_Login_Success(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	_, _ = svc.Register(context.Background(), registerInput("ada", "ada@example.com"))

	result, err := svc.Login(context.Background(), "ada@example.com", "s3cret!pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" || result.Author.UserName != "ada" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAuthorService_Login_UniformFailure(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	_, _ = svc.Register(context.Background(), registerInput("ada", "ada@example.com"))

	_, wrongPassword := svc.Login(context.Background(), "ada@example.com", "not-the-password")
	_, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPassword, domain.ErrInvalidLogin) || !errors.Is(unknownEmail, domain.ErrInvalidLogin) {
		t.Fatalf("expected ErrInvalidLogin for both, got %v and %v", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

// ---------------------------------------------------------------------------
// AddRole
// ---------------------------------------------------------------------------

func TestAuthorService_AddRole(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	reg, _ := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	id := reg.Author.ID

	if err := svc.AddRole(context.Background(), id, domain.RoleAdmin); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	roles, _ := store.GetRoles(context.Background(), id)
	if !slices.Contains(roles, domain.RoleAdmin) {
		t.Fatalf("expected Admin in %v", roles)
	}

	if err := svc.AddRole(context.Background(), id, domain.RoleAdmin); !errors.Is(err, domain.ErrRoleAlreadyAssigned) {
		t.Fatalf("expected ErrRoleAlreadyAssigned, got %v", err)
	}
	roles, _ = store.GetRoles(context.Background(), id)
	if n := countOf(roles, domain.RoleAdmin); n != 1 {
		t.Fatalf("expected a single Admin grant, got %d", n)
	}
}

func countOf(roles []string, name string) int {
	n := 0
	for _, r := range roles {
		if r == name {
			n++
		}
	}
	return n
}

func TestAuthorService_AddRole_UnknownUserOrRole(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	reg, _ := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))

	if err := svc.AddRole(context.Background(), "missing", domain.RoleAdmin); !errors.Is(err, domain.ErrInvalidUserOrRole) {
		t.Fatalf("expected ErrInvalidUserOrRole for unknown user, got %v", err)
	}
	if err := svc.AddRole(context.Background(), reg.Author.ID, "Superuser"); !errors.Is(err, domain.ErrInvalidUserOrRole) {
		t.Fatalf("expected ErrInvalidUserOrRole for unknown role, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Profile CRUD
// ---------------------------------------------------------------------------

func TestAuthorService_GetAuthorByID_MintsFreshToken(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	reg, _ := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))

	first, err := svc.GetAuthorByID(context.Background(), reg.Author.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	second, _ := svc.GetAuthorByID(context.Background(), reg.Author.ID)

	if first.Token == "" || first.Token == second.Token {
		t.Fatalf("expected a distinct credential per read")
	}
}

func TestAuthorService_GetAuthorByID_Unknown(t *testing.T) {
	svc := newAuthorService(newStubAuthorStore(), nil)

	if _, err := svc.GetAuthorByID(context.Background(), "missing"); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestAuthorService_UpdateAuthor_CollisionChecksPrecedeWrite(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	_, _ = svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	other, _ := svc.Register(context.Background(), registerInput("grace", "grace@example.com"))

	_, err := svc.UpdateAuthor(context.Background(), other.Author.ID, ports.UpdateAuthorInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		UserName:  "ada", // collides with a different author
		Email:     "grace@example.com",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	unchanged, _ := store.FindByID(context.Background(), other.Author.ID)
	if unchanged.UserName != "grace" || unchanged.FirstName != "Ada" {
		t.Fatalf("update was partially committed: %+v", unchanged)
	}
}

func TestAuthorService_UpdateAuthor_KeepingOwnIdentityIsNotAConflict(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	reg, _ := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))

	result, err := svc.UpdateAuthor(context.Background(), reg.Author.ID, ports.UpdateAuthorInput{
		FirstName: "Augusta",
		LastName:  "King",
		UserName:  "ada",
		Email:     "ada@example.com",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Author.FirstName != "Augusta" {
		t.Fatalf("update not applied: %+v", result.Author)
	}
}

func TestAuthorService_DeleteAuthor_CascadesToNews(t *testing.T) {
	store := newStubAuthorStore()
	news := newStubNewsRepo()
	svc := newAuthorService(store, news)

	reg, _ := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))

	_, _ = news.Create(context.Background(), &domain.News{Title: "one", AuthorID: reg.Author.ID})
	_, _ = news.Create(context.Background(), &domain.News{Title: "two", AuthorID: reg.Author.ID})
	_, _ = news.Create(context.Background(), &domain.News{Title: "other", AuthorID: "someone-else"})

	if _, err := svc.DeleteAuthor(context.Background(), reg.Author.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.FindByID(context.Background(), reg.Author.ID); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("author still present: %v", err)
	}
	remaining, _ := news.ListAll(context.Background())
	if len(remaining) != 1 || remaining[0].Title != "other" {
		t.Fatalf("cascade left wrong records: %+v", remaining)
	}
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

func TestAuthorService_ListAuthors_SortsAndPages(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	names := []string{"carol", "alice", "bob", "dave"}
	for _, n := range names {
		_, _ = svc.Register(context.Background(), registerInput(n, n+"@example.com"))
	}

	page, err := svc.ListAuthors(context.Background(), ports.ListParams{
		SortType:   "UserName",
		SortOrder:  "asc",
		PageSize:   2,
		PageNumber: 2,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page) != 2 || page[0].Author.UserName != "carol" || page[1].Author.UserName != "dave" {
		t.Fatalf("unexpected page: %+v", page)
	}
	for _, r := range page {
		if r.Token == "" {
			t.Fatalf("listed profile missing credential")
		}
	}
}

func TestAuthorService_CountAuthors_Filtered(t *testing.T) {
	store := newStubAuthorStore()
	svc := newAuthorService(store, nil)

	_, _ = svc.Register(context.Background(), registerInput("alice", "alice@example.com"))
	_, _ = svc.Register(context.Background(), registerInput("alina", "alina@example.com"))
	_, _ = svc.Register(context.Background(), registerInput("bob", "bob@example.com"))

	n, err := svc.CountAuthors(context.Background(), "ali")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}
