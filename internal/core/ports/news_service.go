package ports

import (
	"context"
	"io"
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// ImageUpload is an image payload received from a multipart request.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// CreateNewsInput carries all data needed to publish a news item.
type CreateNewsInput struct {
	Title           string
	Description     string
	AuthorID        string
	PublicationDate time.Time
	Image           ImageUpload
}

// UpdateNewsInput mirrors CreateNewsInput; Image is optional and, when
// present, replaces the stored image URL.
type UpdateNewsInput struct {
	Title           string
	Description     string
	AuthorID        string
	PublicationDate time.Time
	Image           *ImageUpload
}

// AuthorSummary is the owning author as embedded in news responses.
type AuthorSummary struct {
	ID        string
	FirstName string
	LastName  string
	UserName  string
	Email     string
}

// NewsResult is a news record with its author resolved.
type NewsResult struct {
	News   domain.News
	Author AuthorSummary
}

// NewsService defines the content use cases.
type NewsService interface {
	Create(ctx context.Context, input CreateNewsInput) (*NewsResult, error)
	GetByID(ctx context.Context, id int64) (*NewsResult, error)
	Update(ctx context.Context, id int64, input UpdateNewsInput) (*NewsResult, error)
	Delete(ctx context.Context, id int64) (*NewsResult, error)
	List(ctx context.Context, params ListParams) ([]NewsResult, error)
	Count(ctx context.Context, search string) (int, error)
}
