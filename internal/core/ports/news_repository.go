package ports

import (
	"context"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// NewsRepository defines persistence operations for news items. Create
// assigns the store's next monotonic identifier to the record.
type NewsRepository interface {
	Create(ctx context.Context, item *domain.News) (*domain.News, error)
	FindByID(ctx context.Context, id int64) (*domain.News, error)
	Update(ctx context.Context, item *domain.News) error
	Delete(ctx context.Context, id int64) error
	// DeleteByAuthor removes every item owned by the author and returns
	// how many were deleted.
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
	// ListAll returns the full news collection for the listing engine.
	ListAll(ctx context.Context) ([]domain.News, error)
}
