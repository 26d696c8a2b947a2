package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/listing"
	"github.com/newsdesk/news-api/internal/core/ports"
)

// newsListing configures the listing engine for the news collection.
// Search matches title or description as substrings, or the owning author
// id exactly.
var newsListing = listing.Config[domain.News]{
	Search: []func(domain.News) string{
		func(n domain.News) string { return n.Title },
		func(n domain.News) string { return n.Description },
	},
	Exact: []func(domain.News) string{
		func(n domain.News) string { return n.AuthorID },
	},
	Sort: map[string]listing.Comparator[domain.News]{
		"Title":           listing.ByString(func(n domain.News) string { return n.Title }),
		"Description":     listing.ByString(func(n domain.News) string { return n.Description }),
		"PublicationDate": listing.ByInt64(func(n domain.News) int64 { return n.PublicationDate.Unix() }),
	},
	Default: listing.ByInt64(func(n domain.News) int64 { return n.ID }),
}

// NewsService implements the content use cases: image-backed news CRUD
// plus the shared listing contract.
type NewsService struct {
	repo    ports.NewsRepository
	authors ports.AuthorStore
	images  ports.ImageStore
	logger  zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, authors ports.AuthorStore, images ports.ImageStore, logger zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, authors: authors, images: images, logger: logger}
}

// Create validates the author reference and publication date, uploads the
// image, and persists the record with the returned URL. If persistence
// fails after a successful upload the stored object is orphaned; no
// compensating delete exists.
func (s *NewsService) Create(ctx context.Context, input ports.CreateNewsInput) (*ports.NewsResult, error) {
	author, err := s.authors.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}

	if !domain.PublicationDateInWindow(input.PublicationDate, time.Now()) {
		return nil, domain.ErrInvalidPublicationDate
	}

	imageURL, err := s.images.Upload(ctx, input.Image.Filename, input.Image.Content, input.Image.Size)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.News{
		Title:           input.Title,
		Description:     input.Description,
		ImageURL:        imageURL,
		AuthorID:        author.ID,
		PublicationDate: input.PublicationDate,
		CreationDate:    time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("image_url", imageURL).Msg("news insert failed after image upload")
		return nil, err
	}

	s.logger.Info().Int64("news_id", created.ID).Str("author_id", author.ID).Msg("news created")

	return s.result(created, author), nil
}

// GetByID returns the record with its author resolved.
func (s *NewsService) GetByID(ctx context.Context, id int64) (*ports.NewsResult, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withAuthor(ctx, item), nil
}

// Update applies changes to an existing record. A supplied image is
// uploaded and overwrites the stored URL; the previous object is not
// deleted. The creation timestamp is immutable.
func (s *NewsService) Update(ctx context.Context, id int64, input ports.UpdateNewsInput) (*ports.NewsResult, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.authors.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}

	if !domain.PublicationDateInWindow(input.PublicationDate, time.Now()) {
		return nil, domain.ErrInvalidPublicationDate
	}

	if input.Image != nil {
		imageURL, err := s.images.Upload(ctx, input.Image.Filename, input.Image.Content, input.Image.Size)
		if err != nil {
			return nil, err
		}
		item.ImageURL = imageURL
	}

	item.Title = input.Title
	item.Description = input.Description
	item.AuthorID = author.ID
	item.PublicationDate = input.PublicationDate

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return s.result(item, author), nil
}

// Delete removes the record and returns its last state. The underlying
// image is not deleted from storage.
func (s *NewsService) Delete(ctx context.Context, id int64) (*ports.NewsResult, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.withAuthor(ctx, item)

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("news_id", id).Msg("news deleted")
	return result, nil
}

// List pages through the news collection via the listing engine.
func (s *NewsService) List(ctx context.Context, params ports.ListParams) ([]ports.NewsResult, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	page := listing.Apply(items, newsListing, params)

	results := make([]ports.NewsResult, 0, len(page))
	for _, item := range page {
		results = append(results, *s.withAuthor(ctx, &item))
	}
	return results, nil
}

// Count returns the number of news items matching search, unpaginated.
func (s *NewsService) Count(ctx context.Context, search string) (int, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return listing.Count(items, newsListing, search), nil
}

func (s *NewsService) result(item *domain.News, author *domain.Author) *ports.NewsResult {
	return &ports.NewsResult{
		News: *item,
		Author: ports.AuthorSummary{
			ID:        author.ID,
			FirstName: author.FirstName,
			LastName:  author.LastName,
			UserName:  author.UserName,
			Email:     author.Email,
		},
	}
}

// withAuthor resolves the owning author, tolerating a missing one (a
// record can briefly outlive its author mid-cascade).
func (s *NewsService) withAuthor(ctx context.Context, item *domain.News) *ports.NewsResult {
	author, err := s.authors.FindByID(ctx, item.AuthorID)
	if err != nil {
		if !errors.Is(err, domain.ErrAuthorNotFound) {
			s.logger.Warn().Err(err).Str("author_id", item.AuthorID).
				Int64("news_id", item.ID).Msg("author lookup failed")
		}
		return &ports.NewsResult{News: *item}
	}
	return s.result(item, author)
}
