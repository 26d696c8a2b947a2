package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/newsdesk/news-api/internal/core/domain"
)

const (
	newsCollection     = "news"
	countersCollection = "counters"
	newsCounterKey     = "news"
)

// NewsRepository persists news items. Identifiers are monotonic integers
// issued from a counters document, so they behave like the relational
// store's auto-increment column.
type NewsRepository struct {
	news     *mongo.Collection
	counters *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{
		news:     db.Collection(newsCollection),
		counters: db.Collection(countersCollection),
	}
}

type newsDoc struct {
	ID              int64     `bson:"_id"`
	Title           string    `bson:"title"`
	Description     string    `bson:"description"`
	ImageURL        string    `bson:"image_url"`
	AuthorID        string    `bson:"author_id"`
	PublicationDate time.Time `bson:"publication_date"`
	CreationDate    time.Time `bson:"creation_date"`
}

func (d newsDoc) toDomain() domain.News {
	return domain.News{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		ImageURL:        d.ImageURL,
		AuthorID:        d.AuthorID,
		PublicationDate: d.PublicationDate,
		CreationDate:    d.CreationDate,
	}
}

// nextID atomically increments and returns the news id counter.
func (r *NewsRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": newsCounterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next news id: %w", err)
	}
	return counter.Seq, nil
}

func (r *NewsRepository) Create(ctx context.Context, item *domain.News) (*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := newsDoc{
		ID:              id,
		Title:           item.Title,
		Description:     item.Description,
		ImageURL:        item.ImageURL,
		AuthorID:        item.AuthorID,
		PublicationDate: item.PublicationDate,
		CreationDate:    item.CreationDate,
	}
	if _, err := r.news.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc newsDoc
	if err := r.news.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	item := doc.toDomain()
	return &item, nil
}

func (r *NewsRepository) Update(ctx context.Context, item *domain.News) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.news.UpdateOne(ctx, bson.M{"_id": item.ID}, bson.M{"$set": bson.M{
		"title":            item.Title,
		"description":      item.Description,
		"image_url":        item.ImageURL,
		"author_id":        item.AuthorID,
		"publication_date": item.PublicationDate,
	}})
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.news.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.news.DeleteMany(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, fmt.Errorf("delete news by author: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *NewsRepository) ListAll(ctx context.Context) ([]domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.news.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer cur.Close(ctx)

	var all []domain.News
	for cur.Next(ctx) {
		var doc newsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode news: %w", err)
		}
		all = append(all, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return all, nil
}
