package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/news-api/internal/core/domain"
)

const (
	authorsCollection = "authors"
	rolesCollection   = "roles"
)

// AuthorStore is the MongoDB-backed credential store. Username and email
// uniqueness is enforced by unique indexes; a duplicate write races through
// here as domain.ErrUserExists / domain.ErrEmailExists.
type AuthorStore struct {
	authors *mongo.Collection
	roles   *mongo.Collection
}

func NewAuthorStore(db *mongo.Database) *AuthorStore {
	return &AuthorStore{
		authors: db.Collection(authorsCollection),
		roles:   db.Collection(rolesCollection),
	}
}

type authorDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	UserName     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Roles        []string           `bson:"roles"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type roleDoc struct {
	Name string `bson:"name"`
}

func (d authorDoc) toDomain() *domain.Author {
	return &domain.Author{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		UserName:     d.UserName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (s *AuthorStore) findOne(ctx context.Context, filter bson.M) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc authorDoc
	if err := s.authors.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	return doc.toDomain(), nil
}

func (s *AuthorStore) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *AuthorStore) FindByUsername(ctx context.Context, username string) (*domain.Author, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *AuthorStore) FindByEmail(ctx context.Context, email string) (*domain.Author, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *AuthorStore) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.authors.InsertOne(ctx, authorDoc{
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		UserName:     author.UserName,
		Email:        author.Email,
		PasswordHash: author.PasswordHash,
		Roles:        []string{},
		CreatedAt:    author.CreatedAt,
		UpdatedAt:    author.UpdatedAt,
	})
	if err != nil {
		return nil, translateDuplicate(err, "insert author")
	}

	created := *author
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (s *AuthorStore) Update(ctx context.Context, author *domain.Author) error {
	oid, err := primitive.ObjectIDFromHex(author.ID)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.authors.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"first_name": author.FirstName,
		"last_name":  author.LastName,
		"username":   author.UserName,
		"email":      author.Email,
		"updated_at": author.UpdatedAt,
	}})
	if err != nil {
		return translateDuplicate(err, "update author")
	}
	if res.MatchedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (s *AuthorStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.authors.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

// VerifyPassword compares the candidate against the stored bcrypt hash.
func (s *AuthorStore) VerifyPassword(author *domain.Author, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte(password)) == nil
}

func (s *AuthorStore) GetRoles(ctx context.Context, id string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc authorDoc
	if err := s.authors.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("get roles: %w", err)
	}
	return doc.Roles, nil
}

func (s *AuthorStore) AddRole(ctx context.Context, id, roleName string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.authors.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"roles": roleName}})
	if err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (s *AuthorStore) RoleExists(ctx context.Context, roleName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := s.roles.CountDocuments(ctx, bson.M{"name": roleName})
	if err != nil {
		return false, fmt.Errorf("role exists: %w", err)
	}
	return n > 0, nil
}

func (s *AuthorStore) ListAll(ctx context.Context) ([]domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.authors.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer cur.Close(ctx)

	var all []domain.Author
	for cur.Next(ctx) {
		var doc authorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode author: %w", err)
		}
		all = append(all, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return all, nil
}

// EnsureIndexes creates the unique identity indexes and seeds the role
// catalog with the built-in role names.
func (s *AuthorStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.authors.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("author indexes: %w", err)
	}

	for _, name := range []string{domain.RoleUser, domain.RoleAdmin} {
		_, err := s.roles.UpdateOne(ctx,
			bson.M{"name": name},
			bson.M{"$setOnInsert": roleDoc{Name: name}},
			options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

// translateDuplicate maps a unique-index violation to the matching
// conflict error, inspecting the index name to tell username from email.
func translateDuplicate(err error, op string) error {
	if mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "email") {
			return domain.ErrEmailExists
		}
		return domain.ErrUserExists
	}
	return fmt.Errorf("%s: %w", op, err)
}
