package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/models"
)

type Store struct {
	client *mongo.Client
	blogs  *mongo.Collection
}

func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Store{
		client: client,
		blogs:  client.Database(dbName).Collection("blogs"),
	}, nil
}

func (s *Store) Close(ctx context.Context) {
	if s.client != nil {
		_ = s.client.Disconnect(ctx)
	}
}

// ListQuery is a filtered, paginated listing request. Page and Limit are
// 1-indexed and already coerced to positive values by the caller.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// blogFilter builds the Mongo filter: exact category match AND a
// case-insensitive substring match over title or content.
func blogFilter(q ListQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": re},
			{"content": re},
		}
	}
	return filter
}

func (s *Store) CreateBlog(ctx context.Context, blog models.Blog) (*models.Blog, error) {
	now := time.Now().UTC()
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.TravelTags == nil {
		blog.TravelTags = []string{}
	}
	if blog.Media == nil {
		blog.Media = []string{}
	}
	if _, err := s.blogs.InsertOne(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return &blog, nil
}

// GetBlogByID returns nil, nil when no blog matches. A malformed id hex
// behaves as not found rather than an error.
func (s *Store) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var blog models.Blog
	err = s.blogs.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &blog, nil
}

// ListBlogs returns one page of blogs sorted by publishingDate descending,
// plus the total count of matching documents regardless of pagination.
func (s *Store) ListBlogs(ctx context.Context, q ListQuery) ([]models.Blog, int64, error) {
	filter := blogFilter(q)
	opts := options.Find().
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit)).
		SetSort(bson.D{{Key: "publishingDate", Value: -1}})

	cursor, err := s.blogs.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	blogs := make([]models.Blog, 0, q.Limit)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, fmt.Errorf("decode blogs: %w", err)
	}

	total, err := s.blogs.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}
	return blogs, total, nil
}

// SaveBlog rewrites the whole document in place and bumps updatedAt.
func (s *Store) SaveBlog(ctx context.Context, blog *models.Blog) error {
	blog.UpdatedAt = time.Now().UTC()
	if _, err := s.blogs.ReplaceOne(ctx, bson.M{"_id": blog.ID}, blog); err != nil {
		return fmt.Errorf("save blog: %w", err)
	}
	return nil
}

// DeleteBlog reports whether a document was actually removed.
func (s *Store) DeleteBlog(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := s.blogs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete blog: %w", err)
	}
	return res.DeletedCount > 0, nil
}
