package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

const newsCollection = "news"

// NewsRepository persists articles in the news collection.
type NewsRepository struct {
	col *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{col: db.Collection(newsCollection)}
}

type newsDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Content       string             `bson:"content"`
	Author        string             `bson:"author"`
	UserID        string             `bson:"userId,omitempty"`
	PublishedDate time.Time          `bson:"publishedDate"`
	Category      string             `bson:"category"`
	Tags          []string           `bson:"tags"`
	IsPublished   bool               `bson:"isPublished"`
	Summary       string             `bson:"summary"`
	ImageURL      string             `bson:"imageUrl,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d *newsDoc) toDomain() *domain.News {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.News{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Content:       d.Content,
		Author:        d.Author,
		UserID:        d.UserID,
		PublishedDate: d.PublishedDate,
		Category:      d.Category,
		Tags:          tags,
		IsPublished:   d.IsPublished,
		Summary:       d.Summary,
		ImageURL:      d.ImageURL,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *NewsRepository) FindAll(ctx context.Context) ([]*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findMany(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*domain.News, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNewsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc newsDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *NewsRepository) FindByCategory(ctx context.Context, category string) ([]*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"category": exactFold(category)}
	return r.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *NewsRepository) FindPublished(ctx context.Context) ([]*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"isPublished": true}
	return r.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}}))
}

// Search matches term as a case-insensitive pattern over title, content and
// summary, or as an exact member of the tag list.
func (r *NewsRepository) Search(ctx context.Context, term string) ([]*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: term, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"content": pattern},
		bson.M{"summary": pattern},
		bson.M{"tags": term},
	}}
	return r.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *NewsRepository) Insert(ctx context.Context, news *domain.News) (*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := newsDoc{
		Title:         news.Title,
		Content:       news.Content,
		Author:        news.Author,
		UserID:        news.UserID,
		PublishedDate: news.PublishedDate,
		Category:      news.Category,
		Tags:          news.Tags,
		IsPublished:   news.IsPublished,
		Summary:       news.Summary,
		ImageURL:      news.ImageURL,
		CreatedAt:     news.CreatedAt,
		UpdatedAt:     news.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert news: unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *NewsRepository) Update(ctx context.Context, id string, input ports.UpdateNewsInput) (*domain.News, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNewsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Content != "" {
		set["content"] = input.Content
	}
	if input.Author != "" {
		set["author"] = input.Author
	}
	if input.Category != "" {
		set["category"] = input.Category
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.IsPublished != nil {
		set["isPublished"] = *input.IsPublished
	}
	if input.Summary != "" {
		set["summary"] = input.Summary
	}
	if input.ImageURL != nil {
		set["imageUrl"] = *input.ImageURL
	}
	if input.PublishedDate != nil {
		set["publishedDate"] = *input.PublishedDate
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNewsNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNewsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.News, error) {
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find news: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []newsDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}

	items := make([]*domain.News, len(docs))
	for i := range docs {
		items[i] = docs[i].toDomain()
	}
	return items, nil
}
