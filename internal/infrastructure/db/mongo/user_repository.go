package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

const usersCollection = "users"

// UserRepository persists users in the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

// userDoc is the stored shape of a user. Field names match the documents
// written by the original deployment of this API.
type userDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Username        string             `bson:"username"`
	Email           string             `bson:"email"`
	PasswordHash    string             `bson:"passwordHash"`
	FirstName       string             `bson:"firstName"`
	LastName        string             `bson:"lastName"`
	Role            string             `bson:"role"`
	IsActive        bool               `bson:"isActive"`
	ProfileImageURL string             `bson:"profileImageUrl,omitempty"`
	Bio             string             `bson:"bio,omitempty"`
	DateOfBirth     *time.Time         `bson:"dateOfBirth,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
	LastLoginAt     *time.Time         `bson:"lastLoginAt,omitempty"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:              d.ID.Hex(),
		Username:        d.Username,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Role:            d.Role,
		IsActive:        d.IsActive,
		ProfileImageURL: d.ProfileImageURL,
		Bio:             d.Bio,
		DateOfBirth:     d.DateOfBirth,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		LastLoginAt:     d.LastLoginAt,
	}
}

// exactFold builds a case-insensitive exact-match filter value.
func exactFold(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findMany(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a syntactically valid id: short-circuit without a query.
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": exactFold(username)})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": exactFold(email)})
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": exactFold(identifier)},
		bson.M{"email": exactFold(identifier)},
	}}
	return r.findOne(ctx, filter)
}

func (r *UserRepository) FindByRole(ctx context.Context, role string) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"role": exactFold(role)}
	return r.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *UserRepository) Search(ctx context.Context, term string) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"username": pattern},
		bson.M{"firstName": pattern},
		bson.M{"lastName": pattern},
		bson.M{"email": pattern},
	}}
	return r.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Username:        user.Username,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Role:            user.Role,
		IsActive:        user.IsActive,
		ProfileImageURL: user.ProfileImageURL,
		Bio:             user.Bio,
		DateOfBirth:     user.DateOfBirth,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
		LastLoginAt:     user.LastLoginAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert user: unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Username != "" {
		set["username"] = input.Username
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.FirstName != "" {
		set["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		set["lastName"] = input.LastName
	}
	if input.Role != "" {
		set["role"] = input.Role
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if input.ProfileImageURL != nil {
		set["profileImageUrl"] = *input.ProfileImageURL
	}
	if input.Bio != nil {
		set["bio"] = *input.Bio
	}
	if input.DateOfBirth != nil {
		set["dateOfBirth"] = *input.DateOfBirth
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"lastLoginAt": at}})
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique natural-key indexes. The collation makes
// uniqueness case-insensitive, matching the lookup semantics.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	foldCollation := &options.Collation{Locale: "en", Strength: 2}
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(foldCollation),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(foldCollation),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.User, error) {
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, len(docs))
	for i := range docs {
		users[i] = docs[i].toDomain()
	}
	return users, nil
}

// duplicateKeyError maps a unique-index violation to the conflicting field.
func duplicateKeyError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "email") {
		return domain.ErrEmailTaken
	}
	return domain.ErrUsernameTaken
}
