package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goliatone/go-forum/auth"
)

// Post is a forum post authored by a user
type Post struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Topic       string               `bson:"topic" json:"topic,omitempty"`
	Description string               `bson:"description" json:"description,omitempty"`
	Category    string               `bson:"category" json:"category,omitempty"`
	UserID      primitive.ObjectID   `bson:"user" json:"user,omitempty"`
	Likes       []primitive.ObjectID `bson:"likes" json:"likes"`
	Deleted     bool                 `bson:"deleted" json:"-"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at,omitempty"`
}

// Posts is the post store
type Posts interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	ListByUser(ctx context.Context, userID string) ([]*Post, error)
}

type posts struct {
	col *mongo.Collection
}

var _ Posts = (*posts)(nil)

// NewPostsRepository creates the Mongo backed post store
func NewPostsRepository(db *mongo.Database) Posts {
	return &posts{col: db.Collection("posts")}
}

func (r *posts) Create(ctx context.Context, post *Post) (*Post, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}

	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return post, nil
}

// ListByUser returns the user's posts that are not deleted, newest first
func (r *posts) ListByUser(ctx context.Context, userID string) ([]*Post, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, auth.ErrIdentityNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"user": oid, "deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*Post{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	return records, nil
}
