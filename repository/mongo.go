// Package repository persists forum records in MongoDB and exposes the
// capability interfaces the auth core and the HTTP layer consume.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect dials the MongoDB deployment at uri and verifies the connection
// with a ping before returning the client.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// Manager exposes all repositories over a single database handle
type Manager interface {
	Users() Users
	Posts() Posts
	EnsureIndexes(ctx context.Context) error
}

type mngr struct {
	db    *mongo.Database
	users Users
	posts Posts
}

// NewManager builds the repositories for the given database. The bcrypt
// cost is threaded down to the users repository, which owns credential
// hashing for its records.
func NewManager(db *mongo.Database, hashCost int) Manager {
	return &mngr{
		db:    db,
		users: NewUsersRepository(db, hashCost),
		posts: NewPostsRepository(db),
	}
}

func (m *mngr) Users() Users {
	return m.users
}

func (m *mngr) Posts() Posts {
	return m.posts
}

// EnsureIndexes creates the unique indexes backing the username and email
// invariants. Soft delete id-prefixes both values, so deleted records
// never collide with live ones under these indexes.
func (m *mngr) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}
