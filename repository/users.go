package repository

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

	"github.com/goliatone/go-forum/auth"
)

// ErrUsernameTaken is the signup conflict for a username already in use.
// Unlike login failures, signup conflicts are deliberately field specific
// so the client can correct the offending field.
var ErrUsernameTaken = errors.New("username already exist")

// ErrEmailTaken is the signup conflict for an email already in use
var ErrEmailTaken = errors.New("email already exist")

// UserUpdate carries the mutable profile fields. Empty fields are left
// untouched. Credentials are not updatable through this path.
type UserUpdate struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Users is the user store. Lookups by username or id never observe soft
// deleted records.
type Users interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Register(ctx context.Context, user *User, password string) (*User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*User, error)
	SoftDelete(ctx context.Context, id string) (*User, error)
}

type users struct {
	col      *mongo.Collection
	hashCost int
}

var _ Users = (*users)(nil)

// NewUsersRepository creates the Mongo backed user store
func NewUsersRepository(db *mongo.Database, hashCost int) Users {
	return &users{
		col:      db.Collection("users"),
		hashCost: hashCost,
	}
}

func (r *users) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.findOne(ctx, bson.M{"username": username, "deleted": false})
}

func (r *users) GetByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// an unparseable id can never address a record
		return nil, auth.ErrIdentityNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "deleted": false})
}

// Register enforces the uniqueness invariants before persisting: username
// first, then email, each with its own conflict error. The password is
// hashed here so a cleartext credential never reaches the database.
func (r *users) Register(ctx context.Context, user *User, password string) (*User, error) {
	if err := r.ensureAvailable(ctx, "username", user.Username, primitive.NilObjectID, ErrUsernameTaken); err != nil {
		return nil, err
	}

	if err := r.ensureAvailable(ctx, "email", user.Email, primitive.NilObjectID, ErrEmailTaken); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password, r.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.PasswordHash = hash
	user.Deleted = false
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyConflict(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *users) Update(ctx context.Context, id string, update UserUpdate) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrIdentityNotFound
	}

	if update.Email != "" {
		if err := r.ensureAvailable(ctx, "email", update.Email, oid, ErrEmailTaken); err != nil {
			return nil, err
		}
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Phone != "" {
		set["phone"] = update.Phone
	}
	if update.Email != "" {
		set["email"] = update.Email
	}

	after := options.After
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "deleted": false},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	)

	user, err := decodeUser(res)
	if err != nil {
		// the unique index can still reject a race the pre-check missed
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyConflict(err)
		}
		return nil, err
	}

	return user, nil
}

// SoftDelete marks the record deleted and prefixes username and email with
// the record id so both values become available for new signups.
func (r *users) SoftDelete(ctx context.Context, id string) (*User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	after := options.After
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": user.ID, "deleted": false},
		bson.M{"$set": bson.M{
			"deleted":    true,
			"username":   id + user.Username,
			"email":      id + user.Email,
			"updated_at": time.Now(),
		}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	)

	return decodeUser(res)
}

func (r *users) findOne(ctx context.Context, filter bson.M) (*User, error) {
	return decodeUser(r.col.FindOne(ctx, filter))
}

// ensureAvailable rejects a value already held by a record other than the
// one being written. Deleted records keep their id-prefixed values, so no
// exclusion filter for them is needed.
func (r *users) ensureAvailable(ctx context.Context, field, value string, excluding primitive.ObjectID, conflict error) error {
	filter := bson.M{field: value}
	if !excluding.IsZero() {
		filter["_id"] = bson.M{"$ne": excluding}
	}

	err := r.col.FindOne(ctx, filter).Err()
	if err == nil {
		return conflict
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return fmt.Errorf("lookup %s: %w", field, err)
}

// duplicateKeyConflict maps a unique index violation to the field
// specific conflict error
func duplicateKeyConflict(err error) error {
	if strings.Contains(err.Error(), "email") {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

func decodeUser(res *mongo.SingleResult) (*User, error) {
	user := &User{}
	if err := res.Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}
