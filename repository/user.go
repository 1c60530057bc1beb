package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goliatone/go-forum/auth"
)

// User is the user model. The password hash never serializes to JSON; it
// is owned by the record's lifecycle, created at signup and replaced only
// on a password change.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name,omitempty"`
	Username     string             `bson:"username" json:"username,omitempty"`
	Phone        string             `bson:"phone" json:"phone,omitempty"`
	Email        string             `bson:"email" json:"email,omitempty"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Approved     bool               `bson:"is_approved" json:"is_approved"`
	Deleted      bool               `bson:"deleted" json:"deleted"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at,omitempty"`
}

// UserIdentity adapts a User into the auth.Identity interface.
type UserIdentity struct {
	user *User
}

// NewIdentityFromUser returns an Identity adapter for the provided user.
func NewIdentityFromUser(user *User) auth.Identity {
	if user == nil {
		return nil
	}
	return UserIdentity{user: user}
}

// ID returns the user's id as a hex string
func (u UserIdentity) ID() string {
	if u.user == nil {
		return ""
	}
	return u.user.ID.Hex()
}

// Username returns the user's username
func (u UserIdentity) Username() string {
	if u.user == nil {
		return ""
	}
	return u.user.Username
}

// Email returns the user's email address
func (u UserIdentity) Email() string {
	if u.user == nil {
		return ""
	}
	return u.user.Email
}

// PasswordHash returns the stored credential hash
func (u UserIdentity) PasswordHash() string {
	if u.user == nil {
		return ""
	}
	return u.user.PasswordHash
}

// User returns the adapted record
func (u UserIdentity) User() *User {
	return u.user
}
