package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by a Store when the requested user does not exist.
	ErrNotFound = errors.New("user: not found")

	// ErrNicknameTaken is returned by Store.Create when the nickname is already in use.
	// Stores must enforce this atomically.
	ErrNicknameTaken = errors.New("user: nickname taken")
)

// Store persists users, follower edges and posts.
type Store interface {
	// GetByNickname returns the user with the given nickname or ErrNotFound.
	GetByNickname(ctx context.Context, nickname string) (*User, error)

	// GetByID returns the user with the given id or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// Create assigns an id and creation time to u and inserts it.
	Create(ctx context.Context, u *User) error

	// FollowersOf lists the profiles following the user.
	FollowersOf(ctx context.Context, id uuid.UUID) ([]Profile, error)

	// PostsOf lists the user's posts, oldest first.
	PostsOf(ctx context.Context, id uuid.UUID) ([]Post, error)

	// PostsAt lists the user's posts stamped exactly at the given instant,
	// compared at millisecond precision.
	PostsAt(ctx context.Context, id uuid.UUID, at time.Time) ([]Post, error)

	// HasPosts reports whether the user has published anything.
	HasPosts(ctx context.Context, id uuid.UUID) (bool, error)

	// SetAvatarKey stores a new avatar object key and returns the previous one.
	SetAvatarKey(ctx context.Context, id uuid.UUID, key string) (string, error)
}
