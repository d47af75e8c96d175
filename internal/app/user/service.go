package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ysocial/internal/pkg/auth/jwt"
	"ysocial/internal/pkg/auth/password"
	"ysocial/internal/pkg/errs"
	"ysocial/internal/pkg/req"
)

// dateOnlyLayout is the calendar-date form accepted by PostsByDate; it is read as UTC midnight.
const dateOnlyLayout = "2006-01-02"

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// TokenIssuer mints signed session tokens. A nil userID yields a token without a subject.
type TokenIssuer interface {
	Issue(userID *string, ttl time.Duration) (string, error)
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Nickname string `json:"nickname" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=280"`
}

// Service implements the account flows on top of a Store.
type Service struct {
	store  Store
	hasher PasswordHasher
	tokens TokenIssuer

	// dummyHash is verified against when the nickname is unknown, so a
	// failed login costs one bcrypt comparison either way.
	dummyHash string
}

// NewService wires a Service.
func NewService(store Store, hasher PasswordHasher, tokens TokenIssuer) (*Service, error) {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare login hash: %w", err)
	}

	return &Service{
		store:     store,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Login verifies the credentials and returns a day-long token with the user's profile.
// An unknown nickname and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, nickname, plaintext string) (*Session, error) {
	u, err := s.store.GetByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.hasher.Verify(plaintext, s.dummyHash)
			return nil, errs.NewError(errs.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(plaintext, u.PasswordHash) {
		return nil, errs.NewError(errs.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(&u.ID, jwt.LoginExpiration)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	profile := u.Profile()
	return &Session{AccessToken: token, User: &profile}, nil
}

// Logout returns an already-expiring token without a subject. Nothing is
// revoked server-side: tokens issued earlier stay valid until they expire,
// and the client is expected to drop the one it holds.
func (s *Service) Logout(ctx context.Context) (*Session, error) {
	token, err := s.tokens.Issue(nil, jwt.LogoutExpiration)
	if err != nil {
		return nil, fmt.Errorf("logout: sign token: %w", err)
	}
	return &Session{AccessToken: token}, nil
}

// Register validates in, rejects taken nicknames, hashes the password and stores the user.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Profile, error) {
	if verr := req.Validate(&in); verr != nil {
		return nil, verr
	}

	_, err := s.store.GetByNickname(ctx, in.Nickname)
	switch {
	case err == nil:
		return nil, errs.NewError(errs.ErrDuplicateNickname)
	case !errors.Is(err, ErrNotFound):
		return nil, fmt.Errorf("register: %w", err)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrInvalidInput) {
			return nil, req.InvalidFields(req.FieldError{Field: "password", Rule: "max"})
		}
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	u := &User{
		Nickname:     in.Nickname,
		PasswordHash: hashed,
		Name:         in.Name,
		Email:        in.Email,
		Bio:          in.Bio,
	}

	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, ErrNicknameTaken) {
			return nil, errs.NewError(errs.ErrDuplicateNickname)
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	profile := u.Profile()
	return &profile, nil
}

// Followers lists who follows the user. Only a missing user is an error;
// a user without followers gets an empty list.
func (s *Service) Followers(ctx context.Context, userID string) ([]Profile, error) {
	id, err := s.existingUser(ctx, userID, errs.ErrFollowersNotFound)
	if err != nil {
		return nil, err
	}

	followers, err := s.store.FollowersOf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("followers: %w", err)
	}
	return followers, nil
}

// Posts lists the user's posts. A user without posts yields errs.ErrNoPosts.
func (s *Service) Posts(ctx context.Context, userID string) ([]Post, error) {
	id, err := s.existingUser(ctx, userID, errs.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	posts, err := s.store.PostsOf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, errs.NewError(errs.ErrNoPosts)
	}
	return posts, nil
}

// PostsByDate lists the user's posts stamped exactly at the instant named by
// date (millisecond precision). A date-only value means UTC midnight, so it
// matches only posts published at that exact instant.
func (s *Service) PostsByDate(ctx context.Context, userID, date string) ([]Post, error) {
	at, err := ParseDate(date)
	if err != nil {
		return nil, req.InvalidFields(req.FieldError{Field: "date", Rule: "datetime"})
	}

	id, err := s.existingUser(ctx, userID, errs.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	posts, err := s.store.PostsAt(ctx, id, at)
	if err != nil {
		return nil, fmt.Errorf("posts by date: %w", err)
	}
	if len(posts) > 0 {
		return posts, nil
	}

	hasPosts, err := s.store.HasPosts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("posts by date: %w", err)
	}
	if !hasPosts {
		return nil, errs.NewError(errs.ErrNoPosts)
	}
	return nil, errs.NewError(errs.ErrNoPostsOnDate)
}

// SetAvatarKey records a new avatar object key for the user and returns the replaced one.
func (s *Service) SetAvatarKey(ctx context.Context, userID, key string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", errs.NewError(errs.ErrUserNotFound)
	}

	previous, err := s.store.SetAvatarKey(ctx, id, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", errs.NewError(errs.ErrUserNotFound)
		}
		return "", fmt.Errorf("set avatar: %w", err)
	}
	return previous, nil
}

// existingUser parses userID and checks that the user exists, returning
// notFoundCode otherwise. Malformed ids cannot exist.
func (s *Service) existingUser(ctx context.Context, userID string, notFoundCode int) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, errs.NewError(notFoundCode)
	}

	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return uuid.Nil, errs.NewError(notFoundCode)
		}
		return uuid.Nil, fmt.Errorf("lookup user: %w", err)
	}
	return id, nil
}

// ParseDate reads a calendar date (YYYY-MM-DD, UTC midnight) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}
