package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ysocial/internal/app/db"
)

// DBTX is the subset of pgx used by PostgresStore.
// *pgxpool.Pool, pgx.Tx and pgxmock pools all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	db DBTX
}

// NewPostgresStore returns a Store backed by db.
func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id::text, nickname, password_hash, name, email, bio, avatar_key, created_at`

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Nickname, &u.PasswordHash, &u.Name, &u.Email, &u.Bio, &u.AvatarKey, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) GetByNickname(ctx context.Context, nickname string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE nickname = $1`
	return scanUser(s.db.QueryRow(ctx, query, nickname))
}

func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.db.QueryRow(ctx, query, id))
}

// Create relies on the users_nickname_key unique constraint, so concurrent
// registrations of one nickname cannot both succeed.
func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	id := uuid.New()

	query :=
		`INSERT INTO users (id, nickname, password_hash, name, email, bio)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	var createdAt time.Time
	err := s.db.QueryRow(ctx, query, id, u.Nickname, u.PasswordHash, u.Name, u.Email, u.Bio).Scan(&createdAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrNicknameTaken
		}
		return fmt.Errorf("db error: %w", err)
	}

	u.ID = id.String()
	u.CreatedAt = createdAt
	return nil
}

func (s *PostgresStore) FollowersOf(ctx context.Context, id uuid.UUID) ([]Profile, error) {
	query :=
		`SELECT u.id::text, u.nickname, u.name, u.email, u.bio, u.avatar_key, u.created_at
		 FROM follows f
		 JOIN users u ON u.id = f.follower_id
		 WHERE f.followee_id = $1
		 ORDER BY f.created_at, u.nickname`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	followers := []Profile{}
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Nickname, &p.Name, &p.Email, &p.Bio, &p.AvatarKey, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		followers = append(followers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return followers, nil
}

func (s *PostgresStore) PostsOf(ctx context.Context, id uuid.UUID) ([]Post, error) {
	query :=
		`SELECT id::text, user_id::text, content, posted_at
		 FROM posts
		 WHERE user_id = $1
		 ORDER BY posted_at, id`

	return s.queryPosts(ctx, query, id)
}

func (s *PostgresStore) PostsAt(ctx context.Context, id uuid.UUID, at time.Time) ([]Post, error) {
	query :=
		`SELECT id::text, user_id::text, content, posted_at
		 FROM posts
		 WHERE user_id = $1 AND date_trunc('milliseconds', posted_at) = $2
		 ORDER BY posted_at, id`

	return s.queryPosts(ctx, query, id, at.Truncate(time.Millisecond))
}

func (s *PostgresStore) queryPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return posts, nil
}

func (s *PostgresStore) HasPosts(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE user_id = $1)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) SetAvatarKey(ctx context.Context, id uuid.UUID, key string) (string, error) {
	query :=
		`WITH old AS (SELECT avatar_key FROM users WHERE id = $1 FOR UPDATE)
		 UPDATE users SET avatar_key = $2
		 FROM old
		 WHERE users.id = $1
		 RETURNING old.avatar_key`

	var previous string
	if err := s.db.QueryRow(ctx, query, id, key).Scan(&previous); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return previous, nil
}
