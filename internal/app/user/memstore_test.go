package user

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory Store for service tests. Create enforces
// nickname uniqueness under its lock, like the unique index does.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*User
	follows  map[uuid.UUID][]uuid.UUID
	posts    map[uuid.UUID][]Post
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uuid.UUID]*User{},
		follows: map[uuid.UUID][]uuid.UUID{},
		posts:   map[uuid.UUID][]Post{},
	}
}

func (m *memStore) GetByNickname(_ context.Context, nickname string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, u := range m.users {
		if u.Nickname == nickname {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *u
	return &c, nil
}

func (m *memStore) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Nickname == u.Nickname {
			return ErrNicknameTaken
		}
	}
	id := uuid.New()
	u.ID = id.String()
	u.CreatedAt = time.Now().UTC()
	c := *u
	m.users[id] = &c
	return nil
}

func (m *memStore) FollowersOf(_ context.Context, id uuid.UUID) ([]Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Profile{}
	for _, fid := range m.follows[id] {
		out = append(out, m.users[fid].Profile())
	}
	return out, nil
}

func (m *memStore) PostsOf(_ context.Context, id uuid.UUID) ([]Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]Post{}, m.posts[id]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memStore) PostsAt(_ context.Context, id uuid.UUID, at time.Time) ([]Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Post{}
	for _, p := range m.posts[id] {
		if p.Date.Truncate(time.Millisecond).Equal(at.Truncate(time.Millisecond)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) HasPosts(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts[id]) > 0, nil
}

func (m *memStore) SetAvatarKey(_ context.Context, id uuid.UUID, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return "", ErrNotFound
	}
	previous := u.AvatarKey
	u.AvatarKey = key
	return previous, nil
}

func (m *memStore) addFollower(followee, follower string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.follows[uuid.MustParse(followee)] = append(m.follows[uuid.MustParse(followee)], uuid.MustParse(follower))
}

func (m *memStore) addPost(userID, content string, at time.Time) Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := Post{ID: uuid.NewString(), UserID: userID, Content: content, Date: at}
	m.posts[uuid.MustParse(userID)] = append(m.posts[uuid.MustParse(userID)], p)
	return p
}
