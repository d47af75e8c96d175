package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ysocial/internal/app/user"
)

type fakeStore struct {
	mu      sync.Mutex
	users   []*user.User
	follows map[string][]string
	posts   []user.Post

	// panicOnLookup makes GetByNickname panic, standing in for a handler crash.
	panicOnLookup bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{follows: map[string][]string{}}
}

func (f *fakeStore) find(match func(*user.User) bool) (*user.User, error) {
	for _, u := range f.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeStore) GetByNickname(_ context.Context, nickname string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicOnLookup {
		panic("lookup exploded")
	}
	return f.find(func(u *user.User) bool { return u.Nickname == nickname })
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(u *user.User) bool { return u.ID == id.String() })
}

func (f *fakeStore) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.find(func(x *user.User) bool { return x.Nickname == u.Nickname }); err == nil {
		return user.ErrNicknameTaken
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	c := *u
	f.users = append(f.users, &c)
	return nil
}

func (f *fakeStore) FollowersOf(_ context.Context, id uuid.UUID) ([]user.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []user.Profile{}
	for _, followerID := range f.follows[id.String()] {
		u, err := f.find(func(u *user.User) bool { return u.ID == followerID })
		if err != nil {
			return nil, err
		}
		out = append(out, u.Profile())
	}
	return out, nil
}

func (f *fakeStore) PostsOf(_ context.Context, id uuid.UUID) ([]user.Post, error) {
	return f.filterPosts(func(p user.Post) bool { return p.UserID == id.String() }), nil
}

func (f *fakeStore) PostsAt(_ context.Context, id uuid.UUID, at time.Time) ([]user.Post, error) {
	at = at.Truncate(time.Millisecond)
	return f.filterPosts(func(p user.Post) bool {
		return p.UserID == id.String() && p.Date.Truncate(time.Millisecond).Equal(at)
	}), nil
}

func (f *fakeStore) HasPosts(ctx context.Context, id uuid.UUID) (bool, error) {
	posts, _ := f.PostsOf(ctx, id)
	return len(posts) > 0, nil
}

func (f *fakeStore) SetAvatarKey(_ context.Context, id uuid.UUID, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id.String() {
			previous := u.AvatarKey
			u.AvatarKey = key
			return previous, nil
		}
	}
	return "", user.ErrNotFound
}

func (f *fakeStore) filterPosts(keep func(user.Post) bool) []user.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []user.Post{}
	for _, p := range f.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeStore) follow(followee, follower string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.follows[followee] = append(f.follows[followee], follower)
}

func (f *fakeStore) addPost(userID, content string, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, user.Post{ID: uuid.NewString(), UserID: userID, Content: content, Date: at})
}

// fakeStorage keeps uploaded keys in memory and reports deletions on a channel.
type fakeStorage struct {
	mu         sync.Mutex
	objects    map[string]bool
	presignErr error
	deleted    chan string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]bool{}, deleted: make(chan string, 4)}
}

func (f *fakeStorage) PresignUpload(_ context.Context, key, _ string, _ int64, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://bucket.example/" + key + "?X-Amz-Signature=sig", nil
}

func (f *fakeStorage) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[key], nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	delete(f.objects, key)
	f.mu.Unlock()
	f.deleted <- key
	return nil
}

// upload stands in for the client's PUT to a presigned URL.
func (f *fakeStorage) upload(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = true
}

func (f *fakeStorage) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[key]
}

var errPresign = errors.New("presign failed")
