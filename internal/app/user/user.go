/*
Package user contains the account, follower and post model of the social network
and the flows that operate on it: registration, login, logout and the per-user
read endpoints.
*/
package user

import "time"

// User is a stored account record. It is never serialized to clients;
// handlers respond with Profile instead.
type User struct {
	ID           string
	Nickname     string
	PasswordHash string `json:"-"`
	Name         string
	Email        string
	Bio          string
	AvatarKey    string
	CreatedAt    time.Time
}

// Profile is the outward view of a user. It has no password field.
type Profile struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarKey string    `json:"avatarKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile returns the sanitized view of u.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Nickname:  u.Nickname,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarKey: u.AvatarKey,
		CreatedAt: u.CreatedAt,
	}
}

// Post is a message published by a user.
type Post struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// Session is returned by login and logout.
type Session struct {
	AccessToken string   `json:"accessToken"`
	User        *Profile `json:"user,omitempty"`
}
