package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type UserAuthor struct {
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

func (u User) Author() UserAuthor {
	return UserAuthor{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}

// Viewer is the identity behind a request. A nil *Viewer is an anonymous visitor.
type Viewer struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func (v *Viewer) Is(userID uuid.UUID) bool {
	return v != nil && v.ID == userID
}
