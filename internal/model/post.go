package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          int64     `json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pub_date"`
	IsPublished bool      `json:"is_published"`
	ImageURL    *string   `json:"image_url"`
	LocationID  *int64    `json:"location_id"`
	CategoryID  *int64    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FullPost is a post joined with the rows it references.
// Category and Location are nil when the post has none.
type FullPost struct {
	Post         Post       `json:"post"`
	Author       UserAuthor `json:"author"`
	Category     *Category  `json:"category"`
	Location     *Location  `json:"location"`
	CommentCount int64      `json:"comment_count"`
}
