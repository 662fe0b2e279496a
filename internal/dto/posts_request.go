package dto

import "time"

type PostRequest struct {
	Title       string    `json:"title" form:"title" binding:"required,min=1,max=256"`
	Text        string    `json:"text" form:"text" binding:"required"`
	PubDate     time.Time `json:"pub_date" form:"pub_date" binding:"required"`
	IsPublished *bool     `json:"is_published" form:"is_published"`
	ImageURL    *string   `json:"image_url" form:"image_url" binding:"omitempty,url"`
	LocationID  *int64    `json:"location_id" form:"location_id" binding:"omitempty,min=1"`
	CategoryID  *int64    `json:"category_id" form:"category_id" binding:"omitempty,min=1"`
}

type CommentRequest struct {
	Text string `json:"text" form:"text" binding:"required,min=1,max=512"`
}

type ProfileRequest struct {
	FirstName string  `json:"first_name" form:"first_name" binding:"max=150"`
	LastName  string  `json:"last_name" form:"last_name" binding:"max=150"`
	Email     string  `json:"email" form:"email" binding:"omitempty,email,max=254"`
	Bio       *string `json:"bio" form:"bio"`
	AvatarURL *string `json:"avatar_url" form:"avatar_url" binding:"omitempty,url"`
}
