package dto

import (
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/paginate"
)

type PostPage = paginate.Page[*model.FullPost]

type GetPost struct {
	Post     model.FullPost       `json:"post"`
	Comments []*model.FullComment `json:"comments"`
}

type CategoryPosts struct {
	Category model.Category `json:"category"`
	Posts    PostPage       `json:"posts"`
}

type Profile struct {
	Profile model.User `json:"profile"`
	IsOwner bool       `json:"is_owner"`
	Posts   PostPage   `json:"posts"`
}

type UploadedImage struct {
	URL string `json:"url"`
}
