// Package policy decides which posts, categories and comments a viewer may see
// and which of them the viewer may change.
//
// Every read path goes through this package: the in-memory store evaluates the
// predicates directly and the Postgres store embeds the matching SQL
// conditions defined next to them.
package policy

import (
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
)

// IsPubliclyVisible reports whether anyone may see the post at now.
func IsPubliclyVisible(post *model.FullPost, now time.Time) bool {
	if post == nil || !post.Post.IsPublished {
		return false
	}
	if post.Post.PubDate.After(now) {
		return false
	}
	return post.Category == nil || post.Category.IsPublished
}

// IsVisibleTo reports whether viewer may see the post. Authors always see their own posts.
func IsVisibleTo(post *model.FullPost, viewer *model.Viewer, now time.Time) bool {
	if post == nil {
		return false
	}
	if viewer.Is(post.Post.AuthorID) {
		return true
	}
	return IsPubliclyVisible(post, now)
}

func IsCommentVisible(comment *model.Comment) bool {
	return comment != nil && comment.IsPublished
}

func IsCategoryVisible(category *model.Category) bool {
	return category != nil && category.IsPublished
}

// CanMutate is the ownership guard run before any edit or delete.
func CanMutate(viewer *model.Viewer, ownerID uuid.UUID) bool {
	return viewer.Is(ownerID)
}

// PublicPostSQL is IsPubliclyVisible as a WHERE condition over
// `posts p LEFT JOIN categories c ON c.id = p.category_id`.
// now is the placeholder bound to the current time.
func PublicPostSQL(now string) string {
	return "p.is_published AND p.pub_date <= " + now + " AND (p.category_id IS NULL OR c.is_published)"
}

// VisibleCommentSQL is IsCommentVisible over a comments table aliased cm.
const VisibleCommentSQL = "cm.is_published"

// PostScope narrows a post listing to what one viewer may see.
type PostScope struct {
	PublicOnly bool
	Now        time.Time
}

func (s PostScope) Admits(post *model.FullPost) bool {
	if !s.PublicOnly {
		return post != nil
	}
	return IsPubliclyVisible(post, s.Now)
}

// ScopeFor returns the scope of a listing. owner is the author the listing is
// bound to (a profile page) or nil for feed and category listings; only the
// owner of a profile sees its unpublished and scheduled posts.
func ScopeFor(viewer *model.Viewer, owner *uuid.UUID, now time.Time) PostScope {
	if owner != nil && viewer.Is(*owner) {
		return PostScope{Now: now}
	}
	return PostScope{PublicOnly: true, Now: now}
}
