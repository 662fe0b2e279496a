// Package memory is an in-process store behind the repository interfaces.
// It evaluates the policy predicates directly instead of SQL and backs the
// service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users      map[uuid.UUID]model.User
	categories map[int64]model.Category
	locations  map[int64]model.Location
	posts      map[int64]model.Post
	comments   map[int64]model.Comment

	lastID int64
}

func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:        now,
		users:      make(map[uuid.UUID]model.User),
		categories: make(map[int64]model.Category),
		locations:  make(map[int64]model.Location),
		posts:      make(map[int64]model.Post),
		comments:   make(map[int64]model.Comment),
	}
}

func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Post:     &postRepo{s},
		Comment:  &commentRepo{s},
		Category: &categoryRepo{s},
		Location: &locationRepo{s},
		User:     &userRepo{s},
		Pinger:   s,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// PutUser inserts or replaces a user. A zero ID is replaced by a random one.
func (s *Store) PutUser(user model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	s.users[user.ID] = user
	return user
}

// PutCategory inserts or replaces a category. A zero ID allocates a new one.
func (s *Store) PutCategory(category model.Category) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category.ID == 0 {
		category.ID = s.nextID()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = s.now()
	}
	s.categories[category.ID] = category
	return category
}

func (s *Store) PutLocation(location model.Location) model.Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	if location.ID == 0 {
		location.ID = s.nextID()
	}
	if location.CreatedAt.IsZero() {
		location.CreatedAt = s.now()
	}
	s.locations[location.ID] = location
	return location
}

// PutPost inserts or replaces a post without any validation.
func (s *Store) PutPost(post model.Post) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == 0 {
		post.ID = s.nextID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = s.now()
	}
	s.posts[post.ID] = post
	return post
}

// PutComment inserts or replaces a comment, including hidden ones.
func (s *Store) PutComment(comment model.Comment) model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if comment.ID == 0 {
		comment.ID = s.nextID()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = s.now()
	}
	s.comments[comment.ID] = comment
	return comment
}

// HasComment reports whether a comment row exists, regardless of visibility.
func (s *Store) HasComment(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.comments[id]
	return ok
}

func (s *Store) HasPost(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.posts[id]
	return ok
}

func (s *Store) author(id uuid.UUID) model.UserAuthor {
	return s.users[id].Author()
}

func (s *Store) fullPost(post model.Post) *model.FullPost {
	full := &model.FullPost{
		Post:   post,
		Author: s.author(post.AuthorID),
	}

	if post.CategoryID != nil {
		if category, ok := s.categories[*post.CategoryID]; ok {
			full.Category = &category
		}
	}
	if post.LocationID != nil {
		if location, ok := s.locations[*post.LocationID]; ok {
			full.Location = &location
		}
	}

	for _, comment := range s.comments {
		if comment.PostID == post.ID && policy.IsCommentVisible(&comment) {
			full.CommentCount++
		}
	}

	return full
}

func (s *Store) filterPosts(filter repository.PostFilter) []*model.FullPost {
	var posts []*model.FullPost
	for _, post := range s.posts {
		full := s.fullPost(post)
		if !filter.Scope.Admits(full) {
			continue
		}
		if filter.AuthorID != nil && post.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.CategorySlug != "" && (full.Category == nil || full.Category.Slug != filter.CategorySlug) {
			continue
		}
		posts = append(posts, full)
	}

	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i].Post, posts[j].Post
		if !a.PubDate.Equal(b.PubDate) {
			return a.PubDate.After(b.PubDate)
		}
		return a.ID > b.ID
	})

	return posts
}
