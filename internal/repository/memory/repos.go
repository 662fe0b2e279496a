package memory

import (
	"context"
	"sort"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
)

type postRepo struct {
	s *Store
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	post.ID = r.s.nextID()
	post.CreatedAt = r.s.now()
	r.s.posts[post.ID] = post

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return r.s.fullPost(post), nil
}

func (r *postRepo) Count(ctx context.Context, filter repository.PostFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.filterPosts(filter)), nil
}

func (r *postRepo) Find(ctx context.Context, filter repository.PostFilter, limit int, offset int) ([]*model.FullPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := r.s.filterPosts(filter)
	if offset >= len(posts) {
		return []*model.FullPost{}, nil
	}

	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}

	return posts[offset:end], nil
}

func (r *postRepo) Update(ctx context.Context, post model.Post) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.posts[post.ID]
	if !ok || stored.AuthorID != post.AuthorID {
		return nil, repository.ErrNotFound
	}

	post.CreatedAt = stored.CreatedAt
	r.s.posts[post.ID] = post

	return &post, nil
}

func (r *postRepo) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.posts[id]
	if !ok || stored.AuthorID != authorID {
		return repository.ErrNotFound
	}

	delete(r.s.posts, id)
	for commentID, comment := range r.s.comments {
		if comment.PostID == id {
			delete(r.s.comments, commentID)
		}
	}

	return nil
}

type commentRepo struct {
	s *Store
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[comment.PostID]; !ok {
		return nil, repository.ErrNotFound
	}

	comment.ID = r.s.nextID()
	comment.CreatedAt = r.s.now()
	r.s.comments[comment.ID] = comment

	return &comment, nil
}

func (r *commentRepo) visible(id int64) (model.Comment, bool) {
	comment, ok := r.s.comments[id]
	if !ok || !policy.IsCommentVisible(&comment) {
		return model.Comment{}, false
	}
	return comment, true
}

func (r *commentRepo) FindVisibleByID(ctx context.Context, id int64) (*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comment, ok := r.visible(id)
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &comment, nil
}

func (r *commentRepo) FindByPost(ctx context.Context, postID int64) ([]*model.FullComment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := []*model.FullComment{}
	for _, comment := range r.s.comments {
		if comment.PostID != postID || !policy.IsCommentVisible(&comment) {
			continue
		}
		comments = append(comments, &model.FullComment{
			Comment: comment,
			Author:  r.s.author(comment.AuthorID),
		})
	}

	sort.Slice(comments, func(i, j int) bool {
		a, b := comments[i].Comment, comments[j].Comment
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return comments, nil
}

func (r *commentRepo) Update(ctx context.Context, id int64, authorID uuid.UUID, text string) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment, ok := r.visible(id)
	if !ok || comment.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}

	comment.Text = text
	r.s.comments[id] = comment

	return &comment, nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment, ok := r.visible(id)
	if !ok || comment.AuthorID != authorID {
		return repository.ErrNotFound
	}

	delete(r.s.comments, id)

	return nil
}

type categoryRepo struct {
	s *Store
}

func (r *categoryRepo) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	category, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &category, nil
}

func (r *categoryRepo) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, category := range r.s.categories {
		if category.Slug == slug {
			return &category, nil
		}
	}

	return nil, repository.ErrNotFound
}

type locationRepo struct {
	s *Store
}

func (r *locationRepo) FindByID(ctx context.Context, id int64) (*model.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	location, ok := r.s.locations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &location, nil
}

type userRepo struct {
	s *Store
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &user, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Username == username {
			return &user, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *userRepo) Update(ctx context.Context, user model.User) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[user.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Email = user.Email
	stored.Bio = user.Bio
	stored.AvatarURL = user.AvatarURL
	r.s.users[user.ID] = stored

	return &stored, nil
}
