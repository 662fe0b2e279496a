package memory

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

func TestFindOrdersByPubDateThenID(t *testing.T) {
	store := New(fixedNow)
	author := store.PutUser(model.User{Username: "alice"})

	older := store.PutPost(model.Post{AuthorID: author.ID, IsPublished: true, PubDate: now.Add(-2 * time.Hour)})
	tieLow := store.PutPost(model.Post{AuthorID: author.ID, IsPublished: true, PubDate: now.Add(-time.Hour)})
	tieHigh := store.PutPost(model.Post{AuthorID: author.ID, IsPublished: true, PubDate: now.Add(-time.Hour)})

	repo := store.Repository()
	filter := repository.PostFilter{Scope: policy.PostScope{PublicOnly: true, Now: now}}

	for i := 0; i < 3; i++ {
		posts, err := repo.Post.Find(context.Background(), filter, 10, 0)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, []int64{tieHigh.ID, tieLow.ID, older.ID}, []int64{posts[0].Post.ID, posts[1].Post.ID, posts[2].Post.ID})
	}
}

func TestFindByCategorySlugAndScope(t *testing.T) {
	store := New(fixedNow)
	author := store.PutUser(model.User{Username: "alice"})
	travel := store.PutCategory(model.Category{Slug: "travel", IsPublished: false})
	food := store.PutCategory(model.Category{Slug: "food", IsPublished: true})

	for i := 0; i < 3; i++ {
		store.PutPost(model.Post{AuthorID: author.ID, IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: &travel.ID})
	}
	store.PutPost(model.Post{AuthorID: author.ID, IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: &food.ID})

	repo := store.Repository()
	ctx := context.Background()
	public := policy.PostScope{PublicOnly: true, Now: now}

	count, err := repo.Post.Count(ctx, repository.PostFilter{Scope: public, CategorySlug: "travel"})
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.Post.Count(ctx, repository.PostFilter{Scope: public})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.Post.Count(ctx, repository.PostFilter{Scope: policy.PostScope{Now: now}, AuthorID: &author.ID})
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestCommentsAreVisibleOnlyAndOldestFirst(t *testing.T) {
	clock := now
	store := New(func() time.Time { return clock })
	author := store.PutUser(model.User{Username: "alice"})
	post := store.PutPost(model.Post{AuthorID: author.ID, IsPublished: true, PubDate: now})

	repo := store.Repository()
	ctx := context.Background()

	first, err := repo.Comment.Create(ctx, model.Comment{PostID: post.ID, AuthorID: author.ID, Text: "first", IsPublished: true})
	require.NoError(t, err)
	clock = clock.Add(time.Minute)
	second, err := repo.Comment.Create(ctx, model.Comment{PostID: post.ID, AuthorID: author.ID, Text: "second", IsPublished: true})
	require.NoError(t, err)
	hidden := store.PutComment(model.Comment{PostID: post.ID, AuthorID: author.ID, Text: "hidden"})

	comments, err := repo.Comment.FindByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].Comment.ID)
	assert.Equal(t, second.ID, comments[1].Comment.ID)
	assert.Equal(t, "alice", comments[0].Author.Username)

	_, err = repo.Comment.FindVisibleByID(ctx, hidden.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	full, err := repo.Post.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, full.CommentCount)
}

func TestDeletePostCascadesComments(t *testing.T) {
	store := New(fixedNow)
	author := store.PutUser(model.User{Username: "alice"})
	post := store.PutPost(model.Post{AuthorID: author.ID, IsPublished: true, PubDate: now})
	comment := store.PutComment(model.Comment{PostID: post.ID, AuthorID: author.ID, Text: "hi", IsPublished: true})

	repo := store.Repository()
	require.NoError(t, repo.Post.Delete(context.Background(), post.ID, author.ID))

	assert.False(t, store.HasPost(post.ID))
	assert.False(t, store.HasComment(comment.ID))
	assert.ErrorIs(t, repo.Post.Delete(context.Background(), post.ID, author.ID), repository.ErrNotFound)
}
