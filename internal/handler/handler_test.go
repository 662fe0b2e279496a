package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/config"
	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository/memory"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	now    = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	secret = []byte("test-secret")
)

type testApp struct {
	store  *memory.Store
	router *gin.Engine
	alice  model.User
	bob    model.User
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := func() time.Time { return now }
	store := memory.New(clock)
	logger := zap.NewNop()

	services := service.New(logger, store.Repository(), nil, service.Options{PageSize: 10, Now: clock})
	h := New(services, logger, config.AppConfig{
		PageSize:     10,
		LoginURL:     "/auth/login",
		ClientOrigin: "http://localhost:3000",
		AccessSecret: secret,
	})

	return &testApp{
		store:  store,
		router: h.InitRoutes(),
		alice:  store.PutUser(model.User{Username: "alice"}),
		bob:    store.PutUser(model.User{Username: "bob"}),
	}
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func (a *testApp) do(t *testing.T, method string, path string, as *model.User, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+token(t, *as))
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) publicPost(author model.User, pubDate time.Time) model.Post {
	return a.store.PutPost(model.Post{
		AuthorID:    author.ID,
		Title:       "post",
		Text:        "text",
		PubDate:     pubDate,
		IsPublished: true,
	})
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func postPath(id int64, suffix string) string {
	return "/posts/" + strconv.FormatInt(id, 10) + suffix
}

func TestIndexPagination(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 12; i++ {
		app.publicPost(app.alice, now.Add(-time.Duration(i+1)*time.Minute))
	}

	w := app.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[dto.PostPage](t, w)
	assert.Len(t, first.Items, 10)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)

	w = app.do(t, http.MethodGet, "/?page=2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[dto.PostPage](t, w)
	assert.Len(t, second.Items, 2)
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrevious)

	for _, page := range []string{"0", "-1", "3", "abc"} {
		w = app.do(t, http.MethodGet, "/?page="+page, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decode[dto.PostPage](t, w).Number)
	}
}

func TestScheduledPostDetail(t *testing.T) {
	app := newTestApp(t)
	post := app.publicPost(app.alice, now.Add(time.Hour))

	w := app.do(t, http.MethodGet, postPath(post.ID, ""), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, postPath(post.ID, ""), &app.bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, postPath(post.ID, ""), &app.alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.GetPost](t, w)
	assert.Equal(t, post.ID, got.Post.Post.ID)
}

func TestUnpublishedCategoryIsNotFound(t *testing.T) {
	app := newTestApp(t)
	travel := app.store.PutCategory(model.Category{Slug: "travel", Title: "Travel", IsPublished: false})
	for i := 0; i < 3; i++ {
		app.store.PutPost(model.Post{AuthorID: app.alice.ID, IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: &travel.ID})
	}

	w := app.do(t, http.MethodGet, "/category/travel", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[dto.PostPage](t, w).Total)
}

func TestCategoryListing(t *testing.T) {
	app := newTestApp(t)
	food := app.store.PutCategory(model.Category{Slug: "food", Title: "Food", Description: "Eating", IsPublished: true})
	app.store.PutPost(model.Post{AuthorID: app.alice.ID, IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: &food.ID})
	app.publicPost(app.alice, now.Add(-time.Hour))

	w := app.do(t, http.MethodGet, "/category/food", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.CategoryPosts](t, w)
	assert.Equal(t, "Eating", got.Category.Description)
	assert.Equal(t, 1, got.Posts.Total)
}

func TestDeleteForeignCommentIsForbidden(t *testing.T) {
	app := newTestApp(t)
	post := app.publicPost(app.alice, now.Add(-time.Hour))
	comment := app.store.PutComment(model.Comment{PostID: post.ID, AuthorID: app.bob.ID, Text: "mine", IsPublished: true})
	path := "/comments/" + strconv.FormatInt(comment.ID, 10)

	w := app.do(t, http.MethodPost, path+"/delete", &app.alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, app.store.HasComment(comment.ID))

	w = app.do(t, http.MethodPost, path+"/edit", &app.alice, dto.CommentRequest{Text: "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPost, path+"/delete", &app.bob, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, app.store.HasComment(comment.ID))

	w = app.do(t, http.MethodPost, path+"/delete", &app.bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostMutationsAreOwnerOnly(t *testing.T) {
	app := newTestApp(t)
	post := app.publicPost(app.alice, now.Add(-time.Hour))
	edit := dto.PostRequest{Title: "Edited", Text: "body", PubDate: now.Add(-time.Hour)}

	w := app.do(t, http.MethodPost, postPath(post.ID, "/edit"), &app.bob, edit)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPost, postPath(post.ID, "/delete"), &app.bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, app.store.HasPost(post.ID))

	w = app.do(t, http.MethodPost, postPath(post.ID, "/edit"), &app.alice, edit)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Edited", decode[model.Post](t, w).Title)

	w = app.do(t, http.MethodPost, postPath(9999, "/delete"), &app.alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPost, postPath(post.ID, "/delete"), &app.alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, app.store.HasPost(post.ID))
}

func TestHiddenPostMutationsAreNotFound(t *testing.T) {
	app := newTestApp(t)
	scheduled := app.publicPost(app.alice, now.Add(time.Hour))
	draft := app.store.PutPost(model.Post{AuthorID: app.alice.ID, Title: "draft", PubDate: now.Add(-time.Hour)})
	comment := app.store.PutComment(model.Comment{PostID: scheduled.ID, AuthorID: app.alice.ID, Text: "note", IsPublished: true})
	edit := dto.PostRequest{Title: "Edited", Text: "body", PubDate: now}

	for _, id := range []int64{scheduled.ID, draft.ID, 99999} {
		w := app.do(t, http.MethodPost, postPath(id, "/delete"), &app.bob, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = app.do(t, http.MethodPost, postPath(id, "/edit"), &app.bob, edit)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
	assert.True(t, app.store.HasPost(scheduled.ID))
	assert.True(t, app.store.HasPost(draft.ID))

	path := "/comments/" + strconv.FormatInt(comment.ID, 10)
	w := app.do(t, http.MethodPost, path+"/delete", &app.bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = app.do(t, http.MethodPost, path+"/edit", &app.bob, dto.CommentRequest{Text: "hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, app.store.HasComment(comment.ID))

	w = app.do(t, http.MethodPost, postPath(draft.ID, "/edit"), &app.alice, edit)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, path+"/delete", &app.alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, app.store.HasComment(comment.ID))
}

func TestAnonymousMutationRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)
	post := app.publicPost(app.alice, now.Add(-time.Hour))

	w := app.do(t, http.MethodPost, postPath(post.ID, "/comment"), nil, dto.CommentRequest{Text: "hi"})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login?next=%2Fposts%2F"+strconv.FormatInt(post.ID, 10)+"%2Fcomment", w.Header().Get("Location"))

	w = app.do(t, http.MethodPost, "/create_post", nil, dto.PostRequest{Title: "x", Text: "y", PubDate: now})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestCreatePostAndComment(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/create_post", &app.alice, dto.PostRequest{Title: "Hello", Text: "World", PubDate: now.Add(-time.Minute)})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Post](t, w)
	assert.Equal(t, app.alice.ID, created.AuthorID)

	w = app.do(t, http.MethodPost, "/create_post", &app.alice, dto.PostRequest{Text: "no title", PubDate: now})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	missing := int64(777)
	w = app.do(t, http.MethodPost, "/create_post", &app.alice, dto.PostRequest{Title: "t", Text: "x", PubDate: now, CategoryID: &missing})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, postPath(created.ID, "/comment"), &app.bob, dto.CommentRequest{Text: "First!"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodGet, postPath(created.ID, ""), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.GetPost](t, w)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "bob", got.Comments[0].Author.Username)
	assert.EqualValues(t, 1, got.Post.CommentCount)
}

func TestProfile(t *testing.T) {
	app := newTestApp(t)
	app.publicPost(app.alice, now.Add(-time.Hour))
	app.publicPost(app.alice, now.Add(time.Hour))

	w := app.do(t, http.MethodGet, "/profile/alice", &app.alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	own := decode[dto.Profile](t, w)
	assert.True(t, own.IsOwner)
	assert.Equal(t, 2, own.Posts.Total)

	w = app.do(t, http.MethodGet, "/profile/alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.Profile](t, w).Posts.Total)

	w = app.do(t, http.MethodGet, "/profile/nobody", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPost, "/profile/alice/edit", &app.bob, dto.ProfileRequest{FirstName: "Mallory"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPost, "/profile/alice/edit", &app.alice, dto.ProfileRequest{FirstName: "Alice", Email: "alice@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", decode[model.User](t, w).FirstName)
}

func TestNotFoundRoutes(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/no/such/page", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, "/posts/abc", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
