package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/forumhub/backend/internal/model"
	"github.com/forumhub/backend/internal/ratelimit"
	"github.com/forumhub/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUsers map[string]*model.User

func (s stubUsers) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := s[username]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

// stubPosts records the caller seen by each protected call.
type stubPosts struct {
	posts    map[int64]*model.Post
	owner    map[int64]int64
	lastUser int64
}

func newStubPosts() *stubPosts {
	return &stubPosts{
		posts: map[int64]*model.Post{
			1: {ID: 1, Title: "first", Content: "body", Community: &model.Community{ID: 1, Name: "general"}, Comments: []model.Comment{}},
		},
		owner: map[int64]int64{1: 1},
	}
}

func (s *stubPosts) Create(_ context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error) {
	s.lastUser = userID
	return &model.Post{ID: 2, Title: req.Title, Content: req.Content, User: &model.User{ID: userID}}, nil
}

func (s *stubPosts) Update(_ context.Context, id, userID int64, req model.UpdatePostRequest) (*model.Post, error) {
	s.lastUser = userID
	p, ok := s.posts[id]
	if !ok || s.owner[id] != userID {
		return nil, service.ErrPostNotFound
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	return p, nil
}

func (s *stubPosts) Delete(_ context.Context, id, userID int64) error {
	s.lastUser = userID
	if _, ok := s.posts[id]; !ok || s.owner[id] != userID {
		return service.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *stubPosts) Get(_ context.Context, id int64) (*model.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, service.ErrPostNotFound
	}
	return p, nil
}

func (s *stubPosts) List(context.Context, int64) ([]model.Post, error) {
	out := []model.Post{}
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPosts) ListByUser(_ context.Context, userID, _ int64) ([]model.Post, error) {
	s.lastUser = userID
	return []model.Post{}, nil
}

func (s *stubPosts) Communities(context.Context) ([]model.Community, error) {
	return []model.Community{{ID: 1, Name: "general"}}, nil
}

type stubComments struct{}

func (stubComments) Create(_ context.Context, userID int64, req model.CreateCommentRequest) (*model.Comment, error) {
	return &model.Comment{ID: 1, Content: req.Content, PostID: req.PostID, User: &model.User{ID: userID}}, nil
}

func (stubComments) Update(_ context.Context, id, userID int64, _ model.UpdateCommentRequest) (*model.Comment, error) {
	return nil, service.ErrCommentNotFound
}

func (stubComments) Delete(context.Context, int64, int64) error {
	return service.ErrCommentNotFound
}

func (stubComments) ListByPost(_ context.Context, postID int64) ([]model.Comment, error) {
	return []model.Comment{{ID: 1, Content: "hi", PostID: postID}}, nil
}

type testEnv struct {
	router *gin.Engine
	tokens *service.TokenService
	posts  *stubPosts
}

func newTestEnv(t *testing.T, limiter ratelimit.Limiter) *testEnv {
	t.Helper()
	log := zap.NewNop()
	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})
	require.NoError(t, err)

	authSvc := service.NewAuthService(stubUsers{"admin": {ID: 1, Username: "admin", Img: "https://i.pravatar.cc/300"}}, tokens, false, log)
	posts := newStubPosts()
	router, err := NewRouter(RouterDeps{
		Auth:           NewAuthHandler(authSvc, log),
		Post:           NewPostHandler(posts, authSvc, log),
		Comment:        NewCommentHandler(stubComments{}, authSvc, log),
		LoginLimiter:   limiter,
		AllowedOrigins: []string{"http://localhost:3000"},
		Log:            log,
	})
	require.NoError(t, err)
	return &testEnv{router: router, tokens: tokens, posts: posts}
}

func (e *testEnv) do(method, path, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) bearer(t *testing.T, userID int64) func(*http.Request) {
	t.Helper()
	token, err := e.tokens.IssueAccessToken(model.Identity{ID: userID})
	require.NoError(t, err)
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
