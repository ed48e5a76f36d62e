package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/forumhub/backend/internal/model"
	"github.com/forumhub/backend/internal/ratelimit"
	"github.com/forumhub/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSetsRefreshCookie(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodPost, "/users/login", `{"username":"admin"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, 200, body.StatusCode)
	assert.Equal(t, "Login successful", body.Message)

	var data model.LoginData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.NotEmpty(t, data.AccessToken)
	require.NotNil(t, data.User)
	assert.Equal(t, "admin", data.User.Username)
	assert.NotContains(t, string(body.Data), "refreshToken")

	identity, err := env.tokens.VerifyAccessToken(data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)

	cookie := findCookie(w, service.RefreshCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, service.RefreshCookiePath, cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)

	identity, err = env.tokens.VerifyRefreshToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodPost, "/users/login", `{"username":"ghost"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User not found", decode(t, w).Message)
	assert.Nil(t, findCookie(w, service.RefreshCookieName))

	w = env.do(http.MethodPost, "/users/login", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshRotatesCookie(t *testing.T) {
	env := newTestEnv(t, nil)

	login := env.do(http.MethodPost, "/users/login", `{"username":"admin"}`, nil)
	require.Equal(t, http.StatusOK, login.Code)
	original := findCookie(login, service.RefreshCookieName)
	require.NotNil(t, original)

	w := env.do(http.MethodPost, "/users/refresh", "", func(r *http.Request) { r.AddCookie(original) })
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "refresh token successful", body.Message)
	var data model.RefreshData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	_, err := env.tokens.VerifyAccessToken(data.AccessToken)
	require.NoError(t, err)

	rotated := findCookie(w, service.RefreshCookieName)
	require.NotNil(t, rotated)
	assert.NotEqual(t, original.Value, rotated.Value)
	assert.True(t, rotated.HttpOnly)
}

func TestRefreshRejects(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodPost, "/users/refresh", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No refresh token found", decode(t, w).Message)

	access, err := env.tokens.IssueAccessToken(model.Identity{ID: 1})
	require.NoError(t, err)
	w = env.do(http.MethodPost, "/users/refresh", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: service.RefreshCookieName, Value: access})
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid refresh token", decode(t, w).Message)
	assert.Nil(t, findCookie(w, service.RefreshCookieName))
}

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t, denyAll{})

	w := env.do(http.MethodPost, "/users/login", `{"username":"admin"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many login attempts", decode(t, w).Message)
	assert.Nil(t, findCookie(w, service.RefreshCookieName))
}

func TestLoginLimitIgnoresForwardedFor(t *testing.T) {
	env := newTestEnv(t, ratelimit.NewLocal(2, time.Minute))

	allowed := 0
	for i := 0; i < 10; i++ {
		w := env.do(http.MethodPost, "/users/login", `{"username":"admin"}`, func(r *http.Request) {
			r.RemoteAddr = "192.0.2.10:40000"
			r.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
			r.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i+1))
		})
		switch w.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
		default:
			t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
		}
	}
	assert.Equal(t, 2, allowed)
}
