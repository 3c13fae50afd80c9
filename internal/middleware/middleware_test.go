package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-management/internal/config"
	"event-management/internal/database"
	"event-management/internal/model"
	"event-management/internal/service"
	"event-management/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "testsecret", Algorithm: "HS256"}
}

func restore() {
	verifyAccessToken = service.VerifyAccessToken
	getUserByEmail = store.GetUserByEmail
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func stubUser(u *model.User) {
	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		if u != nil && u.Email == email {
			return u, nil
		}
		return nil, store.ErrNotFound
	}
}

func issueToken(t *testing.T, user model.User, ttl time.Duration) string {
	tok, err := service.IssueAccessToken(testConfig(), user, ttl)
	require.NoError(t, err)
	return tok
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.String(http.StatusOK, "ok")
	}
}

func TestRequireAuthFailures(t *testing.T) {
	cfg := testConfig()
	user := model.User{ID: 1, Email: "alice@example.com", Role: model.RoleNormal}

	cases := []struct {
		name string
		auth string
	}{
		{"missing header", ""},
		{"bad scheme", "Basic abc"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(restore)
			stubUser(&user)
			ctx, rec := newContext(tc.auth)
			called := false
			require.NoError(t, RequireAuth(cfg, nil)(okHandler(&called))(ctx))
			require.False(t, called)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

			// 失敗時 context 不得留下任何使用者綁定
			bound, ok := CurrentUser(ctx)
			require.False(t, ok)
			require.Nil(t, bound)
		})
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	t.Cleanup(restore)
	user := model.User{ID: 1, Email: "alice@example.com", Role: model.RoleNormal}
	stubUser(&user)

	tok := issueToken(t, user, -time.Minute)
	ctx, rec := newContext("Bearer " + tok)
	called := false
	require.NoError(t, RequireAuth(testConfig(), nil)(okHandler(&called))(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthMissingSubject(t *testing.T) {
	t.Cleanup(restore)
	stubUser(nil)

	// Email 為空 → 令牌缺 subject
	tok := issueToken(t, model.User{ID: 1}, time.Minute)
	ctx, rec := newContext("Bearer " + tok)
	called := false
	require.NoError(t, RequireAuth(testConfig(), nil)(okHandler(&called))(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthDeletedUser(t *testing.T) {
	t.Cleanup(restore)
	// 結構合法的令牌，但 subject 已不存在
	stubUser(nil)

	tok := issueToken(t, model.User{Email: "ghost@example.com"}, time.Minute)
	ctx, rec := newContext("Bearer " + tok)
	called := false
	require.NoError(t, RequireAuth(testConfig(), nil)(okHandler(&called))(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthSuccess(t *testing.T) {
	t.Cleanup(restore)
	user := model.User{ID: 2, Email: "bob@example.com", Role: model.RoleNormal}
	stubUser(&user)

	tok := issueToken(t, user, time.Minute)
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(testConfig(), nil)(func(c echo.Context) error {
		called = true
		bound, ok := CurrentUser(c)
		require.True(t, ok)
		require.Equal(t, &user, bound)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Run("normal role forbidden", func(t *testing.T) {
		t.Cleanup(restore)
		user := model.User{ID: 3, Email: "carol@example.com", Role: model.RoleNormal}
		stubUser(&user)

		tok := issueToken(t, user, time.Minute)
		ctx, rec := newContext("Bearer " + tok)
		called := false
		require.NoError(t, RequireAdmin(testConfig(), nil)(okHandler(&called))(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("db role decides, not claims", func(t *testing.T) {
		t.Cleanup(restore)
		// 令牌聲稱 admin，但資料列已降級為 normal
		user := model.User{ID: 4, Email: "dave@example.com", Role: model.RoleNormal}
		stubUser(&user)

		tok := issueToken(t, model.User{Email: "dave@example.com", Role: model.RoleAdmin}, time.Minute)
		ctx, rec := newContext("Bearer " + tok)
		called := false
		require.NoError(t, RequireAdmin(testConfig(), nil)(okHandler(&called))(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		t.Cleanup(restore)
		user := model.User{ID: 5, Email: "erin@example.com", Role: model.RoleAdmin}
		stubUser(&user)

		tok := issueToken(t, user, time.Minute)
		ctx, rec := newContext("Bearer " + tok)
		called := false
		require.NoError(t, RequireAdmin(testConfig(), nil)(okHandler(&called))(ctx))
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated before forbidden", func(t *testing.T) {
		t.Cleanup(restore)
		stubUser(nil)
		ctx, rec := newContext("")
		called := false
		require.NoError(t, RequireAdmin(testConfig(), nil)(okHandler(&called))(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token rejected before role check", func(t *testing.T) {
		t.Cleanup(restore)
		stubUser(nil)
		ctx, rec := newContext("Bearer not.a.jwt")
		called := false
		require.NoError(t, RequireAdmin(testConfig(), nil)(okHandler(&called))(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	})
}
