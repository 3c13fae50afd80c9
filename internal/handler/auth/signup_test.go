package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"event-management/internal/api"
	"event-management/internal/database"
	"event-management/internal/model"
	"event-management/internal/service"
	"event-management/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	hashPassword = service.HashPassword
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
}

func newJSONCtx(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignupHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "/signup", "{")
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("email required")}
		ctx, rec := newJSONCtx(e, "/signup", `{"name":"A"}`)
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "email required")
	})

	t.Run("invalid role", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "/signup", `{"name":"A","email":"a@x.com","password":"pw","role":"superuser"}`)
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid role")
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, "/signup", `{"name":"A","email":"a@x.com","password":"pw"}`)
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			return nil, store.ErrDuplicateEmail
		}
		ctx, rec := newJSONCtx(e, "/signup", `{"name":"B","email":"a@x.com","password":"pw2"}`)
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Email already registered")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			return nil, errors.New("db")
		}
		ctx, rec := newJSONCtx(e, "/signup", `{"name":"A","email":"a@x.com","password":"pw"}`)
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success defaults to normal role", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, "alice@example.com", u.Email) // 已轉小寫
			require.Equal(t, model.RoleNormal, u.Role)
			require.NotEqual(t, "pw", u.PasswordHash)
			u.ID = 1
			u.CreatedAt = now
			return u, nil
		}
		ctx, rec := newJSONCtx(e, "/signup", `{"name":"Alice","email":"Alice@Example.com","password":"pw"}`)
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.ID)
		require.Equal(t, model.RoleNormal, resp.Role)
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("success with explicit admin role", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, model.RoleAdmin, u.Role)
			u.ID = 2
			return u, nil
		}
		ctx, rec := newJSONCtx(e, "/signup", `{"name":"Root","email":"root@x.com","password":"pw","role":"admin"}`)
		require.NoError(t, SignupHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}
