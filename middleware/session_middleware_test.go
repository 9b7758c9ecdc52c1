// middleware/session_middleware_test.go
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
	"github.com/lumen-social/lumen/sessions"
)

func newTestManager(t *testing.T) (*SessionManager, sessions.Store, repositories.UserRepository) {
	t.Helper()
	store := sessions.NewMemoryStore()
	users := repositories.NewMemoryStore().Users
	codec := sessions.NewCookieCodec("test-secret")
	return NewSessionManager(store, codec, users), store, users
}

func seedUser(t *testing.T, users repositories.UserRepository, id, username string) {
	t.Helper()
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID:        id,
		Username:  username,
		CreatedAt: time.Now(),
	}))
}

// runRequest sends req through LoadSession into handler and returns the
// recorder.
func runRequest(m *SessionManager, req *http.Request, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = m.LoadSession()(handler)(c)
	return rec
}

func sessionCookie(t *testing.T, m *SessionManager, session *sessions.Session) *http.Cookie {
	t.Helper()
	value, err := m.codec.Encode(session.ID, session.ExpiresAt)
	require.NoError(t, err)
	return &http.Cookie{Name: sessions.CookieName, Value: value}
}

func TestLoadSessionAnonymous(t *testing.T) {
	m, _, _ := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	runRequest(m, req, func(c echo.Context) error {
		assert.Nil(t, CurrentUser(c))
		assert.Empty(t, CurrentUserID(c))
		assert.Nil(t, SessionFromContext(c))
		return c.NoContent(http.StatusOK)
	})
}

func TestLoadSessionResolvesUser(t *testing.T) {
	m, store, users := newTestManager(t)
	seedUser(t, users, "u1", "alice")

	session, err := store.Create(context.Background())
	require.NoError(t, err)
	session.UserID = "u1"
	require.NoError(t, store.Save(context.Background(), session))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, m, session))
	runRequest(m, req, func(c echo.Context) error {
		user := CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "u1", CurrentUserID(c))
		return c.NoContent(http.StatusOK)
	})
}

func TestLoadSessionDestroysDanglingUserSession(t *testing.T) {
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	session, err := store.Create(ctx)
	require.NoError(t, err)
	session.UserID = "vanished"
	require.NoError(t, store.Save(ctx, session))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, m, session))
	rec := runRequest(m, req, func(c echo.Context) error {
		t.Fatal("handler must not run for a dangling session")
		return nil
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?error=user_not_found", rec.Header().Get("Location"))

	gone, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestLoadSessionIgnoresTamperedCookie(t *testing.T) {
	m, _, _ := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: "forged"})
	runRequest(m, req, func(c echo.Context) error {
		assert.Nil(t, SessionFromContext(c))
		return c.NoContent(http.StatusOK)
	})
}

func TestRequireLoginRecordsReturnTo(t *testing.T) {
	m, store, _ := newTestManager(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/upload?draft=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.RequireLogin()(func(c echo.Context) error {
		t.Fatal("handler must not run for anonymous visitors")
		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	session := SessionFromContext(c)
	require.NotNil(t, session)
	assert.Equal(t, "/upload?draft=1", session.ReturnTo)

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "/upload?draft=1", saved.ReturnTo)
}

func TestLoginAndTakeReturnTo(t *testing.T) {
	m, store, users := newTestManager(t)
	seedUser(t, users, "u1", "alice")
	e := echo.New()
	ctx := context.Background()

	// An anonymous session already recorded a destination.
	session, err := store.Create(ctx)
	require.NoError(t, err)
	session.ReturnTo = "/notifications"
	require.NoError(t, store.Save(ctx, session))

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(contextSessionKey, session)

	require.NoError(t, m.Login(c, "u1"))

	saved, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", saved.UserID)

	// Consumed exactly once.
	assert.Equal(t, "/notifications", m.TakeReturnTo(c))
	assert.Empty(t, m.TakeReturnTo(c))
}

func TestLogoutDestroysSession(t *testing.T) {
	m, store, _ := newTestManager(t)
	e := echo.New()
	ctx := context.Background()

	session, err := store.Create(ctx)
	require.NoError(t, err)
	session.UserID = "u1"
	require.NoError(t, store.Save(ctx, session))

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(contextSessionKey, session)

	m.Logout(c)

	gone, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
