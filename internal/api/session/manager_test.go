package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	m, err := NewManager(store, Options{Secret: testSecret, TTL: time.Hour})
	require.NoError(t, err)
	return m, store
}

// newContext builds a request context carrying the given cookies.
func newContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatalf("response did not set %q cookie", CookieName)
	return nil
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(NewMemoryStore(), Options{})
	assert.Error(t, err)
}

func TestUserID_AnonymousWithoutCookie(t *testing.T) {
	m, _ := newTestManager(t)
	c, rec := newContext()

	id, err := m.UserID(c)
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_BindsUserAcrossRequests(t *testing.T) {
	m, _ := newTestManager(t)

	c, rec := newContext()
	require.NoError(t, m.Login(c, 7))
	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	next, _ := newContext(cookie)
	id, err := m.UserID(next)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestLogin_RotatesSessionID(t *testing.T) {
	m, store := newTestManager(t)

	c, rec := newContext()
	require.NoError(t, m.AddFlash(c, "hello"))
	anon := sessionCookie(t, rec)
	require.Equal(t, 1, store.Len())

	c2, rec2 := newContext(anon)
	require.NoError(t, m.Login(c2, 1))
	authed := sessionCookie(t, rec2)

	assert.NotEqual(t, anon.Value, authed.Value)
	assert.Equal(t, 1, store.Len(), "old session must be deleted")

	// The anonymous cookie no longer resolves.
	c3, _ := newContext(anon)
	id, err := m.UserID(c3)
	require.NoError(t, err)
	assert.Zero(t, id)

	// Flashes queued before login survive rotation.
	c4, _ := newContext(authed)
	flashes, err := m.PopFlashes(c4)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, flashes)
}

func TestLogout_RevokesSession(t *testing.T) {
	m, store := newTestManager(t)

	c, rec := newContext()
	require.NoError(t, m.Login(c, 3))
	cookie := sessionCookie(t, rec)

	c2, rec2 := newContext(cookie)
	require.NoError(t, m.Logout(c2))
	assert.Equal(t, 0, store.Len())
	cleared := sessionCookie(t, rec2)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// Replaying the old cookie yields an anonymous visitor.
	c3, _ := newContext(cookie)
	id, err := m.UserID(c3)
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestFlashes_PoppedOnce(t *testing.T) {
	m, _ := newTestManager(t)

	c, rec := newContext()
	require.NoError(t, m.AddFlash(c, "one"))
	require.NoError(t, m.AddFlash(c, "two"))
	cookie := sessionCookie(t, rec)

	c2, _ := newContext(cookie)
	flashes, err := m.PopFlashes(c2)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, flashes)

	c3, _ := newContext(cookie)
	flashes, err = m.PopFlashes(c3)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}

func TestUserID_RejectsForgedCookie(t *testing.T) {
	m, store := newTestManager(t)

	c, rec := newContext()
	require.NoError(t, m.Login(c, 1))
	legit := sessionCookie(t, rec)

	// Re-sign the same session id with another key.
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(legit.Value, &claims)
	require.NoError(t, err)
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	c2, _ := newContext(&http.Cookie{Name: CookieName, Value: forged})
	id, err := m.UserID(c2)
	require.NoError(t, err)
	assert.Zero(t, id)

	c3, _ := newContext(&http.Cookie{Name: CookieName, Value: "garbage"})
	id, err = m.UserID(c3)
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestUserID_ExpiredToken(t *testing.T) {
	m, _ := newTestManager(t)
	start := time.Now()
	m.now = func() time.Time { return start }

	c, rec := newContext()
	require.NoError(t, m.Login(c, 1))
	cookie := sessionCookie(t, rec)

	m.now = func() time.Time { return start.Add(2 * time.Hour) }
	c2, _ := newContext(cookie)
	id, err := m.UserID(c2)
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(context.Background(), "a", &domainData, time.Minute))
	got, err := s.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, uint(4), got.UserID)

	// Mutating the returned copy does not leak into the store.
	got.Flashes[0] = "changed"
	again, err := s.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "hi", again.Flashes[0])

	s.now = func() time.Time { return now.Add(time.Minute) }
	_, err = s.Get(context.Background(), "a")
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestPrincipalContext(t *testing.T) {
	c, _ := newContext()
	ctx := c.Request().Context()

	assert.False(t, PrincipalFrom(ctx).IsAuthenticated())
	assert.False(t, PrincipalFrom(ctx).IsAdmin())
	assert.Zero(t, PrincipalFrom(ctx).UserID())

	ctx = WithPrincipal(ctx, Principal{User: &adminUser})
	p := PrincipalFrom(ctx)
	assert.True(t, p.IsAuthenticated())
	assert.True(t, p.IsAdmin())
	assert.Equal(t, uint(1), p.UserID())
}
