// Package session binds browser sessions to users and carries flash messages.
//
// The cookie holds an HS256-signed token whose jti is the session id; the
// session data itself lives in a ports.SessionStore so that logout revokes
// the session server-side.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

const (
	CookieName = "session"
	stateKey   = "session.state"
	defaultTTL = 30 * 24 * time.Hour
)

// Options configures a Manager.
type Options struct {
	// Secret signs the session cookie. Must not be empty.
	Secret string
	TTL    time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

type Manager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(store ports.SessionStore, opts Options) (*Manager, error) {
	if opts.Secret == "" {
		return nil, errors.New("session: secret is required")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		store:  store,
		secret: []byte(opts.Secret),
		ttl:    ttl,
		secure: opts.Secure,
		now:    time.Now,
	}, nil
}

// state is the per-request view of the session, cached on the echo.Context.
type state struct {
	id   string
	data *domain.SessionData
}

// UserID returns the user bound to the request's session, or 0 if anonymous.
// Missing, forged, expired and revoked sessions are all anonymous.
func (m *Manager) UserID(c echo.Context) (uint, error) {
	st, err := m.load(c)
	if err != nil {
		return 0, err
	}
	return st.data.UserID, nil
}

// Login binds the session to userID under a fresh session id.
func (m *Manager) Login(c echo.Context, userID uint) error {
	st, err := m.load(c)
	if err != nil {
		return err
	}
	if st.id != "" {
		if err := m.store.Delete(c.Request().Context(), st.id); err != nil {
			return err
		}
		st.id = ""
	}
	st.data.UserID = userID
	return m.save(c, st)
}

// Logout revokes the session and expires the cookie.
func (m *Manager) Logout(c echo.Context) error {
	st, err := m.load(c)
	if err != nil {
		return err
	}
	if st.id != "" {
		if err := m.store.Delete(c.Request().Context(), st.id); err != nil {
			return err
		}
	}
	st.id = ""
	st.data = &domain.SessionData{}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// AddFlash queues msg for the next rendered page. Anonymous visitors get a
// session created on demand.
func (m *Manager) AddFlash(c echo.Context, msg string) error {
	st, err := m.load(c)
	if err != nil {
		return err
	}
	st.data.Flashes = append(st.data.Flashes, msg)
	return m.save(c, st)
}

// PopFlashes returns and clears the queued flash messages. Call it before
// the response body is written.
func (m *Manager) PopFlashes(c echo.Context) ([]string, error) {
	st, err := m.load(c)
	if err != nil {
		return nil, err
	}
	if len(st.data.Flashes) == 0 {
		return nil, nil
	}
	out := st.data.Flashes
	st.data.Flashes = nil
	if err := m.save(c, st); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Manager) load(c echo.Context) (*state, error) {
	if st, ok := c.Get(stateKey).(*state); ok {
		return st, nil
	}

	st := &state{data: &domain.SessionData{}}
	if cookie, err := c.Cookie(CookieName); err == nil {
		if id, ok := m.parse(cookie.Value); ok {
			data, err := m.store.Get(c.Request().Context(), id)
			switch {
			case err == nil:
				st.id, st.data = id, data
			case errors.Is(err, domain.ErrSessionNotFound):
			default:
				return nil, err
			}
		}
	}
	c.Set(stateKey, st)
	return st, nil
}

func (m *Manager) save(c echo.Context, st *state) error {
	if st.id == "" {
		st.id = uuid.NewString()
	}
	if err := m.store.Save(c.Request().Context(), st.id, st.data, m.ttl); err != nil {
		return err
	}

	token, err := m.sign(st.id)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		Expires:  m.now().Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) sign(id string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// parse verifies the token and returns the session id it carries.
func (m *Manager) parse(token string) (string, bool) {
	var claims jwt.RegisteredClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tkn.Valid || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}
