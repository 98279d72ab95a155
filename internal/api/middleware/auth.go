package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/core/domain"
)

// UserLookup resolves a session's user id to an account.
type UserLookup interface {
	CurrentUser(ctx context.Context, id uint) (*domain.User, error)
}

// LoadPrincipal resolves the session cookie into a session.Principal and
// stores it on the request context. Any failure to resolve the user leaves
// the visitor anonymous instead of failing the request.
func LoadPrincipal(sessions *session.Manager, users UserLookup, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			var p session.Principal

			uid, err := sessions.UserID(c)
			if err != nil {
				log.Warn().Err(err).Msg("session lookup failed")
			}
			if uid != 0 {
				user, err := users.CurrentUser(req.Context(), uid)
				switch {
				case err == nil:
					p.User = user
				case errors.Is(err, domain.ErrUserNotFound):
				default:
					log.Warn().Err(err).Uint("user_id", uid).Msg("load session user")
				}
			}

			c.SetRequest(req.WithContext(session.WithPrincipal(req.Context(), p)))
			return next(c)
		}
	}
}
