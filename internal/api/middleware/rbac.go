package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagecraft/blog/internal/api/metrics"
	"github.com/pagecraft/blog/internal/api/session"
)

const loginRequiredFlash = "Please log in to access this page."

// AdminOnly rejects every principal that is not the administrator with 403,
// anonymous visitors included.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.PrincipalFrom(c.Request().Context()).IsAdmin() {
				metrics.AdminDeniedTotal.Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}

// RequireLogin sends anonymous visitors to the login page.
func RequireLogin(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.PrincipalFrom(c.Request().Context()).IsAuthenticated() {
				if err := sessions.AddFlash(c, loginRequiredFlash); err != nil {
					return err
				}
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}
