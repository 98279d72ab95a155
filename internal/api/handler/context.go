package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/api/view"
	"github.com/pagecraft/blog/internal/core/domain"
)

var errInvalidForm = echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")

// principal returns the identity injected by the LoadPrincipal middleware.
func principal(c echo.Context) session.Principal {
	return session.PrincipalFrom(c.Request().Context())
}

// postID reads the ?id= query parameter. A missing or malformed id is
// reported as domain.ErrPostNotFound so it renders the same 404 as an
// unknown one.
func postID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.QueryParam("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, domain.ErrPostNotFound
	}
	return uint(id), nil
}

func postURL(id uint) string {
	return "/post?id=" + strconv.FormatUint(uint64(id), 10)
}

// normalizer is implemented by forms that trim their own input.
type normalizer interface {
	normalize()
}

// bindForm binds and validates a form submission. Validation failures come
// back as FieldErrors; anything else is a malformed request.
func bindForm(c echo.Context, form normalizer) error {
	if err := c.Bind(form); err != nil {
		return errInvalidForm
	}
	form.normalize()
	return c.Validate(form)
}

// pages renders views with the per-request layout data.
type pages struct {
	sessions *session.Manager
}

// render fills in the principal and pending flashes, then writes the page.
func (p pages) render(c echo.Context, status int, name string, page *view.Page) error {
	page.User = principal(c).User
	flashes, err := p.sessions.PopFlashes(c)
	if err != nil {
		return err
	}
	page.Flashes = flashes
	return c.Render(status, name, page)
}

// invalid re-renders a form page with the field errors carried by err.
func (p pages) invalid(c echo.Context, name string, page *view.Page, err error) error {
	var fe FieldErrors
	if !errors.As(err, &fe) {
		return err
	}
	page.Errors = fe
	return p.render(c, http.StatusUnprocessableEntity, name, page)
}

// flashRedirect queues msg and redirects to target.
func (p pages) flashRedirect(c echo.Context, msg, target string) error {
	if err := p.sessions.AddFlash(c, msg); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, target)
}
