package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagecraft/blog/internal/api/metrics"
	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/api/view"
	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

const (
	flashEmailTaken    = "You've already signed up with that email, log in instead!"
	flashUnknownEmail  = "That email does not exist, please try another one!"
	flashWrongPassword = "Password is not correct, please try another one!"
)

type AuthHandler struct {
	pages
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{pages: pages{sessions: sessions}, authService: authService}
}

// RegisterPage renders the blank registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "register.html", &view.Page{Title: "Register", Form: registerForm{}})
}

// Register creates an account and logs it in. An email that is already
// taken sends the visitor to the login page with a flash.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := bindForm(c, &form); err != nil {
		form.Password = ""
		return h.invalid(c, "register.html", &view.Page{Title: "Register", Form: form}, err)
	}

	user, err := h.authService.Register(c.Request().Context(), form.input())
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return h.flashRedirect(c, flashEmailTaken, "/login")
	case errors.Is(err, domain.ErrPasswordTooLong):
		form.Password = ""
		return h.render(c, http.StatusUnprocessableEntity, "register.html", &view.Page{
			Title:  "Register",
			Form:   form,
			Errors: FieldErrors{"password": "password must be at most 72 bytes"},
		})
	case errors.Is(err, domain.ErrInvalidInput):
		form.Password = ""
		return h.render(c, http.StatusUnprocessableEntity, "register.html", &view.Page{
			Title:     "Register",
			Form:      form,
			FormError: "Please fill in every field.",
		})
	case err != nil:
		return err
	}
	metrics.UsersRegisteredTotal.Inc()

	if err := h.sessions.Login(c, user.ID); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// LoginPage renders the blank login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "login.html", &view.Page{Title: "Log In", Form: loginForm{}})
}

// Login authenticates the visitor. Unknown emails and wrong passwords get
// distinct flashes and a redirect back to the form.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := bindForm(c, &form); err != nil {
		form.Password = ""
		return h.invalid(c, "login.html", &view.Page{Title: "Log In", Form: form}, err)
	}

	user, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
		return h.flashRedirect(c, flashUnknownEmail, "/login")
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		return h.flashRedirect(c, flashWrongPassword, "/login")
	case err != nil:
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	if err := h.sessions.Login(c, user.ID); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout ends the session. It is a no-op for anonymous visitors.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
