package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagecraft/blog/internal/api/metrics"
	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/api/view"
	"github.com/pagecraft/blog/internal/core/ports"
)

const (
	contactPrompt = "Contact Me"
	contactSent   = "Your message was sent successfully"
)

type ContactHandler struct {
	pages
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService, sessions *session.Manager) *ContactHandler {
	return &ContactHandler{pages: pages{sessions: sessions}, contactService: contactService}
}

// Form renders the blank contact form.
func (h *ContactHandler) Form(c echo.Context) error {
	return h.render(c, http.StatusOK, "contact.html", contactPage(contactPrompt, contactForm{}))
}

// Send mails the message to the site owner. Delivery failures surface as a
// server error rather than a false confirmation.
func (h *ContactHandler) Send(c echo.Context) error {
	var form contactForm
	if err := bindForm(c, &form); err != nil {
		return h.invalid(c, "contact.html", contactPage(contactPrompt, form), err)
	}

	if err := h.contactService.Send(c.Request().Context(), form.input()); err != nil {
		metrics.ContactMessagesTotal.WithLabelValues("failed").Inc()
		return err
	}
	metrics.ContactMessagesTotal.WithLabelValues("sent").Inc()

	return h.render(c, http.StatusOK, "contact.html", contactPage(contactSent, contactForm{}))
}

func contactPage(message string, form contactForm) *view.Page {
	return &view.Page{Title: "Contact", Message: message, Form: form}
}
