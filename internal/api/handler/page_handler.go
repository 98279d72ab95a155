package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/api/view"
)

// PageHandler serves static pages.
type PageHandler struct {
	pages
}

func NewPageHandler(sessions *session.Manager) *PageHandler {
	return &PageHandler{pages: pages{sessions: sessions}}
}

func (h *PageHandler) About(c echo.Context) error {
	return h.render(c, http.StatusOK, "about.html", &view.Page{Title: "About"})
}
