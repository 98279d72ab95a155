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
	flashCommentLogin  = "To leave a comment, you need to log in with your account!"
	duplicateTitleText = "A post with that title already exists."
)

type PostHandler struct {
	pages
	postService    ports.PostService
	commentService ports.CommentService
}

func NewPostHandler(postService ports.PostService, commentService ports.CommentService, sessions *session.Manager) *PostHandler {
	return &PostHandler{
		pages:          pages{sessions: sessions},
		postService:    postService,
		commentService: commentService,
	}
}

// Home lists every post.
func (h *PostHandler) Home(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "index.html", &view.Page{Posts: posts})
}

// Show renders one post with its comments and an empty comment form.
func (h *PostHandler) Show(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}
	return h.showPost(c, http.StatusOK, id, commentForm{}, nil)
}

// Comment stores a comment from the logged-in visitor. Anonymous visitors
// are sent to the login page with a flash.
func (h *PostHandler) Comment(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	p := principal(c)
	if !p.IsAuthenticated() {
		return h.flashRedirect(c, flashCommentLogin, "/login")
	}

	var form commentForm
	if err := bindForm(c, &form); err != nil {
		var fe FieldErrors
		if !errors.As(err, &fe) {
			return err
		}
		return h.showPost(c, http.StatusUnprocessableEntity, id, form, fe)
	}

	_, err = h.commentService.Add(c.Request().Context(), p.User, id, form.Comment)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return h.flashRedirect(c, flashCommentLogin, "/login")
	case err != nil:
		return err
	}
	metrics.CommentsCreatedTotal.Inc()

	return c.Redirect(http.StatusFound, postURL(id))
}

func (h *PostHandler) showPost(c echo.Context, status int, id uint, form commentForm, errs FieldErrors) error {
	detail, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return h.render(c, status, "post.html", &view.Page{
		Title:    detail.Post.Title,
		Post:     detail.Post,
		Comments: detail.Comments,
		Form:     form,
		Errors:   errs,
	})
}

// NewPost renders the blank post editor.
func (h *PostHandler) NewPost(c echo.Context) error {
	return h.render(c, http.StatusOK, "make-post.html", newPostPage(postForm{}))
}

// Create publishes a post authored by the admin.
func (h *PostHandler) Create(c echo.Context) error {
	var form postForm
	if err := bindForm(c, &form); err != nil {
		return h.invalid(c, "make-post.html", newPostPage(form), err)
	}

	_, err := h.postService.Create(c.Request().Context(), principal(c).User, form.content())
	if errors.Is(err, domain.ErrDuplicateTitle) {
		page := newPostPage(form)
		page.FormError = duplicateTitleText
		return h.render(c, http.StatusConflict, "make-post.html", page)
	}
	if err != nil {
		return err
	}
	metrics.PostChangesTotal.WithLabelValues("created").Inc()

	return c.Redirect(http.StatusFound, "/")
}

// EditPost renders the editor prefilled with the stored post.
func (h *PostHandler) EditPost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}
	detail, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "make-post.html", editPostPage(postFormFrom(detail.Post)))
}

// Update overwrites the editable fields and returns to the post.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	var form postForm
	if err := bindForm(c, &form); err != nil {
		return h.invalid(c, "make-post.html", editPostPage(form), err)
	}

	_, err = h.postService.Update(c.Request().Context(), principal(c).User, id, form.content())
	if errors.Is(err, domain.ErrDuplicateTitle) {
		page := editPostPage(form)
		page.FormError = duplicateTitleText
		return h.render(c, http.StatusConflict, "make-post.html", page)
	}
	if err != nil {
		return err
	}
	metrics.PostChangesTotal.WithLabelValues("updated").Inc()

	return c.Redirect(http.StatusFound, postURL(id))
}

// Delete removes a post and its comments.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}
	if err := h.postService.Delete(c.Request().Context(), principal(c).User, id); err != nil {
		return err
	}
	metrics.PostChangesTotal.WithLabelValues("deleted").Inc()

	return c.Redirect(http.StatusFound, "/")
}

func newPostPage(form postForm) *view.Page {
	return &view.Page{Title: "New Post", Heading: "New Post", Form: form}
}

func editPostPage(form postForm) *view.Page {
	return &view.Page{Title: "Edit Post", Heading: "Edit Post", Form: form}
}
