package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/api/view"
	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

var (
	adminUser  = &domain.User{ID: 1, Email: "admin@example.com", Name: "Admin", Role: domain.RoleAdmin}
	readerUser = &domain.User{ID: 2, Email: "reader@example.com", Name: "Reader", Role: domain.RoleReader}
)

type testEnv struct {
	e        *echo.Echo
	sessions *session.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	e := echo.New()
	r, err := view.New()
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	e.Renderer = r
	e.Validator = NewValidator()

	sessions, err := session.NewManager(session.NewMemoryStore(), session.Options{Secret: "test"})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return &testEnv{e: e, sessions: sessions}
}

// newContext builds a request for target as principal p. A non-nil form
// is sent url-encoded.
func (env *testEnv) newContext(method, target string, form url.Values, p session.Principal) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = req.WithContext(session.WithPrincipal(req.Context(), p))
	rec := httptest.NewRecorder()
	return env.e.NewContext(req, rec), rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func assertFlash(t *testing.T, env *testEnv, c echo.Context, want string) {
	t.Helper()
	flashes, err := env.sessions.PopFlashes(c)
	if err != nil {
		t.Fatalf("pop flashes: %v", err)
	}
	if len(flashes) != 1 || flashes[0] != want {
		t.Fatalf("expected flash %q, got %v", want, flashes)
	}
}

// ── stubs ────────────────────────────────────────────────────────────────────

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(context.Context, uint) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

type stubPostService struct {
	posts     map[uint]*domain.Post
	createErr error
	created   []domain.PostContent
	deleted   []uint
}

func (s *stubPostService) List(context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubPostService) Get(_ context.Context, id uint) (*ports.PostDetail, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &ports.PostDetail{Post: p}, nil
}

func (s *stubPostService) Create(_ context.Context, author *domain.User, content domain.PostContent) (*domain.Post, error) {
	if !author.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, content)
	return &domain.Post{ID: 99, Title: content.Title}, nil
}

func (s *stubPostService) Update(_ context.Context, _ *domain.User, id uint, content domain.PostContent) (*domain.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Apply(content)
	return p, nil
}

func (s *stubPostService) Delete(_ context.Context, _ *domain.User, id uint) error {
	if _, ok := s.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubCommentService struct {
	added []string
}

func (s *stubCommentService) Add(_ context.Context, author *domain.User, _ uint, body string) (*domain.Comment, error) {
	if author == nil {
		return nil, domain.ErrUnauthenticated
	}
	s.added = append(s.added, body)
	return &domain.Comment{Body: body, AuthorID: author.ID}, nil
}

type stubContactService struct {
	err  error
	sent []ports.ContactInput
}

func (s *stubContactService) Send(_ context.Context, in ports.ContactInput) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, in)
	return nil
}

func helloWorld() map[uint]*domain.Post {
	return map[uint]*domain.Post{
		1: {ID: 1, Title: "Hello World", Subtitle: "First", Body: "<p>Welcome</p>", ImgURL: "https://example.com/a.jpg", Date: "October 15, 2026", Author: adminUser},
	}
}
