package service

import (
	"context"
	"errors"
	"sync"

	"github.com/pagecraft/blog/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stand-ins for the ports used by the services.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	byID      map[uint]*domain.User
	nextID    uint
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uint]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = r.nextID
	created.Role = domain.RoleReader
	if created.ID == 1 {
		created.Role = domain.RoleAdmin
	}
	r.nextID++
	r.byID[created.ID] = created
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubPostRepo struct {
	byID    map[uint]*domain.Post
	order   []uint
	nextID  uint
	deleted []uint
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[uint]*domain.Post), nextID: 1}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	for _, p := range r.byID {
		if p.Title == post.Title {
			return nil, domain.ErrDuplicateTitle
		}
	}
	created := *post
	created.ID = r.nextID
	r.nextID++
	r.byID[created.ID] = &created
	r.order = append(r.order, created.ID)
	out := created
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id uint) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	out := *p
	return &out, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, id uint, content domain.PostContent) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Apply(content)
	out := *p
	return &out, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubCommentRepo struct {
	stored  []*domain.Comment
	listErr error
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	created := *c
	created.ID = uint(len(r.stored) + 1)
	r.stored = append(r.stored, &created)
	out := created
	return &out, nil
}

func (r *stubCommentRepo) ListByPost(_ context.Context, postID uint) ([]*domain.Comment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Comment
	for _, c := range r.stored {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type stubAudit struct {
	err     error
	entries []domain.AuditEntry
}

func (a *stubAudit) Record(_ context.Context, e domain.AuditEntry) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, e)
	return nil
}

type stubMailer struct {
	err  error
	sent []domain.MailMessage
}

func (m *stubMailer) Send(_ context.Context, msg domain.MailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fixedDate domain.CalendarDate

func (d fixedDate) Today() domain.CalendarDate { return domain.CalendarDate(d) }

var errStore = errors.New("store unavailable")
