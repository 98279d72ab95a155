package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	dates    ports.DateProvider
	audit    ports.AuditLog
	log      zerolog.Logger
}

func NewPostService(
	posts ports.PostRepository,
	comments ports.CommentRepository,
	dates ports.DateProvider,
	audit ports.AuditLog,
	log zerolog.Logger,
) *PostService {
	if audit == nil {
		audit = NopAudit{}
	}
	return &PostService{posts: posts, comments: comments, dates: dates, audit: audit, log: log}
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

// Get loads a post and its comments. Unknown ids yield domain.ErrPostNotFound.
func (s *PostService) Get(ctx context.Context, id uint) (*ports.PostDetail, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &ports.PostDetail{Post: post, Comments: comments}, nil
}

// Create publishes a new post authored by author, dated today.
func (s *PostService) Create(ctx context.Context, author *domain.User, content domain.PostContent) (*domain.Post, error) {
	if !author.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	post := &domain.Post{
		Date:     s.dates.Today().String(),
		AuthorID: author.ID,
	}
	post.Apply(content)

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("post_id", created.ID).Uint("author_id", author.ID).Msg("post created")
	record(ctx, s.audit, s.log, domain.AuditEntry{
		Action:    domain.AuditPostCreated,
		ActorID:   author.ID,
		SubjectID: created.ID,
		Details:   map[string]string{"title": created.Title},
	})
	return created, nil
}

// Update replaces the editable fields of a post. Author and date are preserved.
func (s *PostService) Update(ctx context.Context, actor *domain.User, id uint, content domain.PostContent) (*domain.Post, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	updated, err := s.posts.Update(ctx, id, content)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("post_id", id).Msg("post updated")
	record(ctx, s.audit, s.log, domain.AuditEntry{
		Action:    domain.AuditPostUpdated,
		ActorID:   actor.ID,
		SubjectID: id,
		Details:   map[string]string{"title": updated.Title},
	})
	return updated, nil
}

// Delete removes a post together with its comments.
func (s *PostService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Uint("post_id", id).Msg("post deleted")
	record(ctx, s.audit, s.log, domain.AuditEntry{
		Action:    domain.AuditPostDeleted,
		ActorID:   actor.ID,
		SubjectID: id,
	})
	return nil
}
