package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

type CommentService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewCommentService(posts ports.PostRepository, comments ports.CommentRepository, log zerolog.Logger) *CommentService {
	return &CommentService{posts: posts, comments: comments, log: log}
}

func (s *CommentService) Add(ctx context.Context, author *domain.User, postID uint, body string) (*domain.Comment, error) {
	if author == nil {
		return nil, domain.ErrUnauthenticated
	}

	// The parent post must exist; comments are never stored as orphans.
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		Body:     strings.TrimSpace(body),
		AuthorID: author.ID,
		PostID:   postID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Uint("post_id", postID).Uint("author_id", author.ID).Msg("comment added")
	return created, nil
}
