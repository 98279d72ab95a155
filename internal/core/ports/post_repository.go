package ports

import (
	"context"

	"github.com/pagecraft/blog/internal/core/domain"
)

// PostRepository defines persistence for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindByID returns the post with its author loaded, or domain.ErrPostNotFound.
	FindByID(ctx context.Context, id uint) (*domain.Post, error)
	// List returns every post in store order.
	List(ctx context.Context) ([]*domain.Post, error)
	// Update overwrites the editable fields only; author and date are kept.
	Update(ctx context.Context, id uint, content domain.PostContent) (*domain.Post, error)
	// Delete removes the post and all of its comments in one transaction.
	Delete(ctx context.Context, id uint) error
}

// CommentRepository defines persistence for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	// ListByPost returns the comments of a post, oldest first, authors loaded.
	ListByPost(ctx context.Context, postID uint) ([]*domain.Comment, error)
}
