package ports

import (
	"context"

	"github.com/pagecraft/blog/internal/core/domain"
)

// PostDetail is a post together with its comments.
type PostDetail struct {
	Post     *domain.Post
	Comments []*domain.Comment
}

// PostService defines the read and admin write use cases for posts.
type PostService interface {
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id uint) (*PostDetail, error)
	Create(ctx context.Context, author *domain.User, content domain.PostContent) (*domain.Post, error)
	Update(ctx context.Context, actor *domain.User, id uint, content domain.PostContent) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.User, id uint) error
}

// CommentService handles comment submission.
type CommentService interface {
	// Add stores a comment by author on the post. A nil author yields
	// domain.ErrUnauthenticated and nothing is written.
	Add(ctx context.Context, author *domain.User, postID uint, body string) (*domain.Comment, error)
}
