package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pagecraft/blog/internal/core/domain"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	m := commentModel{
		Body:     comment.Body,
		AuthorID: comment.AuthorID,
		PostID:   comment.PostID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uint) ([]*domain.Comment, error) {
	var ms []commentModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("id").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	out := make([]*domain.Comment, len(ms))
	for i := range ms {
		out[i] = ms[i].toDomain()
	}
	return out, nil
}
