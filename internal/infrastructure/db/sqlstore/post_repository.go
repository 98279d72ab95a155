package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pagecraft/blog/internal/core/domain"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	m := postModel{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		Body:     post.Body,
		ImgURL:   post.ImgURL,
		AuthorID: post.AuthorID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return nil, postWriteErr("insert post", err)
	}
	return r.FindByID(ctx, m.ID)
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	return findPost(r.db.WithContext(ctx), id)
}

// List returns all posts ordered by id, which is insertion order.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	var ms []postModel
	if err := r.db.WithContext(ctx).Preload("Author").Order("id").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	out := make([]*domain.Post, len(ms))
	for i := range ms {
		out[i] = ms[i].toDomain()
	}
	return out, nil
}

func (r *PostRepository) Update(ctx context.Context, id uint, content domain.PostContent) (*domain.Post, error) {
	var updated *domain.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, id); err != nil {
			return err
		}
		res := tx.Model(&postModel{ID: id}).
			Select("title", "subtitle", "body", "img_url").
			Updates(postModel{
				Title:    content.Title,
				Subtitle: content.Subtitle,
				Body:     content.Body,
				ImgURL:   content.ImgURL,
			})
		if res.Error != nil {
			return postWriteErr("update post", res.Error)
		}
		p, err := findPost(tx, id)
		updated = p
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the post's comments and then the post, atomically.
func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, id); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&commentModel{}).Error; err != nil {
			return fmt.Errorf("delete comments of post %d: %w", id, err)
		}
		if err := tx.Delete(&postModel{}, id).Error; err != nil {
			return fmt.Errorf("delete post %d: %w", id, err)
		}
		return nil
	})
}

func findPost(db *gorm.DB, id uint) (*domain.Post, error) {
	var m postModel
	if err := db.Preload("Author").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	return m.toDomain(), nil
}

func postWriteErr(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateTitle
	}
	return fmt.Errorf("%s: %w", op, err)
}
