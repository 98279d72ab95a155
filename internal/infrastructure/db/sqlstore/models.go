package sqlstore

import (
	"time"

	"github.com/pagecraft/blog/internal/core/domain"
)

type userModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:250;uniqueIndex;not null"`
	Name         string    `gorm:"size:250;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:1000;not null"`
	Role         string    `gorm:"size:16;not null;default:reader"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type postModel struct {
	ID       uint      `gorm:"primaryKey"`
	Title    string    `gorm:"size:250;uniqueIndex;not null"`
	Subtitle string    `gorm:"size:250;not null"`
	Date     string    `gorm:"size:250;not null"`
	Body     string    `gorm:"type:text;not null"`
	ImgURL   string    `gorm:"column:img_url;size:250;not null"`
	AuthorID uint      `gorm:"not null;index"`
	Author   userModel `gorm:"foreignKey:AuthorID"`
}

func (postModel) TableName() string { return "blog_post" }

type commentModel struct {
	ID       uint      `gorm:"primaryKey"`
	Body     string    `gorm:"type:text;not null"`
	AuthorID uint      `gorm:"not null;index"`
	PostID   uint      `gorm:"not null;index"`
	Author   userModel `gorm:"foreignKey:AuthorID"`
	Post     postModel `gorm:"foreignKey:PostID"`
}

func (commentModel) TableName() string { return "comments" }

func (m *userModel) toDomain() *domain.User {
	if m == nil || m.ID == 0 {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
	}
}

func (m *postModel) toDomain() *domain.Post {
	return &domain.Post{
		ID:       m.ID,
		Title:    m.Title,
		Subtitle: m.Subtitle,
		Date:     m.Date,
		Body:     m.Body,
		ImgURL:   m.ImgURL,
		AuthorID: m.AuthorID,
		Author:   m.Author.toDomain(),
	}
}

func (m *commentModel) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:       m.ID,
		Body:     m.Body,
		AuthorID: m.AuthorID,
		PostID:   m.PostID,
		Author:   m.Author.toDomain(),
	}
}
