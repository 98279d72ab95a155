package handler

import (
	"strings"

	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

type registerForm struct {
	Email    string `form:"email" validate:"required,email,max=250"`
	Name     string `form:"name" validate:"required,max=250"`
	Password string `form:"password" validate:"required,min=8,max=72"`
}

func (f *registerForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
}

func (f registerForm) input() ports.RegisterInput {
	return ports.RegisterInput{Email: f.Email, Name: f.Name, Password: f.Password}
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (f *loginForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

type postForm struct {
	Title    string `form:"title" validate:"required,max=250"`
	Subtitle string `form:"subtitle" validate:"required,max=250"`
	ImgURL   string `form:"img_url" validate:"required,url,max=250"`
	Body     string `form:"body" validate:"required"`
}

func (f *postForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Subtitle = strings.TrimSpace(f.Subtitle)
	f.ImgURL = strings.TrimSpace(f.ImgURL)
	f.Body = strings.TrimSpace(f.Body)
}

func (f postForm) content() domain.PostContent {
	return domain.PostContent{Title: f.Title, Subtitle: f.Subtitle, Body: f.Body, ImgURL: f.ImgURL}
}

func postFormFrom(p *domain.Post) postForm {
	return postForm{Title: p.Title, Subtitle: p.Subtitle, ImgURL: p.ImgURL, Body: p.Body}
}

type commentForm struct {
	Comment string `form:"comment" validate:"required"`
}

func (f *commentForm) normalize() {
	f.Comment = strings.TrimSpace(f.Comment)
}

// contactForm accepts any non-empty email; the address is only used as Reply-To.
type contactForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Phone   string `form:"phone" validate:"required"`
	Message string `form:"message" validate:"required"`
}

func (f *contactForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
}

func (f contactForm) input() ports.ContactInput {
	return ports.ContactInput{Name: f.Name, Email: f.Email, Phone: f.Phone, Message: f.Message}
}
