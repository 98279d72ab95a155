package ports

import (
	"context"

	"github.com/pagecraft/blog/internal/core/domain"
)

// ContactInput is a message submitted through the contact form.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactService interface {
	Send(ctx context.Context, input ContactInput) error
}

// Mailer delivers a message to the site owner.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}
