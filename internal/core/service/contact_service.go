package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

const contactSubject = "Message Via Your Blog"

// ContactService relays contact-form submissions to the site owner by email.
type ContactService struct {
	mailer ports.Mailer
	audit  ports.AuditLog
	log    zerolog.Logger
}

func NewContactService(mailer ports.Mailer, audit ports.AuditLog, log zerolog.Logger) *ContactService {
	if audit == nil {
		audit = NopAudit{}
	}
	return &ContactService{mailer: mailer, audit: audit, log: log}
}

// Send blocks until the mail server accepts or rejects the message.
func (s *ContactService) Send(ctx context.Context, in ports.ContactInput) error {
	msg := domain.MailMessage{
		ReplyTo: in.Email,
		Subject: contactSubject,
		Body:    contactBody(in),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}

	s.log.Info().Str("from", in.Email).Msg("contact message sent")
	record(ctx, s.audit, s.log, domain.AuditEntry{
		Action:  domain.AuditContactSent,
		Details: map[string]string{"name": in.Name, "email": in.Email},
	})
	return nil
}

func contactBody(in ports.ContactInput) string {
	return fmt.Sprintf("By %s\n%s\nmy email: %s\nmy phone number: %s\n",
		in.Name, in.Message, in.Email, in.Phone)
}
