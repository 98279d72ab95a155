package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

// AuthService implements registration, login and session user lookup.
type AuthService struct {
	users ports.UserRepository
	audit ports.AuditLog
	log   zerolog.Logger
}

const maxPasswordBytes = 72

func NewAuthService(users ports.UserRepository, audit ports.AuditLog, log zerolog.Logger) *AuthService {
	if audit == nil {
		audit = NopAudit{}
	}
	return &AuthService{users: users, audit: audit, log: log}
}

// Register creates an account. An email that is already taken yields
// domain.ErrUserExists, whether caught by the lookup here or by the store's
// unique constraint when two registrations race.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	// bcrypt only accepts 72 bytes; the form limit counts characters.
	if len(in.Password) > maxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	record(ctx, s.audit, s.log, domain.AuditEntry{
		Action:    domain.AuditUserRegistered,
		ActorID:   created.ID,
		SubjectID: created.ID,
		Details:   map[string]string{"role": created.Role},
	})
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id uint) (*domain.User, error) {
	if id == 0 {
		return nil, domain.ErrUserNotFound
	}
	return s.users.FindByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
