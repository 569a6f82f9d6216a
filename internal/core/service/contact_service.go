package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

// ContactService stores contact form submissions and exposes them to
// administrators.
type ContactService struct {
	repo ports.MessageRepository
	log  zerolog.Logger
}

func NewContactService(repo ports.MessageRepository, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, log: log}
}

func (s *ContactService) Submit(ctx context.Context, input ports.SubmitMessageInput) (*domain.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" {
		return nil, domain.ErrValidation
	}

	created, err := s.repo.Insert(ctx, &domain.ContactMessage{
		Name:      name,
		Email:     normalizeEmail(input.Email),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("message_id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.repo.List(ctx)
}
