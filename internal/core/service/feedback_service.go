package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

// FeedbackService implements submission, browsing and moderation of
// member feedback.
type FeedbackService struct {
	repo ports.FeedbackRepository
	log  zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, log: log}
}

func (s *FeedbackService) Submit(ctx context.Context, input ports.SubmitFeedbackInput) (*domain.Feedback, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" {
		return nil, domain.ErrValidation
	}

	fbType := input.Type
	if fbType == "" {
		fbType = domain.FeedbackAutre
	}
	if !fbType.Valid() {
		return nil, domain.ErrValidation
	}

	feedback := &domain.Feedback{
		Name:      name,
		Email:     normalizeEmail(input.Email),
		Message:   message,
		Type:      fbType,
		Status:    domain.FeedbackNouveau,
		CreatedAt: time.Now().UTC(),
		UserID:    input.UserID,
	}

	created, err := s.repo.Insert(ctx, feedback)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("type", string(created.Type)).Str("feedback_id", created.ID).Msg("feedback submitted")
	return created, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]*domain.Feedback, error) {
	return s.repo.List(ctx)
}

// ToggleLike flips userID's like on the entry and returns the fresh state.
func (s *FeedbackService) ToggleLike(ctx context.Context, id, userID string) (*domain.Feedback, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked := !feedback.HasLike(userID)
	if err := s.repo.SetLike(ctx, id, userID, liked); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Respond attaches an admin reply to the entry and marks it handled.
func (s *FeedbackService) Respond(ctx context.Context, id, adminID, text string) (*domain.Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrValidation
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	resp := domain.FeedbackResponse{
		Text:      text,
		CreatedAt: time.Now().UTC(),
		AdminID:   adminID,
	}
	if err := s.repo.SetResponse(ctx, id, resp); err != nil {
		return nil, err
	}
	if err := s.repo.SetStatus(ctx, id, domain.FeedbackTraite); err != nil {
		return nil, err
	}

	s.log.Info().Str("feedback_id", id).Str("admin_id", adminID).Msg("feedback answered")
	return s.repo.FindByID(ctx, id)
}

func (s *FeedbackService) SetStatus(ctx context.Context, id string, status domain.FeedbackStatus) (*domain.Feedback, error) {
	if !status.Valid() {
		return nil, domain.ErrValidation
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
