package ports

import (
	"context"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// FeedbackRepository defines persistence operations for feedback entries.
type FeedbackRepository interface {
	Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	FindByID(ctx context.Context, id string) (*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
	// SetLike adds or removes userID from the liked-by set and adjusts
	// the like counter accordingly.
	SetLike(ctx context.Context, id, userID string, liked bool) error
	SetResponse(ctx context.Context, id string, resp domain.FeedbackResponse) error
	SetStatus(ctx context.Context, id string, status domain.FeedbackStatus) error
}

// SubmitFeedbackInput is the DTO for a new feedback submission.
type SubmitFeedbackInput struct {
	Name    string
	Email   string
	Message string
	Type    domain.FeedbackType
	// UserID is set when the submitter is authenticated.
	UserID string
}

// FeedbackService covers feedback submission, browsing and moderation.
type FeedbackService interface {
	Submit(ctx context.Context, input SubmitFeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
	// ToggleLike flips the like of userID on the entry and returns the
	// updated entry.
	ToggleLike(ctx context.Context, id, userID string) (*domain.Feedback, error)
	Respond(ctx context.Context, id, adminID, text string) (*domain.Feedback, error)
	SetStatus(ctx context.Context, id string, status domain.FeedbackStatus) (*domain.Feedback, error)
}
