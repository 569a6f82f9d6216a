package ports

import (
	"context"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// MessageRepository defines persistence operations for contact messages.
type MessageRepository interface {
	Insert(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

// SubmitMessageInput is the DTO for a contact form submission.
type SubmitMessageInput struct {
	Name    string
	Email   string
	Message string
}

// ContactService stores contact form submissions and exposes them to
// administrators.
type ContactService interface {
	Submit(ctx context.Context, input SubmitMessageInput) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}
