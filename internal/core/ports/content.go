package ports

import (
	"context"
	"time"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// NewsRepository defines persistence operations for news articles.
type NewsRepository interface {
	Insert(ctx context.Context, n *domain.NewsItem) (*domain.NewsItem, error)
	FindByID(ctx context.Context, id string) (*domain.NewsItem, error)
	List(ctx context.Context) ([]*domain.NewsItem, error)
	Update(ctx context.Context, n *domain.NewsItem) (*domain.NewsItem, error)
	Delete(ctx context.Context, id string) error
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Insert(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// ClubRepository defines persistence operations for clubs.
type ClubRepository interface {
	Insert(ctx context.Context, c *domain.Club) (*domain.Club, error)
	FindByID(ctx context.Context, id string) (*domain.Club, error)
	List(ctx context.Context) ([]*domain.Club, error)
	Update(ctx context.Context, c *domain.Club) (*domain.Club, error)
	Delete(ctx context.Context, id string) error
}

// NewsInput is the DTO for creating or updating a news article.
type NewsInput struct {
	Title       string
	Summary     string
	Body        string
	ImageURL    string
	PublishedAt time.Time
}

// EventInput is the DTO for creating or updating an event.
type EventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
}

// ClubInput is the DTO for creating or updating a club.
type ClubInput struct {
	Name        string
	Description string
	Category    string
	ContactMail string
	LogoURL     string
}

// ContentService covers the public catalogue (news, events, clubs) and
// its admin-side management.
type ContentService interface {
	ListNews(ctx context.Context) ([]*domain.NewsItem, error)
	GetNews(ctx context.Context, id string) (*domain.NewsItem, error)
	CreateNews(ctx context.Context, input NewsInput) (*domain.NewsItem, error)
	UpdateNews(ctx context.Context, id string, input NewsInput) (*domain.NewsItem, error)
	DeleteNews(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	CreateEvent(ctx context.Context, input EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input EventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListClubs(ctx context.Context) ([]*domain.Club, error)
	GetClub(ctx context.Context, id string) (*domain.Club, error)
	CreateClub(ctx context.Context, input ClubInput) (*domain.Club, error)
	UpdateClub(ctx context.Context, id string, input ClubInput) (*domain.Club, error)
	DeleteClub(ctx context.Context, id string) error
}
