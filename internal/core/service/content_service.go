package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

// ContentService implements the public catalogue (news, events, clubs)
// and its admin-side CRUD.
type ContentService struct {
	news   ports.NewsRepository
	events ports.EventRepository
	clubs  ports.ClubRepository
	log    zerolog.Logger
}

func NewContentService(news ports.NewsRepository, events ports.EventRepository, clubs ports.ClubRepository, log zerolog.Logger) *ContentService {
	return &ContentService{news: news, events: events, clubs: clubs, log: log}
}

// --- News ---

func (s *ContentService) ListNews(ctx context.Context) ([]*domain.NewsItem, error) {
	return s.news.List(ctx)
}

func (s *ContentService) GetNews(ctx context.Context, id string) (*domain.NewsItem, error) {
	return s.news.FindByID(ctx, id)
}

func (s *ContentService) CreateNews(ctx context.Context, input ports.NewsInput) (*domain.NewsItem, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	publishedAt := input.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}

	created, err := s.news.Insert(ctx, &domain.NewsItem{
		Title:       input.Title,
		Summary:     input.Summary,
		Body:        input.Body,
		ImageURL:    input.ImageURL,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("news_id", created.ID).Str("title", created.Title).Msg("news created")
	return created, nil
}

func (s *ContentService) UpdateNews(ctx context.Context, id string, input ports.NewsInput) (*domain.NewsItem, error) {
	current, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		current.Title = input.Title
	}
	if input.Summary != "" {
		current.Summary = input.Summary
	}
	if input.Body != "" {
		current.Body = input.Body
	}
	if input.ImageURL != "" {
		current.ImageURL = input.ImageURL
	}
	if !input.PublishedAt.IsZero() {
		current.PublishedAt = input.PublishedAt
	}
	current.UpdatedAt = time.Now().UTC()

	return s.news.Update(ctx, current)
}

func (s *ContentService) DeleteNews(ctx context.Context, id string) error {
	return s.news.Delete(ctx, id)
}

// --- Events ---

func (s *ContentService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.events.List(ctx)
}

func (s *ContentService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *ContentService) CreateEvent(ctx context.Context, input ports.EventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" || input.StartsAt.IsZero() {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	created, err := s.events.Insert(ctx, &domain.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", created.ID).Str("title", created.Title).Msg("event created")
	return created, nil
}

func (s *ContentService) UpdateEvent(ctx context.Context, id string, input ports.EventInput) (*domain.Event, error) {
	current, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		current.Title = input.Title
	}
	if input.Description != "" {
		current.Description = input.Description
	}
	if input.Location != "" {
		current.Location = input.Location
	}
	if !input.StartsAt.IsZero() {
		current.StartsAt = input.StartsAt
	}
	if !input.EndsAt.IsZero() {
		current.EndsAt = input.EndsAt
	}
	current.UpdatedAt = time.Now().UTC()

	return s.events.Update(ctx, current)
}

func (s *ContentService) DeleteEvent(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

// --- Clubs ---

func (s *ContentService) ListClubs(ctx context.Context) ([]*domain.Club, error) {
	return s.clubs.List(ctx)
}

func (s *ContentService) GetClub(ctx context.Context, id string) (*domain.Club, error) {
	return s.clubs.FindByID(ctx, id)
}

func (s *ContentService) CreateClub(ctx context.Context, input ports.ClubInput) (*domain.Club, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	created, err := s.clubs.Insert(ctx, &domain.Club{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		ContactMail: normalizeEmail(input.ContactMail),
		LogoURL:     input.LogoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("club_id", created.ID).Str("name", created.Name).Msg("club created")
	return created, nil
}

func (s *ContentService) UpdateClub(ctx context.Context, id string, input ports.ClubInput) (*domain.Club, error) {
	current, err := s.clubs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		current.Name = input.Name
	}
	if input.Description != "" {
		current.Description = input.Description
	}
	if input.Category != "" {
		current.Category = input.Category
	}
	if input.ContactMail != "" {
		current.ContactMail = normalizeEmail(input.ContactMail)
	}
	if input.LogoURL != "" {
		current.LogoURL = input.LogoURL
	}
	current.UpdatedAt = time.Now().UTC()

	return s.clubs.Update(ctx, current)
}

func (s *ContentService) DeleteClub(ctx context.Context, id string) error {
	return s.clubs.Delete(ctx, id)
}
