package handler

import (
	"time"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central error handler).
type errorResponse struct {
	Error string `json:"error"`
}

// --- News ---

type createNewsRequest struct {
	Title       string    `json:"title" validate:"required"`
	Summary     string    `json:"summary,omitempty"`
	Body        string    `json:"body" validate:"required"`
	ImageURL    string    `json:"image_url,omitempty" validate:"omitempty,url"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

type updateNewsRequest struct {
	Title       string    `json:"title,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Body        string    `json:"body,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" validate:"omitempty,url"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

type newsResponse struct {
	Success bool             `json:"success"`
	News    *domain.NewsItem `json:"news,omitempty"`
}

type newsListResponse struct {
	Success bool               `json:"success"`
	News    []*domain.NewsItem `json:"news"`
}

// --- Events ---

type createEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at,omitempty"`
}

type updateEventRequest struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at,omitempty"`
	EndsAt      time.Time `json:"ends_at,omitempty"`
}

type eventResponse struct {
	Success bool          `json:"success"`
	Event   *domain.Event `json:"event,omitempty"`
}

type eventListResponse struct {
	Success bool            `json:"success"`
	Events  []*domain.Event `json:"events"`
}

// --- Clubs ---

type createClubRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	ContactMail string `json:"contact_mail,omitempty" validate:"omitempty,email"`
	LogoURL     string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

type updateClubRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	ContactMail string `json:"contact_mail,omitempty" validate:"omitempty,email"`
	LogoURL     string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

type clubResponse struct {
	Success bool         `json:"success"`
	Club    *domain.Club `json:"club,omitempty"`
}

type clubListResponse struct {
	Success bool           `json:"success"`
	Clubs   []*domain.Club `json:"clubs"`
}
