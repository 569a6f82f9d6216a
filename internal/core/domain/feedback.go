package domain

import "time"

// FeedbackType categorises a feedback entry.
type FeedbackType string

const (
	FeedbackAvis        FeedbackType = "avis"
	FeedbackReclamation FeedbackType = "reclamation"
	FeedbackSuggestion  FeedbackType = "suggestion"
	FeedbackAutre       FeedbackType = "autre"
)

// Valid reports whether the type is one of the enumerated categories.
func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackAvis, FeedbackReclamation, FeedbackSuggestion, FeedbackAutre:
		return true
	}
	return false
}

// FeedbackStatus is the moderation state of a feedback entry.
type FeedbackStatus string

const (
	FeedbackNouveau      FeedbackStatus = "nouveau"
	FeedbackEnTraitement FeedbackStatus = "en_traitement"
	FeedbackTraite       FeedbackStatus = "traite"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackNouveau, FeedbackEnTraitement, FeedbackTraite:
		return true
	}
	return false
}

// FeedbackResponse is an admin reply attached to a feedback entry.
type FeedbackResponse struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	AdminID   string    `json:"admin_id"`
}

// Feedback is a member-submitted opinion, complaint or suggestion.
type Feedback struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Message   string            `json:"message"`
	Type      FeedbackType      `json:"type"`
	Status    FeedbackStatus    `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UserID    string            `json:"user_id,omitempty"`
	Likes     int               `json:"likes"`
	LikedBy   []string          `json:"liked_by,omitempty"`
	Response  *FeedbackResponse `json:"response,omitempty"`
}

// HasLike reports whether the given user already liked this entry.
func (f *Feedback) HasLike(userID string) bool {
	for _, id := range f.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
