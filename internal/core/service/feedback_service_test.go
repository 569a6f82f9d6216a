package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

type stubFeedbackRepo struct {
	entries map[string]*domain.Feedback
	nextID  int
}

func newStubFeedbackRepo() *stubFeedbackRepo {
	return &stubFeedbackRepo{entries: make(map[string]*domain.Feedback)}
}

func cloneFeedback(f *domain.Feedback) *domain.Feedback {
	if f == nil {
		return nil
	}
	clone := *f
	clone.LikedBy = append([]string(nil), f.LikedBy...)
	if f.Response != nil {
		resp := *f.Response
		clone.Response = &resp
	}
	return &clone
}

func (r *stubFeedbackRepo) Insert(_ context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	r.nextID++
	copy := cloneFeedback(f)
	copy.ID = fmt.Sprintf("fb_%d", r.nextID)
	r.entries[copy.ID] = cloneFeedback(copy)
	return copy, nil
}

func (r *stubFeedbackRepo) FindByID(_ context.Context, id string) (*domain.Feedback, error) {
	f, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}
	return cloneFeedback(f), nil
}

func (r *stubFeedbackRepo) List(_ context.Context) ([]*domain.Feedback, error) {
	out := make([]*domain.Feedback, 0, len(r.entries))
	for _, f := range r.entries {
		out = append(out, cloneFeedback(f))
	}
	return out, nil
}

func (r *stubFeedbackRepo) SetLike(_ context.Context, id, userID string, liked bool) error {
	f, ok := r.entries[id]
	if !ok {
		return domain.ErrFeedbackNotFound
	}
	has := f.HasLike(userID)
	switch {
	case liked && !has:
		f.LikedBy = append(f.LikedBy, userID)
		f.Likes++
	case !liked && has:
		kept := f.LikedBy[:0]
		for _, uid := range f.LikedBy {
			if uid != userID {
				kept = append(kept, uid)
			}
		}
		f.LikedBy = kept
		f.Likes--
	}
	return nil
}

func (r *stubFeedbackRepo) SetResponse(_ context.Context, id string, resp domain.FeedbackResponse) error {
	f, ok := r.entries[id]
	if !ok {
		return domain.ErrFeedbackNotFound
	}
	f.Response = &resp
	return nil
}

func (r *stubFeedbackRepo) SetStatus(_ context.Context, id string, status domain.FeedbackStatus) error {
	f, ok := r.entries[id]
	if !ok {
		return domain.ErrFeedbackNotFound
	}
	f.Status = status
	return nil
}

func TestFeedbackService_Submit_Defaults(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitFeedbackInput{
		Name:    "Yassine",
		Message: "La salle de sport devrait ouvrir plus tot.",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if created.Type != domain.FeedbackAutre {
		t.Fatalf("expected default type autre, got %s", created.Type)
	}
	if created.Status != domain.FeedbackNouveau {
		t.Fatalf("expected status nouveau, got %s", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("id not assigned")
	}
}

func TestFeedbackService_Submit_InvalidType(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), ports.SubmitFeedbackInput{
		Name:    "Yassine",
		Message: "bonjour",
		Type:    "spam",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestFeedbackService_ToggleLike(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitFeedbackInput{
		Name:    "Yassine",
		Message: "bonjour",
		Type:    domain.FeedbackAvis,
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	liked, err := svc.ToggleLike(context.Background(), created.ID, "user_1")
	if err != nil {
		t.Fatalf("first ToggleLike returned error: %v", err)
	}
	if liked.Likes != 1 || !liked.HasLike("user_1") {
		t.Fatalf("like not recorded: likes=%d liked_by=%v", liked.Likes, liked.LikedBy)
	}

	// Toggling again removes the like.
	unliked, err := svc.ToggleLike(context.Background(), created.ID, "user_1")
	if err != nil {
		t.Fatalf("second ToggleLike returned error: %v", err)
	}
	if unliked.Likes != 0 || unliked.HasLike("user_1") {
		t.Fatalf("like not removed: likes=%d liked_by=%v", unliked.Likes, unliked.LikedBy)
	}
}

func TestFeedbackService_ToggleLike_NotFound(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	if _, err := svc.ToggleLike(context.Background(), "missing", "user_1"); !errors.Is(err, domain.ErrFeedbackNotFound) {
		t.Fatalf("expected ErrFeedbackNotFound, got %v", err)
	}
}

func TestFeedbackService_Respond(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitFeedbackInput{
		Name:    "Yassine",
		Message: "bonjour",
		Type:    domain.FeedbackReclamation,
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	answered, err := svc.Respond(context.Background(), created.ID, "admin_1", "Merci, nous allons regarder.")
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if answered.Response == nil || answered.Response.Text != "Merci, nous allons regarder." {
		t.Fatalf("response not attached: %+v", answered.Response)
	}
	if answered.Response.AdminID != "admin_1" {
		t.Fatalf("admin not recorded: %s", answered.Response.AdminID)
	}
	if answered.Status != domain.FeedbackTraite {
		t.Fatalf("expected status traite after response, got %s", answered.Status)
	}
	if answered.Response.CreatedAt.After(time.Now().UTC()) {
		t.Fatalf("response timestamp in the future")
	}
}

func TestFeedbackService_SetStatus_Invalid(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	if _, err := svc.SetStatus(context.Background(), "fb_1", "archived"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
