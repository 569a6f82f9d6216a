package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/MehdiDinari/ADEI-Repo/internal/api/middleware"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

type stubUserService struct {
	users []*domain.User
	user  *domain.User
	err   error

	gotCreate  ports.CreateUserInput
	gotUpdate  ports.UpdateUserInput
	gotActorID string
	gotID      string
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.gotCreate = input
	return s.user, s.err
}

func (s *stubUserService) Update(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	s.gotID = id
	s.gotUpdate = input
	return s.user, s.err
}

func (s *stubUserService) Delete(_ context.Context, actorID, id string) error {
	s.gotActorID = actorID
	s.gotID = id
	return s.err
}

func (s *stubUserService) EnsureDefaultAdmin(context.Context, string, string, string) error {
	return s.err
}

func asAdmin(c echo.Context) {
	c.Set(middleware.ContextUserKey, &domain.User{ID: "admin_1", Username: "admin", Role: domain.RoleAdmin})
}

func TestUserHandler_List(t *testing.T) {
	svc := &stubUserService{users: []*domain.User{
		{ID: "user_1", Username: "alice", Role: domain.RoleAdherent},
		{ID: "user_2", Username: "bob", Role: domain.RoleGuest},
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var resp userListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Users))
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var resp struct {
		Users json.RawMessage `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp.Users) != "[]" {
		t.Fatalf("expected empty array, got %s", resp.Users)
	}
}

func TestUserHandler_Create(t *testing.T) {
	svc := &stubUserService{user: &domain.User{ID: "user_9", Username: "carol", Role: domain.RoleAdherent}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"username":"carol","password":"Password1","role":"adherent"}`)
	asAdmin(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotCreate.Role != domain.RoleAdherent {
		t.Fatalf("role not forwarded: %s", svc.gotCreate.Role)
	}
	if svc.gotCreate.ActorID != "admin_1" {
		t.Fatalf("actor not forwarded: %s", svc.gotCreate.ActorID)
	}
}

func TestUserHandler_Create_BadRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/users",
		`{"username":"carol","password":"Password1","role":"root"}`)
	asAdmin(c)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	svc := &stubUserService{user: &domain.User{ID: "user_1", Username: "alice", Role: domain.RoleAdmin}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/users/user_1", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("user_1")
	asAdmin(c)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotID != "user_1" {
		t.Fatalf("id not forwarded: %s", svc.gotID)
	}
	if svc.gotUpdate.Role != domain.RoleAdmin {
		t.Fatalf("role not forwarded: %s", svc.gotUpdate.Role)
	}
	if svc.gotUpdate.Username != "" || svc.gotUpdate.Password != "" {
		t.Fatalf("omitted fields should stay empty: %+v", svc.gotUpdate)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/users/user_2", "")
	c.SetParamNames("id")
	c.SetParamValues("user_2")
	asAdmin(c)

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotActorID != "admin_1" || svc.gotID != "user_2" {
		t.Fatalf("actor/id not forwarded: %s %s", svc.gotActorID, svc.gotID)
	}
}

func TestUserHandler_Delete_Self(t *testing.T) {
	svc := &stubUserService{err: domain.ErrSelfDeletion}
	h := NewUserHandler(svc)

	c, _ := newTestContext(t, http.MethodDelete, "/api/users/admin_1", "")
	c.SetParamNames("id")
	c.SetParamValues("admin_1")
	asAdmin(c)

	if err := h.Delete(c); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion passthrough, got %v", err)
	}
}
