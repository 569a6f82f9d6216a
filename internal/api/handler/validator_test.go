package handler

import (
	"strings"
	"testing"
)

func TestValidator_Register(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     registerRequest
		wantErr string // empty means valid
	}{
		{
			name: "valid",
			req:  registerRequest{Username: "alice_01", Email: "alice@example.com", Password: "Password1"},
		},
		{
			name: "valid without email",
			req:  registerRequest{Username: "alice_01", Password: "Password1"},
		},
		{
			name:    "username too short",
			req:     registerRequest{Username: "ab", Password: "Password1"},
			wantErr: "username",
		},
		{
			name:    "username with spaces",
			req:     registerRequest{Username: "a b c d", Password: "Password1"},
			wantErr: "username",
		},
		{
			name:    "password too short",
			req:     registerRequest{Username: "alice", Password: "Pw1"},
			wantErr: "password",
		},
		{
			name:    "password without uppercase",
			req:     registerRequest{Username: "alice", Password: "password1"},
			wantErr: "password",
		},
		{
			name:    "password without digit",
			req:     registerRequest{Username: "alice", Password: "Passwords"},
			wantErr: "password",
		},
		{
			name:    "invalid email",
			req:     registerRequest{Username: "alice", Email: "not-an-email", Password: "Password1"},
			wantErr: "email",
		},
		{
			name:    "missing everything",
			req:     registerRequest{},
			wantErr: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidator_CreateUserRole(t *testing.T) {
	v := NewValidator()

	req := createUserRequest{Username: "bob", Password: "Password1", Role: "superuser"}
	if err := v.Validate(&req); err == nil {
		t.Fatalf("expected role validation error")
	}

	req.Role = "adherent"
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}
