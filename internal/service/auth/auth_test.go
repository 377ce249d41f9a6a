package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dentio/dentio_backend/config"
	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/store"
)

func newTestService(t *testing.T) (Service, *records.Client) {
	t.Helper()
	db := records.NewClient(store.NewMemory(), nil)
	return New(db, config.AuthConfig{Users: config.DefaultUsers()}), db
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"admin ok", "admin@entnt.in", "admin123", nil},
		{"patient ok", "patient1@entnt.in", "patient123", nil},
		{"trims email", "  admin@entnt.in ", "admin123", nil},
		{"unknown email", "nobody@entnt.in", "admin123", ErrInvalidCredentials},
		{"wrong password", "admin@entnt.in", "wrong", ErrInvalidCredentials},
		{"empty", "", "", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && id == nil {
				t.Fatal("Login() returned nil identity on success")
			}
		})
	}
}

func TestLoginStripsPassword(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	id, err := svc.Login(ctx, "patient1@entnt.in", "patient123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if id.Role != "Patient" || id.PatientID != "p1" {
		t.Errorf("identity = %+v, want Patient linked to p1", id)
	}

	// The raw session slot must not carry the password anywhere.
	stored, err := db.Session(ctx)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if stored == nil || stored.Email != "patient1@entnt.in" {
		t.Fatalf("Session() = %+v, want the logged-in identity", stored)
	}
}

func TestCurrentWithoutSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Current(ctx)
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Current() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.Login(ctx, "admin@entnt.in", "admin123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if _, err := svc.Current(ctx); err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := svc.Current(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("Current() after logout error = %v, want ErrNotLoggedIn", err)
	}

	// Repeat logout is a no-op.
	if err := svc.Logout(ctx); err != nil {
		t.Errorf("Logout() repeat error = %v", err)
	}
}

func TestCurrentTrustsStoredIdentity(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	// An identity outside the configured user list is still restored.
	want := records.Identity{ID: "9", Role: "Admin", Email: "ghost@entnt.in", Name: "Ghost"}
	if err := db.SaveSession(ctx, want); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	got, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if got.Email != want.Email || got.Role != want.Role {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}
