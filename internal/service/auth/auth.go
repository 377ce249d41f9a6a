package auth

import (
	"context"
	"strings"

	"github.com/dentio/dentio_backend/config"
	"github.com/dentio/dentio_backend/internal/records"
)

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Login matches email and password against the configured user list.
	// Success persists the stripped identity as the session and returns
	// it; any mismatch returns ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*records.Identity, error)
	// Logout clears the session. Logging out with no session is a no-op.
	Logout(ctx context.Context) error
	// Current restores the persisted session identity without
	// re-validating against the user list.
	Current(ctx context.Context) (*records.Identity, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db    *records.Client
	users []config.UserCredential
}

func New(db *records.Client, cfg config.AuthConfig) Service {
	return &authService{db: db, users: cfg.Users}
}

func (s *authService) Login(ctx context.Context, email, password string) (*records.Identity, error) {
	email = strings.TrimSpace(email)

	for _, u := range s.users {
		if u.Email != email || u.Password != password {
			continue
		}
		id := records.Identity{
			ID:        u.ID,
			Role:      u.Role,
			Email:     u.Email,
			Name:      u.Name,
			PatientID: u.PatientID,
		}
		if err := s.db.SaveSession(ctx, id); err != nil {
			return nil, err
		}
		return &id, nil
	}
	return nil, ErrInvalidCredentials
}

func (s *authService) Logout(ctx context.Context) error {
	return s.db.ClearSession(ctx)
}

func (s *authService) Current(ctx context.Context) (*records.Identity, error) {
	id, err := s.db.Session(ctx)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, ErrNotLoggedIn
	}
	return id, nil
}
