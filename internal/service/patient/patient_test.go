package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/store"
)

func newTestService(t *testing.T) (Service, *records.Client) {
	t.Helper()
	db := records.NewClient(store.NewMemory(), nil)
	return New(db), db
}

func TestCreateRequiresName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, CreatePatientRequest{Name: "   "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("Create() error = %v, want ErrNameRequired", err)
	}
}

func TestCreateNormalizesContact(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name    string
		contact string
		want    string
	}{
		{"valid us number", "(212) 555-3456", "+12125553456"},
		{"already e164", "+12125553456", "+12125553456"},
		{"free text passes through", "ask reception", "ask reception"},
		{"invalid digits pass through", "1234567890", "1234567890"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.Create(ctx, CreatePatientRequest{Name: "Test", Contact: tt.contact})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if p.Contact != tt.want {
				t.Errorf("Contact = %q, want %q", p.Contact, tt.want)
			}
		})
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.GetByID(ctx, "p-missing")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrPatientNotFound", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	email := "john.new@entnt.in"
	p, err := svc.Update(ctx, "p1", UpdatePatientRequest{Email: &email})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if p.Email != email {
		t.Errorf("Email = %q, want %q", p.Email, email)
	}
	if p.Name != "John Doe" {
		t.Errorf("Name = %q, updated fields leaked into others", p.Name)
	}
}

func TestUpdateRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	blank := "  "
	_, err := svc.Update(ctx, "p1", UpdatePatientRequest{Name: &blank})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("Update() error = %v, want ErrNameRequired", err)
	}
}

func TestDeleteCascadesToIncidents(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	if err := svc.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.GetByID(ctx, "p1"); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("GetByID(p1) error = %v, want ErrPatientNotFound", err)
	}
	incidents, err := db.IncidentsByPatient(ctx, "p1")
	if err != nil {
		t.Fatalf("IncidentsByPatient() error = %v", err)
	}
	if len(incidents) != 0 {
		t.Errorf("incidents after delete = %d, want 0", len(incidents))
	}
}

func TestDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if err := svc.Delete(ctx, "p-missing"); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("Delete() error = %v, want ErrPatientNotFound", err)
	}
}
