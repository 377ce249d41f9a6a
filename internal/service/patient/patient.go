package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dentio/dentio_backend/internal/records"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePatientRequest struct {
	Name             string
	DOB              string
	Contact          string
	Email            string
	HealthInfo       string
	Address          string
	EmergencyContact string
}

type UpdatePatientRequest struct {
	Name             *string
	DOB              *string
	Contact          *string
	Email            *string
	HealthInfo       *string
	Address          *string
	EmergencyContact *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePatientRequest) (*records.Patient, error)
	GetByID(ctx context.Context, patientID string) (*records.Patient, error)
	List(ctx context.Context) ([]records.Patient, error)
	Update(ctx context.Context, patientID string, req UpdatePatientRequest) (*records.Patient, error)
	// Delete removes the patient together with every incident that
	// references it.
	Delete(ctx context.Context, patientID string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *records.Client

	// Region used to interpret contact numbers written without a
	// country prefix.
	defaultRegion string
}

func New(db *records.Client) Service {
	return &patientService{db: db, defaultRegion: "US"}
}

func (s *patientService) Create(ctx context.Context, req CreatePatientRequest) (*records.Patient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	p, err := s.db.CreatePatient(ctx, records.Patient{
		Name:             strings.TrimSpace(req.Name),
		DOB:              req.DOB,
		Contact:          s.normalizeContact(req.Contact),
		Email:            req.Email,
		HealthInfo:       req.HealthInfo,
		Address:          req.Address,
		EmergencyContact: s.normalizeContact(req.EmergencyContact),
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, patientID string) (*records.Patient, error) {
	p, err := s.db.PatientByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context) ([]records.Patient, error) {
	return s.db.Patients(ctx)
}

func (s *patientService) Update(ctx context.Context, patientID string, req UpdatePatientRequest) (*records.Patient, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		req.Name = &trimmed
	}
	if req.Contact != nil {
		normalized := s.normalizeContact(*req.Contact)
		req.Contact = &normalized
	}
	if req.EmergencyContact != nil {
		normalized := s.normalizeContact(*req.EmergencyContact)
		req.EmergencyContact = &normalized
	}

	p, err := s.db.UpdatePatient(ctx, patientID, records.PatientUpdate{
		Name:             req.Name,
		DOB:              req.DOB,
		Contact:          req.Contact,
		Email:            req.Email,
		HealthInfo:       req.HealthInfo,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, patientID string) error {
	if err := s.db.DeletePatient(ctx, patientID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return ErrPatientNotFound
		}
		return err
	}
	return nil
}

// normalizeContact rewrites a contact number to E.164 when it parses as
// a valid phone number. Anything else passes through untouched; contacts
// are free text, not a validated field.
func (s *patientService) normalizeContact(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	num, err := phonenumbers.Parse(trimmed, s.defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return trimmed
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
