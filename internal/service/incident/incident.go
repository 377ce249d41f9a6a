package incident

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/dentio/dentio_backend/internal/records"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateIncidentRequest struct {
	PatientID     string
	Title         string
	Description   string
	Comments      string
	AppointmentAt time.Time
	Status        *records.IncidentStatus
	Cost          int64
	Treatment     string
	NextDate      string
}

type UpdateIncidentRequest struct {
	Title         *string
	Description   *string
	Comments      *string
	AppointmentAt *time.Time
	Status        *records.IncidentStatus
	Cost          *int64
	Treatment     *string
	NextDate      *string
}

type AddFileRequest struct {
	Name string
	Type string
	// Data is the attachment payload, base64 encoded.
	Data string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateIncidentRequest) (*records.Incident, error)
	GetByID(ctx context.Context, incidentID string) (*records.Incident, error)
	List(ctx context.Context) ([]records.Incident, error)
	ListByPatient(ctx context.Context, patientID string) ([]records.Incident, error)
	Update(ctx context.Context, incidentID string, req UpdateIncidentRequest) (*records.Incident, error)
	Delete(ctx context.Context, incidentID string) error

	// Files
	AddFile(ctx context.Context, incidentID string, req AddFileRequest) (*records.File, error)
	DeleteFile(ctx context.Context, incidentID, fileID string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type incidentService struct {
	db *records.Client
}

func New(db *records.Client) Service {
	return &incidentService{db: db}
}

func (s *incidentService) Create(ctx context.Context, req CreateIncidentRequest) (*records.Incident, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	// The patient reference must resolve; incidents never dangle.
	if _, err := s.db.PatientByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	status := records.StatusScheduled
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		status = *req.Status
	}

	in, err := s.db.CreateIncident(ctx, records.Incident{
		PatientID:     req.PatientID,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Comments:      req.Comments,
		AppointmentAt: req.AppointmentAt.UTC(),
		Status:        status,
		Cost:          req.Cost,
		Treatment:     req.Treatment,
		NextDate:      req.NextDate,
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (s *incidentService) GetByID(ctx context.Context, incidentID string) (*records.Incident, error) {
	in, err := s.db.IncidentByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}
	return in, nil
}

func (s *incidentService) List(ctx context.Context) ([]records.Incident, error) {
	return s.db.Incidents(ctx)
}

// ListByPatient returns the patient's incidents in stored order. An
// unknown patient id yields an empty list, not an error; callers that
// need existence use the patient service.
func (s *incidentService) ListByPatient(ctx context.Context, patientID string) ([]records.Incident, error) {
	return s.db.IncidentsByPatient(ctx, patientID)
}

func (s *incidentService) Update(ctx context.Context, incidentID string, req UpdateIncidentRequest) (*records.Incident, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return nil, ErrTitleRequired
		}
		req.Title = &trimmed
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	in, err := s.db.UpdateIncident(ctx, incidentID, records.IncidentUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Comments:      req.Comments,
		AppointmentAt: req.AppointmentAt,
		Status:        req.Status,
		Cost:          req.Cost,
		Treatment:     req.Treatment,
		NextDate:      req.NextDate,
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}
	return in, nil
}

func (s *incidentService) Delete(ctx context.Context, incidentID string) error {
	if err := s.db.DeleteIncident(ctx, incidentID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return ErrIncidentNotFound
		}
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Files
// ---------------------------------------------------------------------------

func (s *incidentService) AddFile(ctx context.Context, incidentID string, req AddFileRequest) (*records.File, error) {
	if _, err := base64.StdEncoding.DecodeString(req.Data); err != nil {
		return nil, ErrInvalidFileData
	}

	f, err := s.db.AddIncidentFile(ctx, incidentID, records.File{
		Name: req.Name,
		Type: req.Type,
		Data: req.Data,
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *incidentService) DeleteFile(ctx context.Context, incidentID, fileID string) error {
	if err := s.db.DeleteIncidentFile(ctx, incidentID, fileID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return ErrFileNotFound
		}
		return err
	}
	return nil
}

func validStatus(s records.IncidentStatus) bool {
	switch s {
	case records.StatusScheduled, records.StatusCompleted, records.StatusCancelled:
		return true
	}
	return false
}
