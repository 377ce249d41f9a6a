package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/api/http/middleware"
	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/service/incident"
	"github.com/dentio/dentio_backend/pkg/authorize"
)

type IncidentHandler struct {
	svc incident.Service
}

func NewIncidentHandler(svc incident.Service) *IncidentHandler {
	return &IncidentHandler{svc: svc}
}

func mapIncidentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, incident.ErrIncidentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, incident.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, incident.ErrFileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, incident.ErrTitleRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, incident.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, incident.ErrInvalidFileData):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ownIncidentOnly loads the incident and confines Patient sessions to
// incidents on their own record. Admin passes without the load result
// being discarded; the handler reuses it.
func (h *IncidentHandler) ownIncidentOnly(c fiber.Ctx, incidentID string) (*records.Incident, error) {
	in, err := h.svc.GetByID(c.Context(), incidentID)
	if err != nil {
		return nil, err
	}
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return nil, fiber.ErrUnauthorized
	}
	if authorize.Role(id.Role) == authorize.RolePatient && id.PatientID != in.PatientID {
		return nil, fiber.ErrForbidden
	}
	return in, nil
}

// ---------------------------------------------------------------------------
// Incident CRUD
// ---------------------------------------------------------------------------

// GET /incidents
func (h *IncidentHandler) List(c fiber.Ctx) error {
	// Patients see only their own incidents even on the collection route.
	if id, valid := middleware.IdentityFromFiber(c); valid && authorize.Role(id.Role) == authorize.RolePatient {
		incidents, err := h.svc.ListByPatient(c.Context(), id.PatientID)
		if err != nil {
			return internalError(c)
		}
		return ok(c, incidents)
	}

	incidents, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, incidents)
}

// GET /incidents/:id
func (h *IncidentHandler) Get(c fiber.Ctx) error {
	in, err := h.ownIncidentOnly(c, c.Params("id"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return mapIncidentError(c, err)
	}
	return ok(c, in)
}

// POST /incidents
func (h *IncidentHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID     string                  `json:"patientId"`
		Title         string                  `json:"title"`
		Description   string                  `json:"description"`
		Comments      string                  `json:"comments"`
		AppointmentAt time.Time               `json:"appointmentDateTime"`
		Status        *records.IncidentStatus `json:"status"`
		Cost          int64                   `json:"cost"`
		Treatment     string                  `json:"treatment"`
		NextDate      string                  `json:"nextDate"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	in, err := h.svc.Create(c.Context(), incident.CreateIncidentRequest{
		PatientID:     body.PatientID,
		Title:         body.Title,
		Description:   body.Description,
		Comments:      body.Comments,
		AppointmentAt: body.AppointmentAt,
		Status:        body.Status,
		Cost:          body.Cost,
		Treatment:     body.Treatment,
		NextDate:      body.NextDate,
	})
	if err != nil {
		return mapIncidentError(c, err)
	}
	return created(c, in)
}

// PUT /incidents/:id
func (h *IncidentHandler) Update(c fiber.Ctx) error {
	var body struct {
		Title         *string                 `json:"title"`
		Description   *string                 `json:"description"`
		Comments      *string                 `json:"comments"`
		AppointmentAt *time.Time              `json:"appointmentDateTime"`
		Status        *records.IncidentStatus `json:"status"`
		Cost          *int64                  `json:"cost"`
		Treatment     *string                 `json:"treatment"`
		NextDate      *string                 `json:"nextDate"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	in, err := h.svc.Update(c.Context(), c.Params("id"), incident.UpdateIncidentRequest{
		Title:         body.Title,
		Description:   body.Description,
		Comments:      body.Comments,
		AppointmentAt: body.AppointmentAt,
		Status:        body.Status,
		Cost:          body.Cost,
		Treatment:     body.Treatment,
		NextDate:      body.NextDate,
	})
	if err != nil {
		return mapIncidentError(c, err)
	}
	return ok(c, in)
}

// DELETE /incidents/:id
func (h *IncidentHandler) Delete(c fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapIncidentError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Files
// ---------------------------------------------------------------------------

// GET /incidents/:id/files
func (h *IncidentHandler) ListFiles(c fiber.Ctx) error {
	in, err := h.ownIncidentOnly(c, c.Params("id"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return mapIncidentError(c, err)
	}
	return ok(c, in.Files)
}

// POST /incidents/:id/files
func (h *IncidentHandler) AddFile(c fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
		Type string `json:"type"`
		Data string `json:"data"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	f, err := h.svc.AddFile(c.Context(), c.Params("id"), incident.AddFileRequest{
		Name: body.Name,
		Type: body.Type,
		Data: body.Data,
	})
	if err != nil {
		return mapIncidentError(c, err)
	}
	return created(c, f)
}

// DELETE /incidents/:id/files/:fileId
func (h *IncidentHandler) DeleteFile(c fiber.Ctx) error {
	if err := h.svc.DeleteFile(c.Context(), c.Params("id"), c.Params("fileId")); err != nil {
		return mapIncidentError(c, err)
	}
	return noContent(c)
}
