package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/api/http/middleware"
	"github.com/dentio/dentio_backend/internal/service/incident"
	"github.com/dentio/dentio_backend/internal/service/patient"
	"github.com/dentio/dentio_backend/pkg/authorize"
)

type PatientHandler struct {
	svc         patient.Service
	incidentSvc incident.Service
}

func NewPatientHandler(svc patient.Service, incidentSvc incident.Service) *PatientHandler {
	return &PatientHandler{svc: svc, incidentSvc: incidentSvc}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// ownRecordOnly reports whether the session identity may touch the given
// patient id. Patients are confined to their linked record; every other
// role passes.
func ownRecordOnly(c fiber.Ctx, patientID string) bool {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return false
	}
	if authorize.Role(id.Role) == authorize.RolePatient {
		return id.PatientID == patientID
	}
	return true
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNameRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	patients, err := h.svc.List(c.Context())
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id := c.Params("id")
	if !ownRecordOnly(c, id) {
		return forbidden(c)
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name             string `json:"name"`
		DOB              string `json:"dob"`
		Contact          string `json:"contact"`
		Email            string `json:"email"`
		HealthInfo       string `json:"healthInfo"`
		Address          string `json:"address"`
		EmergencyContact string `json:"emergencyContact"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), patient.CreatePatientRequest{
		Name:             body.Name,
		DOB:              body.DOB,
		Contact:          body.Contact,
		Email:            body.Email,
		HealthInfo:       body.HealthInfo,
		Address:          body.Address,
		EmergencyContact: body.EmergencyContact,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// PUT /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	var body struct {
		Name             *string `json:"name"`
		DOB              *string `json:"dob"`
		Contact          *string `json:"contact"`
		Email            *string `json:"email"`
		HealthInfo       *string `json:"healthInfo"`
		Address          *string `json:"address"`
		EmergencyContact *string `json:"emergencyContact"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), c.Params("id"), patient.UpdatePatientRequest{
		Name:             body.Name,
		DOB:              body.DOB,
		Contact:          body.Contact,
		Email:            body.Email,
		HealthInfo:       body.HealthInfo,
		Address:          body.Address,
		EmergencyContact: body.EmergencyContact,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// GET /patients/:id/incidents
func (h *PatientHandler) ListIncidents(c fiber.Ctx) error {
	id := c.Params("id")
	if !ownRecordOnly(c, id) {
		return forbidden(c)
	}

	incidents, err := h.incidentSvc.ListByPatient(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	return ok(c, incidents)
}
