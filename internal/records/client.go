package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dentio/dentio_backend/internal/store"
)

// ErrNotFound is returned for operations on an id that is not in its
// collection. Callers treat it as a no-op result, not a fault.
var ErrNotFound = errors.New("record not found")

// Client is the record repository over a blob store. Every read loads a
// whole collection; every mutation is read-modify-write with a wholesale
// save. The mutex serializes those cycles within this process — writers
// in other processes sharing the store are last-writer-wins.
type Client struct {
	store store.Store
	log   *slog.Logger
	mu    sync.Mutex
}

func NewClient(s store.Store, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{store: s, log: log}
}

// ---------------------------------------------------------------------------
// Collection load/save
// ---------------------------------------------------------------------------

// loadSlice reads a slot into out, seeding it first if it has never been
// written. Content that fails to parse degrades to an empty collection;
// a corrupt slot must never take the caller down.
func (c *Client) loadSlice(ctx context.Context, slot string, seed, out any) error {
	ok, err := c.store.Has(ctx, slot)
	if err != nil {
		return fmt.Errorf("check slot %q: %w", slot, err)
	}
	if !ok {
		data, err := json.Marshal(seed)
		if err != nil {
			return fmt.Errorf("marshal seed %q: %w", slot, err)
		}
		if err := c.store.Save(ctx, slot, data); err != nil {
			return fmt.Errorf("seed slot %q: %w", slot, err)
		}
		c.log.Info("seeded default records", "slot", slot)
	}

	data, err := c.store.Load(ctx, slot)
	if err != nil {
		return fmt.Errorf("load slot %q: %w", slot, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("slot content unreadable, treating as empty", "slot", slot, "error", err)
	}
	return nil
}

func (c *Client) saveSlice(ctx context.Context, slot string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal slot %q: %w", slot, err)
	}
	if err := c.store.Save(ctx, slot, data); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// Patients returns the full patient collection in stored order.
func (c *Client) Patients(ctx context.Context) ([]Patient, error) {
	var patients []Patient
	if err := c.loadSlice(ctx, SlotPatients, seedPatients(), &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// Incidents returns the full incident collection in stored order.
func (c *Client) Incidents(ctx context.Context) ([]Incident, error) {
	var incidents []Incident
	if err := c.loadSlice(ctx, SlotIncidents, seedIncidents(), &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// ---------------------------------------------------------------------------
// Patients
// ---------------------------------------------------------------------------

func (c *Client) PatientByID(ctx context.Context, id string) (*Patient, error) {
	patients, err := c.Patients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreatePatient assigns a fresh id, appends and persists. Caller-supplied
// field values pass through untouched; the repository does not validate.
func (c *Client) CreatePatient(ctx context.Context, p Patient) (*Patient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	patients, err := c.Patients(ctx)
	if err != nil {
		return nil, err
	}

	p.ID = NewID(prefixPatient)
	patients = append(patients, p)

	if err := c.saveSlice(ctx, SlotPatients, patients); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePatient shallow-merges upd over the stored record. Nil fields are
// preserved. A missing id leaves storage untouched.
func (c *Client) UpdatePatient(ctx context.Context, id string, upd PatientUpdate) (*Patient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	patients, err := c.Patients(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range patients {
		if patients[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	p := &patients[idx]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.DOB != nil {
		p.DOB = *upd.DOB
	}
	if upd.Contact != nil {
		p.Contact = *upd.Contact
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.HealthInfo != nil {
		p.HealthInfo = *upd.HealthInfo
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.EmergencyContact != nil {
		p.EmergencyContact = *upd.EmergencyContact
	}

	if err := c.saveSlice(ctx, SlotPatients, patients); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// DeletePatient removes the patient and every incident referencing it.
// The cascade is two sequential whole-collection saves: best effort, not
// atomic. A failure after the first save is surfaced so the caller can
// retry; the store offers no multi-slot transaction to do better.
func (c *Client) DeletePatient(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	patients, err := c.Patients(ctx)
	if err != nil {
		return err
	}

	kept := patients[:0]
	found := false
	for _, p := range patients {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}

	incidents, err := c.Incidents(ctx)
	if err != nil {
		return err
	}

	if err := c.saveSlice(ctx, SlotPatients, kept); err != nil {
		return err
	}

	keptIncidents := incidents[:0]
	for _, in := range incidents {
		if in.PatientID == id {
			continue
		}
		keptIncidents = append(keptIncidents, in)
	}
	if err := c.saveSlice(ctx, SlotIncidents, keptIncidents); err != nil {
		c.log.Error("cascade delete left orphaned incidents", "patient_id", id, "error", err)
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Incidents
// ---------------------------------------------------------------------------

func (c *Client) IncidentByID(ctx context.Context, id string) (*Incident, error) {
	incidents, err := c.Incidents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range incidents {
		if incidents[i].ID == id {
			return &incidents[i], nil
		}
	}
	return nil, ErrNotFound
}

// IncidentsByPatient filters by foreign key, preserving stored order.
func (c *Client) IncidentsByPatient(ctx context.Context, patientID string) ([]Incident, error) {
	incidents, err := c.Incidents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Incident, 0)
	for _, in := range incidents {
		if in.PatientID == patientID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (c *Client) CreateIncident(ctx context.Context, in Incident) (*Incident, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	incidents, err := c.Incidents(ctx)
	if err != nil {
		return nil, err
	}

	in.ID = NewID(prefixIncident)
	if in.Files == nil {
		in.Files = []File{}
	}
	incidents = append(incidents, in)

	if err := c.saveSlice(ctx, SlotIncidents, incidents); err != nil {
		return nil, err
	}
	return &in, nil
}

func (c *Client) UpdateIncident(ctx context.Context, id string, upd IncidentUpdate) (*Incident, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	incidents, err := c.Incidents(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range incidents {
		if incidents[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	in := &incidents[idx]
	if upd.Title != nil {
		in.Title = *upd.Title
	}
	if upd.Description != nil {
		in.Description = *upd.Description
	}
	if upd.Comments != nil {
		in.Comments = *upd.Comments
	}
	if upd.AppointmentAt != nil {
		in.AppointmentAt = upd.AppointmentAt.UTC()
	}
	if upd.Status != nil {
		in.Status = *upd.Status
	}
	if upd.Cost != nil {
		in.Cost = *upd.Cost
	}
	if upd.Treatment != nil {
		in.Treatment = *upd.Treatment
	}
	if upd.NextDate != nil {
		in.NextDate = *upd.NextDate
	}

	if err := c.saveSlice(ctx, SlotIncidents, incidents); err != nil {
		return nil, err
	}
	out := *in
	return &out, nil
}

// DeleteIncident removes the incident. Incidents are leaves; nothing
// cascades.
func (c *Client) DeleteIncident(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	incidents, err := c.Incidents(ctx)
	if err != nil {
		return err
	}

	kept := incidents[:0]
	found := false
	for _, in := range incidents {
		if in.ID == id {
			found = true
			continue
		}
		kept = append(kept, in)
	}
	if !found {
		return ErrNotFound
	}

	return c.saveSlice(ctx, SlotIncidents, kept)
}

// ---------------------------------------------------------------------------
// Incident files
// ---------------------------------------------------------------------------

// AddIncidentFile appends f to the incident's file list with a fresh id,
// creating the list if absent. Returns the created file.
func (c *Client) AddIncidentFile(ctx context.Context, incidentID string, f File) (*File, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	incidents, err := c.Incidents(ctx)
	if err != nil {
		return nil, err
	}

	for i := range incidents {
		if incidents[i].ID != incidentID {
			continue
		}
		f.ID = NewID(prefixFile)
		if incidents[i].Files == nil {
			incidents[i].Files = []File{}
		}
		incidents[i].Files = append(incidents[i].Files, f)

		if err := c.saveSlice(ctx, SlotIncidents, incidents); err != nil {
			return nil, err
		}
		return &f, nil
	}
	return nil, ErrNotFound
}

// DeleteIncidentFile removes the file from the incident's list. Missing
// incident or file is reported as not found; storage stays untouched.
func (c *Client) DeleteIncidentFile(ctx context.Context, incidentID, fileID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	incidents, err := c.Incidents(ctx)
	if err != nil {
		return err
	}

	for i := range incidents {
		if incidents[i].ID != incidentID {
			continue
		}
		kept := incidents[i].Files[:0]
		found := false
		for _, f := range incidents[i].Files {
			if f.ID == fileID {
				found = true
				continue
			}
			kept = append(kept, f)
		}
		if !found {
			return ErrNotFound
		}
		incidents[i].Files = kept
		return c.saveSlice(ctx, SlotIncidents, incidents)
	}
	return ErrNotFound
}

// ---------------------------------------------------------------------------
// Session identity
// ---------------------------------------------------------------------------

// Session returns the persisted identity, or nil when no session exists.
// Unreadable session content counts as no session.
func (c *Client) Session(ctx context.Context) (*Identity, error) {
	data, err := c.store.Load(ctx, SlotSession)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		c.log.Warn("session content unreadable, treating as logged out", "error", err)
		return nil, nil
	}
	return &id, nil
}

func (c *Client) SaveSession(ctx context.Context, id Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := c.store.Save(ctx, SlotSession, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (c *Client) ClearSession(ctx context.Context) error {
	if err := c.store.Delete(ctx, SlotSession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
