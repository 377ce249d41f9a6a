package records

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dentio/dentio_backend/internal/store"
)

func newTestClient(t *testing.T) (*Client, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return NewClient(mem, nil), mem
}

func TestSeedingOnFirstLoad(t *testing.T) {
	ctx := context.Background()
	c, mem := newTestClient(t)

	patients, err := c.Patients(ctx)
	if err != nil {
		t.Fatalf("Patients() error = %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("Patients() len = %d, want 2", len(patients))
	}
	if patients[0].ID != "p1" || patients[1].ID != "p2" {
		t.Errorf("seed ids = %s, %s, want p1, p2", patients[0].ID, patients[1].ID)
	}

	incidents, err := c.Incidents(ctx)
	if err != nil {
		t.Fatalf("Incidents() error = %v", err)
	}
	if len(incidents) != 3 {
		t.Fatalf("Incidents() len = %d, want 3", len(incidents))
	}
	if len(incidents[0].Files) != 1 || incidents[0].Files[0].ID != "f1" {
		t.Errorf("seed incident i1 files = %+v, want one file f1", incidents[0].Files)
	}

	// Seeding must not repeat: mutate, then load again.
	if err := mem.Save(ctx, SlotPatients, []byte(`[]`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	patients, err = c.Patients(ctx)
	if err != nil {
		t.Fatalf("Patients() error = %v", err)
	}
	if len(patients) != 0 {
		t.Errorf("Patients() after emptying slot = %d records, seeding repeated", len(patients))
	}
}

func TestCorruptSlotDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	c, mem := newTestClient(t)

	if err := mem.Save(ctx, SlotPatients, []byte(`{not json`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	patients, err := c.Patients(ctx)
	if err != nil {
		t.Fatalf("Patients() error = %v, corrupt content must not raise", err)
	}
	if len(patients) != 0 {
		t.Errorf("Patients() = %d records, want 0 for corrupt slot", len(patients))
	}
}

func TestCreatePatientAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := c.CreatePatient(ctx, Patient{Name: "A"})
		if err != nil {
			t.Fatalf("CreatePatient() error = %v", err)
		}
		if p.ID == "" {
			t.Fatal("CreatePatient() assigned empty id")
		}
		if seen[p.ID] {
			t.Fatalf("CreatePatient() reused id %s", p.ID)
		}
		seen[p.ID] = true
	}

	patients, err := c.Patients(ctx)
	if err != nil {
		t.Fatalf("Patients() error = %v", err)
	}
	if len(patients) != 52 { // 2 seeds + 50 created
		t.Errorf("Patients() len = %d, want 52", len(patients))
	}
}

func TestUpdatePatientPartialMerge(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	before, err := c.PatientByID(ctx, "p1")
	if err != nil {
		t.Fatalf("PatientByID() error = %v", err)
	}

	newContact := "5550001111"
	got, err := c.UpdatePatient(ctx, "p1", PatientUpdate{Contact: &newContact})
	if err != nil {
		t.Fatalf("UpdatePatient() error = %v", err)
	}

	if got.Contact != newContact {
		t.Errorf("Contact = %s, want %s", got.Contact, newContact)
	}
	// Every other field keeps its pre-update value.
	want := *before
	want.Contact = newContact
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("UpdatePatient() = %+v, want %+v", *got, want)
	}
}

func TestUpdatePatientNotFoundLeavesStorageUntouched(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	before, _ := c.Patients(ctx)

	name := "Ghost"
	_, err := c.UpdatePatient(ctx, "p-missing", PatientUpdate{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdatePatient() error = %v, want ErrNotFound", err)
	}

	after, _ := c.Patients(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Error("UpdatePatient() on missing id changed storage")
	}
}

func TestDeletePatientCascades(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	// p1 owns i1 and i3; p2 owns i2.
	if err := c.DeletePatient(ctx, "p1"); err != nil {
		t.Fatalf("DeletePatient() error = %v", err)
	}

	if _, err := c.PatientByID(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("PatientByID(p1) error = %v, want ErrNotFound", err)
	}

	incidents, err := c.Incidents(ctx)
	if err != nil {
		t.Fatalf("Incidents() error = %v", err)
	}
	if len(incidents) != 1 || incidents[0].ID != "i2" {
		t.Errorf("Incidents() after cascade = %+v, want only i2", incidents)
	}
}

func TestDeletePatientNotFound(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	if err := c.DeletePatient(ctx, "p-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeletePatient() error = %v, want ErrNotFound", err)
	}
}

func TestIncidentsByPatientPreservesOrder(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	got, err := c.IncidentsByPatient(ctx, "p1")
	if err != nil {
		t.Fatalf("IncidentsByPatient() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "i1" || got[1].ID != "i3" {
		t.Errorf("IncidentsByPatient(p1) = %+v, want [i1 i3]", got)
	}
}

func TestCreateIncidentDefaultsFiles(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	in, err := c.CreateIncident(ctx, Incident{PatientID: "p2", Title: "Extraction", Status: StatusScheduled})
	if err != nil {
		t.Fatalf("CreateIncident() error = %v", err)
	}
	if in.Files == nil || len(in.Files) != 0 {
		t.Errorf("CreateIncident() files = %v, want empty list", in.Files)
	}
}

func TestAddIncidentFile(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	f, err := c.AddIncidentFile(ctx, "i1", File{Name: "x.pdf", Type: "application/pdf", Data: "QQ=="})
	if err != nil {
		t.Fatalf("AddIncidentFile() error = %v", err)
	}
	if f.ID == "" || f.ID == "f1" {
		t.Errorf("AddIncidentFile() id = %q, want fresh id", f.ID)
	}

	in, err := c.IncidentByID(ctx, "i1")
	if err != nil {
		t.Fatalf("IncidentByID() error = %v", err)
	}
	if len(in.Files) != 2 {
		t.Fatalf("files len = %d, want 2 (original kept)", len(in.Files))
	}
	if in.Files[0].ID != "f1" {
		t.Errorf("original file displaced: %+v", in.Files[0])
	}
	last := in.Files[1]
	if last.Name != "x.pdf" || last.Type != "application/pdf" || last.Data != "QQ==" {
		t.Errorf("appended file = %+v", last)
	}
}

func TestAddIncidentFileMissingIncident(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	_, err := c.AddIncidentFile(ctx, "i-missing", File{Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddIncidentFile() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteIncidentFile(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	if err := c.DeleteIncidentFile(ctx, "i1", "f1"); err != nil {
		t.Fatalf("DeleteIncidentFile() error = %v", err)
	}
	in, _ := c.IncidentByID(ctx, "i1")
	if len(in.Files) != 0 {
		t.Errorf("files len = %d, want 0", len(in.Files))
	}

	if err := c.DeleteIncidentFile(ctx, "i1", "f-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteIncidentFile() missing file error = %v, want ErrNotFound", err)
	}
	if err := c.DeleteIncidentFile(ctx, "i-missing", "f1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteIncidentFile() missing incident error = %v, want ErrNotFound", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	// No session yet.
	id, err := c.Session(ctx)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if id != nil {
		t.Fatalf("Session() = %+v, want nil", id)
	}

	want := Identity{ID: "1", Role: "Admin", Email: "admin@entnt.in", Name: "Dr. Admin"}
	if err := c.SaveSession(ctx, want); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	id, err = c.Session(ctx)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if id == nil || !reflect.DeepEqual(*id, want) {
		t.Errorf("Session() = %+v, want %+v", id, want)
	}

	if err := c.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession() error = %v", err)
	}
	id, _ = c.Session(ctx)
	if id != nil {
		t.Errorf("Session() after clear = %+v, want nil", id)
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	before, err := c.Incidents(ctx)
	if err != nil {
		t.Fatalf("Incidents() error = %v", err)
	}
	if err := c.saveSlice(ctx, SlotIncidents, before); err != nil {
		t.Fatalf("saveSlice() error = %v", err)
	}
	after, err := c.Incidents(ctx)
	if err != nil {
		t.Fatalf("Incidents() error = %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("round trip mismatch:\nbefore %+v\nafter  %+v", before, after)
	}
}
