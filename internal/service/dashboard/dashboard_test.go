package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/store"
)

func newTestService(t *testing.T, now time.Time) (Service, *records.Client) {
	t.Helper()
	db := records.NewClient(store.NewMemory(), nil)
	return NewWithClock(db, func() time.Time { return now }), db
}

func TestStatsOverSeedData(t *testing.T) {
	ctx := context.Background()
	// Pinned one day before the seeded scheduled consultation.
	now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if st.TotalPatients != 2 {
		t.Errorf("TotalPatients = %d, want 2", st.TotalPatients)
	}
	if st.CompletedIncidents != 2 {
		t.Errorf("CompletedIncidents = %d, want 2", st.CompletedIncidents)
	}
	if st.PendingIncidents != 1 {
		t.Errorf("PendingIncidents = %d, want 1", st.PendingIncidents)
	}
	if st.TotalRevenue != 450 {
		t.Errorf("TotalRevenue = %d, want 450", st.TotalRevenue)
	}
	if len(st.Upcoming) != 1 || st.Upcoming[0].ID != "i3" {
		t.Errorf("Upcoming = %+v, want [i3]", st.Upcoming)
	}
	if len(st.TopPatients) != 2 {
		t.Fatalf("TopPatients len = %d, want 2", len(st.TopPatients))
	}
	// p2 spent 300, p1 spent 150.
	if st.TopPatients[0].Patient.ID != "p2" || st.TopPatients[0].TotalSpent != 300 {
		t.Errorf("TopPatients[0] = %+v, want p2 with 300", st.TopPatients[0])
	}
	if st.TopPatients[1].Patient.ID != "p1" || st.TopPatients[1].TotalSpent != 150 {
		t.Errorf("TopPatients[1] = %+v, want p1 with 150", st.TopPatients[1])
	}
	if st.TopPatients[1].VisitCount != 2 {
		t.Errorf("p1 VisitCount = %d, want 2", st.TopPatients[1].VisitCount)
	}
}

func TestStatsUpcomingWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, db := newTestService(t, now)

	add := func(at time.Time, status records.IncidentStatus) {
		t.Helper()
		_, err := db.CreateIncident(ctx, records.Incident{
			PatientID:     "p1",
			Title:         "Appt",
			AppointmentAt: at,
			Status:        status,
		})
		if err != nil {
			t.Fatalf("CreateIncident() error = %v", err)
		}
	}

	add(now.Add(-time.Hour), records.StatusScheduled)          // past: excluded
	add(now.Add(5*24*time.Hour), records.StatusScheduled)      // inside
	add(now.Add(10*24*time.Hour), records.StatusScheduled)     // boundary: included
	add(now.Add(10*24*time.Hour+1), records.StatusScheduled)   // past horizon: excluded
	add(now.Add(2*24*time.Hour), records.StatusCompleted)      // wrong status: excluded
	add(now.Add(3*24*time.Hour), records.StatusCancelled)      // wrong status: excluded

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(st.Upcoming) != 2 {
		t.Fatalf("Upcoming len = %d, want 2: %+v", len(st.Upcoming), st.Upcoming)
	}
	if !st.Upcoming[0].AppointmentAt.Before(st.Upcoming[1].AppointmentAt) {
		t.Errorf("Upcoming not ascending: %v, %v",
			st.Upcoming[0].AppointmentAt, st.Upcoming[1].AppointmentAt)
	}
}

func TestStatsUpcomingCappedAtTen(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, db := newTestService(t, now)

	for i := 0; i < 15; i++ {
		_, err := db.CreateIncident(ctx, records.Incident{
			PatientID:     "p1",
			Title:         fmt.Sprintf("Appt %d", i),
			AppointmentAt: now.Add(time.Duration(i+1) * time.Hour),
			Status:        records.StatusScheduled,
		})
		if err != nil {
			t.Fatalf("CreateIncident() error = %v", err)
		}
	}

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(st.Upcoming) != 10 {
		t.Errorf("Upcoming len = %d, want capped at 10", len(st.Upcoming))
	}
}

func TestStatsTopPatientsCappedAtFive(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, db := newTestService(t, now)

	for i := 0; i < 6; i++ {
		p, err := db.CreatePatient(ctx, records.Patient{Name: fmt.Sprintf("Patient %d", i)})
		if err != nil {
			t.Fatalf("CreatePatient() error = %v", err)
		}
		_, err = db.CreateIncident(ctx, records.Incident{
			PatientID: p.ID,
			Title:     "Visit",
			Status:    records.StatusCompleted,
			Cost:      int64(1000 + i),
		})
		if err != nil {
			t.Fatalf("CreateIncident() error = %v", err)
		}
	}

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(st.TopPatients) != 5 {
		t.Fatalf("TopPatients len = %d, want capped at 5", len(st.TopPatients))
	}
	if st.TopPatients[0].TotalSpent != 1005 {
		t.Errorf("TopPatients[0].TotalSpent = %d, want 1005", st.TopPatients[0].TotalSpent)
	}
}

func TestCalendarMatchesUTCDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	// Seeded i1 sits at 2024-01-15T10:00Z. A zoned query time on the same
	// UTC day must still find it.
	loc := time.FixedZone("UTC-5", -5*3600)
	got, err := svc.Calendar(ctx, time.Date(2024, 1, 15, 18, 30, 0, 0, loc))
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "i1" {
		t.Errorf("Calendar() = %+v, want [i1]", got)
	}

	got, err = svc.Calendar(ctx, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Calendar() on empty day = %+v, want none", got)
	}
}
