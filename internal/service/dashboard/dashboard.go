package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/dentio/dentio_backend/internal/records"
)

// upcomingWindow bounds how far ahead the stats look for scheduled
// appointments.
const (
	upcomingWindow = 10 * 24 * time.Hour
	upcomingCap    = 10
	topPatientsCap = 5
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PatientSpend struct {
	Patient    records.Patient `json:"patient"`
	TotalSpent int64           `json:"totalSpent"`
	VisitCount int             `json:"visitCount"`
}

type Stats struct {
	TotalPatients      int                `json:"totalPatients"`
	CompletedIncidents int                `json:"completedIncidents"`
	PendingIncidents   int                `json:"pendingIncidents"`
	TotalRevenue       int64              `json:"totalRevenue"`
	Upcoming           []records.Incident `json:"upcomingAppointments"`
	TopPatients        []PatientSpend     `json:"topPatients"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Stats derives the dashboard aggregate from the live collections.
	// Pure read; nothing is cached or persisted.
	Stats(ctx context.Context) (*Stats, error)
	// Calendar returns the incidents whose appointment falls on the same
	// UTC calendar day as date, in stored order.
	Calendar(ctx context.Context, date time.Time) ([]records.Incident, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type dashboardService struct {
	db  *records.Client
	now func() time.Time
}

func New(db *records.Client) Service {
	return &dashboardService{db: db, now: time.Now}
}

// NewWithClock pins the clock, for callers that need deterministic
// window boundaries.
func NewWithClock(db *records.Client, now func() time.Time) Service {
	return &dashboardService{db: db, now: now}
}

func (s *dashboardService) Stats(ctx context.Context) (*Stats, error) {
	patients, err := s.db.Patients(ctx)
	if err != nil {
		return nil, err
	}
	incidents, err := s.db.Incidents(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		TotalPatients: len(patients),
		Upcoming:      []records.Incident{},
		TopPatients:   []PatientSpend{},
	}

	spentByPatient := make(map[string]int64, len(patients))
	visitsByPatient := make(map[string]int, len(patients))

	now := s.now().UTC()
	horizon := now.Add(upcomingWindow)

	for _, in := range incidents {
		visitsByPatient[in.PatientID]++

		switch in.Status {
		case records.StatusCompleted:
			st.CompletedIncidents++
			st.TotalRevenue += in.Cost
			spentByPatient[in.PatientID] += in.Cost
		case records.StatusScheduled:
			st.PendingIncidents++
			at := in.AppointmentAt.UTC()
			if !at.Before(now) && !at.After(horizon) {
				st.Upcoming = append(st.Upcoming, in)
			}
		}
	}

	sort.SliceStable(st.Upcoming, func(i, j int) bool {
		return st.Upcoming[i].AppointmentAt.Before(st.Upcoming[j].AppointmentAt)
	})
	if len(st.Upcoming) > upcomingCap {
		st.Upcoming = st.Upcoming[:upcomingCap]
	}

	for _, p := range patients {
		st.TopPatients = append(st.TopPatients, PatientSpend{
			Patient:    p,
			TotalSpent: spentByPatient[p.ID],
			VisitCount: visitsByPatient[p.ID],
		})
	}
	sort.SliceStable(st.TopPatients, func(i, j int) bool {
		return st.TopPatients[i].TotalSpent > st.TopPatients[j].TotalSpent
	})
	if len(st.TopPatients) > topPatientsCap {
		st.TopPatients = st.TopPatients[:topPatientsCap]
	}

	return st, nil
}

func (s *dashboardService) Calendar(ctx context.Context, date time.Time) ([]records.Incident, error) {
	incidents, err := s.db.Incidents(ctx)
	if err != nil {
		return nil, err
	}

	day := date.UTC()
	out := []records.Incident{}
	for _, in := range incidents {
		at := in.AppointmentAt.UTC()
		if at.Year() == day.Year() && at.Month() == day.Month() && at.Day() == day.Day() {
			out = append(out, in)
		}
	}
	return out, nil
}
