package records

import "time"

// Slot names inside the store. File records are embedded in incidents,
// not a slot of their own.
const (
	SlotPatients  = "patients"
	SlotIncidents = "incidents"
	SlotSession   = "session"
)

type IncidentStatus string

const (
	StatusScheduled IncidentStatus = "scheduled"
	StatusCompleted IncidentStatus = "completed"
	StatusCancelled IncidentStatus = "cancelled"
)

// Patient is a clinic patient record. Email and contact are plain fields
// with no uniqueness constraint.
type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DOB              string `json:"dob"`
	Contact          string `json:"contact"`
	Email            string `json:"email"`
	HealthInfo       string `json:"healthInfo"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
}

// Incident is an appointment/treatment record belonging to one patient.
// Cost is meaningful only when Status is completed.
type Incident struct {
	ID            string         `json:"id"`
	PatientID     string         `json:"patientId"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Comments      string         `json:"comments"`
	AppointmentAt time.Time      `json:"appointmentDateTime"`
	Status        IncidentStatus `json:"status"`
	Cost          int64          `json:"cost"`
	Treatment     string         `json:"treatment"`
	NextDate      string         `json:"nextDate,omitempty"`
	Files         []File         `json:"files"`
}

// File is an attachment embedded in its incident, payload carried inline
// as base64. Owned by exactly one incident.
type File struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// Identity is the persisted session identity. The password never appears
// here; it is stripped before persistence.
type Identity struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	PatientID string `json:"patientId,omitempty"`
}

// PatientUpdate is a partial update: nil fields keep their current value.
type PatientUpdate struct {
	Name             *string
	DOB              *string
	Contact          *string
	Email            *string
	HealthInfo       *string
	Address          *string
	EmergencyContact *string
}

// IncidentUpdate is a partial update: nil fields keep their current value.
// Files are managed through the file sub-collection, not through updates.
type IncidentUpdate struct {
	Title         *string
	Description   *string
	Comments      *string
	AppointmentAt *time.Time
	Status        *IncidentStatus
	Cost          *int64
	Treatment     *string
	NextDate      *string
}
