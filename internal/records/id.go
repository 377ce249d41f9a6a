package records

import "github.com/google/uuid"

// Id prefixes keep the record kind readable in logs and URLs.
const (
	prefixPatient  = "p"
	prefixIncident = "i"
	prefixFile     = "f"
)

// NewID returns a fresh record id: kind prefix plus a random UUID. The
// source system derived ids from wall-clock milliseconds, which collides
// under rapid creation; random ids close that hole. Seed records keep
// their short fixed ids (p1, i1, ...).
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}
