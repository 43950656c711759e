package appointment

import "github.com/google/uuid"

// Occupancy is the slice of an appointment the conflict check needs.
type Occupancy struct {
	AppointmentID uuid.UUID
	Interval      Interval
	Status        Status
}

// FindConflict returns the first occupancy that still holds its slot and
// overlaps candidate. Availability reads and the booking commit both go
// through here so what is shown and what is permitted cannot drift.
func FindConflict(candidate Interval, existing []Occupancy) (Occupancy, bool) {
	for _, o := range existing {
		if !o.Status.OccupiesSlot() {
			continue
		}
		if candidate.Overlaps(o.Interval) {
			return o, true
		}
	}
	return Occupancy{}, false
}

func HasConflict(candidate Interval, existing []Occupancy) bool {
	_, found := FindConflict(candidate, existing)
	return found
}
