package domain

import "time"

// Criterion tags how a reservation's invitees were (or will be) chosen.
// The planner records it for the caller; fan-out itself always happens
// through an explicit member list.
type Criterion string

const (
	CriterionManual     Criterion = "manual-selection"
	CriterionAllMembers Criterion = "all-members"
	CriterionSameSector Criterion = "same-sector"
	CriterionSameRole   Criterion = "same-role"
)

// Valid reports whether c is one of the known criteria.
func (c Criterion) Valid() bool {
	switch c {
	case CriterionManual, CriterionAllMembers, CriterionSameSector, CriterionSameRole:
		return true
	}
	return false
}

// Booking hours: reservations must start on an exact hour between these
// bounds. Only the start hour is checked, so a reservation starting at 23
// may run past midnight.
const (
	OpeningHour = 9
	ClosingHour = 23
)

// Reservation is a booked room-time interval owned by a manager.
type Reservation struct {
	ID            string
	RoomID        string
	ManagerEmail  string
	StartAt       time.Time
	DurationHours int
	Activity      string
	Criterion     Criterion
	Sector        string // sector of the room at booking time
	AcceptedCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EndAt returns the exclusive end of the reservation's interval.
func (r Reservation) EndAt() time.Time {
	return r.StartAt.Add(time.Duration(r.DurationHours) * time.Hour)
}

// Overlaps reports whether the half-open intervals [r.StartAt, r.EndAt())
// and [start, end) intersect.
func (r Reservation) Overlaps(start, end time.Time) bool {
	return r.StartAt.Before(end) && start.Before(r.EndAt())
}

// ReservationDetail is a reservation joined with the display data the read
// side needs: room name, sector and capacity, plus the owning manager's name.
type ReservationDetail struct {
	Reservation

	RoomName     string
	RoomSector   string
	RoomCapacity int
	ManagerName  string
}
