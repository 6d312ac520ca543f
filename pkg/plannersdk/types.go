package plannersdk

import "time"

// RegisterRequest creates a new member account. Accounts always start as
// learners; manager appointment happens out of band.
type RegisterRequest struct {
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"password"`
	BirthDate time.Time `json:"birth_date"`
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued at login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int    `json:"expires_in"` // seconds
}

// MemberInfo is the public view of a member.
type MemberInfo struct {
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	BirthDate    time.Time  `json:"birth_date"`
	Role         string     `json:"role"`
	ManagerSince *time.Time `json:"manager_since,omitempty"`
}

// ListMembersResponse is the member directory.
type ListMembersResponse struct {
	Members []MemberInfo `json:"members"`
}

// UpdateProfileRequest changes the caller's own profile.
type UpdateProfileRequest struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
}

// RoomInfo is one entry of the room catalog.
type RoomInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Capacity int    `json:"capacity"`
}

// ListRoomsResponse is the room catalog.
type ListRoomsResponse struct {
	Rooms []RoomInfo `json:"rooms"`
}

// CreateReservationRequest books a room slot.
type CreateReservationRequest struct {
	RoomID        string    `json:"room_id"`
	StartAt       time.Time `json:"start_at"` // must be an exact hour
	DurationHours int       `json:"duration_hours"`
	Activity      string    `json:"activity"`
	Criterion     string    `json:"criterion,omitempty"` // defaults to manual-selection
}

// UpdateReservationRequest moves or relabels an existing reservation.
// Room and owner are immutable.
type UpdateReservationRequest struct {
	StartAt       time.Time `json:"start_at"`
	DurationHours int       `json:"duration_hours"`
	Activity      string    `json:"activity"`
}

// ReservationInfo is a reservation with its room and manager display data.
type ReservationInfo struct {
	ID            string    `json:"id"`
	RoomID        string    `json:"room_id"`
	RoomName      string    `json:"room_name,omitempty"`
	RoomCapacity  int       `json:"room_capacity,omitempty"`
	ManagerEmail  string    `json:"manager_email"`
	ManagerName   string    `json:"manager_name,omitempty"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	DurationHours int       `json:"duration_hours"`
	Activity      string    `json:"activity"`
	Criterion     string    `json:"criterion"`
	Sector        string    `json:"sector"`
	AcceptedCount int       `json:"accepted_count"`
}

// ListReservationsResponse is a week view or an owned-reservations list.
type ListReservationsResponse struct {
	Reservations []ReservationInfo `json:"reservations"`
}

// DistributeRequest fans out invites for a reservation.
type DistributeRequest struct {
	Emails []string `json:"emails"`
}

// DistributeResponse reports how many invites were newly created.
type DistributeResponse struct {
	Created int `json:"created"`
}

// RespondRequest answers a pending invite.
type RespondRequest struct {
	Answer string `json:"answer"`           // accepted or declined
	Reason string `json:"reason,omitempty"` // required when declining
}

// InviteInfo is a pending invite joined with its reservation.
type InviteInfo struct {
	ReservationID string          `json:"reservation_id"`
	Response      string          `json:"response"`
	Reason        string          `json:"reason,omitempty"`
	RespondedAt   *time.Time      `json:"responded_at,omitempty"`
	Reservation   ReservationInfo `json:"reservation"`
}

// ListInvitesResponse is the caller's pending invite inbox.
type ListInvitesResponse struct {
	Invites []InviteInfo `json:"invites"`
}

// ListCommitmentsResponse is the caller's accepted slots for a week.
type ListCommitmentsResponse struct {
	Commitments []InviteInfo `json:"commitments"`
}

// HealthChecks reports per-dependency status on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
