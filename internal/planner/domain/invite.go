package domain

import "time"

// Response is the state of an invite.
//
// The state machine is:
//
//	pending --accept--> accepted
//	pending --decline--> declined
//	accepted --withdraw--> pending
//
// declined has no outgoing transition; re-inviting a member who declined is
// out of scope.
type Response string

const (
	ResponsePending  Response = "pending"
	ResponseAccepted Response = "accepted"
	ResponseDeclined Response = "declined"
)

// Invite is a per-member attendance record for a reservation. The pair
// (MemberEmail, ReservationID) is its identity.
type Invite struct {
	MemberEmail   string
	ReservationID string
	Response      Response
	Reason        string     // required when declined, empty otherwise
	RespondedAt   *time.Time // nil while pending
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InviteDetail is a pending invite joined with its reservation and room for
// the member's invite inbox.
type InviteDetail struct {
	Invite

	Reservation Reservation
	RoomName    string
	ManagerName string
}

// Commitment is an accepted invite joined with its reservation, as listed
// on a member's weekly schedule.
type Commitment struct {
	Invite

	Reservation ReservationDetail
}
