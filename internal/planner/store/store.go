package store

import (
	"context"
	"errors"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Members() Members
	Rooms() Rooms
	Reservations() Reservations
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step writes such as the overlap-check
	// then insert sequence.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Members interface {
	// GetMemberByEmail returns a member by their email key.
	GetMemberByEmail(ctx context.Context, email string) (domain.Member, error)

	// CreateMember inserts a new member. Returns ErrAlreadyExists when the
	// email is taken.
	CreateMember(ctx context.Context, m domain.Member) error

	// UpdateMemberProfile mutates name and birth date and bumps updated_at.
	UpdateMemberProfile(ctx context.Context, email, firstName, lastName string, birthDate time.Time) error

	// DeleteMember removes the member row. Invites referencing the member
	// must be deleted first (see Invites.DeleteInvitesByMember); the two
	// steps run inside one transaction owned by the service layer.
	DeleteMember(ctx context.Context, email string) error

	// ListMembers returns all members ordered by last name, first name.
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

type Rooms interface {
	// GetRoomByID returns a room from the catalog.
	GetRoomByID(ctx context.Context, id string) (domain.Room, error)

	// ListRooms returns the whole catalog ordered by sector then name.
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

type Reservations interface {
	// GetReservationByID returns a reservation by id.
	GetReservationByID(ctx context.Context, id string) (domain.Reservation, error)

	// CreateReservation inserts a new reservation (id provided via ULID).
	CreateReservation(ctx context.Context, r domain.Reservation) error

	// UpdateReservationSlot mutates the only mutable fields: start, duration
	// and activity. Room and owner are immutable post-creation.
	UpdateReservationSlot(ctx context.Context, id string, startAt time.Time, durationHours int, activity string) error

	// DeleteReservation removes the reservation row. Its invites must be
	// deleted first in the same transaction.
	DeleteReservation(ctx context.Context, id string) error

	// CountOverlapping counts reservations in the room whose half-open
	// interval intersects [start, end). excludeID, when non-empty, leaves
	// out one reservation (used when updating it).
	CountOverlapping(ctx context.Context, roomID string, start, end time.Time, excludeID string) (int, error)

	// ListReservationsByManager returns the manager's reservations joined
	// with room data, newest start first.
	ListReservationsByManager(ctx context.Context, managerEmail string) ([]domain.ReservationDetail, error)

	// ListReservationsBetween returns reservations whose start falls in
	// [from, to), joined with room and manager display data, ordered by
	// start ascending. Empty roomID means all rooms.
	ListReservationsBetween(ctx context.Context, roomID string, from, to time.Time) ([]domain.ReservationDetail, error)

	// AddAcceptedCount adjusts the denormalized accepted counter by delta,
	// clamped at zero. Must run in the same transaction as the invite state
	// change it mirrors.
	AddAcceptedCount(ctx context.Context, id string, delta int) error
}

type Invites interface {
	// GetInvite returns the invite for a (member, reservation) pair.
	GetInvite(ctx context.Context, memberEmail, reservationID string) (domain.Invite, error)

	// CreateInviteIfAbsent inserts a pending invite unless one already
	// exists for the pair. Reports whether a row was created.
	CreateInviteIfAbsent(ctx context.Context, memberEmail, reservationID string, createdAt time.Time) (bool, error)

	// SetInviteResponse records accept/decline with reason and timestamp.
	SetInviteResponse(ctx context.Context, memberEmail, reservationID string, response domain.Response, reason string, respondedAt time.Time) error

	// ResetInvite puts the invite back to pending, clearing reason and
	// response timestamp.
	ResetInvite(ctx context.Context, memberEmail, reservationID string) error

	// DeleteInvitesByReservation removes all invites of a reservation.
	DeleteInvitesByReservation(ctx context.Context, reservationID string) error

	// DeleteInvitesByMember removes all invites of a member and returns the
	// ids of reservations that lose an accepted attendee, so the caller can
	// fix up their counters in the same transaction.
	DeleteInvitesByMember(ctx context.Context, memberEmail string) ([]string, error)

	// CountAccepted counts invites in state accepted for a reservation.
	CountAccepted(ctx context.Context, reservationID string) (int, error)

	// HasAcceptedOverlap reports whether the member holds an accepted invite
	// for any other reservation whose interval intersects [start, end).
	HasAcceptedOverlap(ctx context.Context, memberEmail string, start, end time.Time, excludeReservationID string) (bool, error)

	// ListPendingByMember returns the member's pending invites for
	// reservations starting at or after now, joined detail, ordered by start.
	ListPendingByMember(ctx context.Context, memberEmail string, now time.Time) ([]domain.InviteDetail, error)

	// ListAcceptedBetween returns the member's accepted invites whose
	// reservation starts in [from, to), ordered by start ascending.
	ListAcceptedBetween(ctx context.Context, memberEmail string, from, to time.Time) ([]domain.Commitment, error)

	// DeleteStalePendingInvites removes pending invites whose reservation
	// ended before the cutoff. Housekeeping.
	DeleteStalePendingInvites(ctx context.Context, endedBefore time.Time) error
}
