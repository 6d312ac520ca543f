package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/store"
	"github.com/assomusica/playroom/pkg/slogx"
)

// InvitationService drives the invite state machine: fan-out, responses and
// withdrawals, keeping the denormalized accepted counter in step.
type InvitationService struct {
	Store store.Store
	Locks *KeyedLocks
}

// Distribute fans out pending invites for a reservation to the given member
// emails. Only the owning manager may distribute. The operation is
// idempotent: members already invited are left untouched, whatever their
// response state. Unknown emails are skipped. Returns the number of invites
// actually created.
func (s *InvitationService) Distribute(ctx context.Context, actor domain.Actor, reservationID string, emails []string) (int, error) {
	log := slogx.FromContext(ctx)

	if len(emails) == 0 {
		return 0, fmt.Errorf("%w: at least one member email is required", ErrValidation)
	}

	reservation, err := s.Store.Reservations().GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, fmt.Errorf("%w: reservation %s", ErrNotFound, reservationID)
		}
		return 0, err
	}
	if reservation.ManagerEmail != actor.Email {
		return 0, fmt.Errorf("%w: reservation %s belongs to another manager", ErrNotAllowed, reservationID)
	}

	created := 0
	now := time.Now().UTC()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, email := range emails {
			if _, err := tx.Members().GetMemberByEmail(ctx, email); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					log.Warn("invite skipped: unknown member",
						slog.String("reservation_id", reservationID),
						slog.String("member", email),
					)
					continue
				}
				return err
			}

			inserted, err := tx.Invites().CreateInviteIfAbsent(ctx, email, reservationID, now)
			if err != nil {
				return err
			}
			if inserted {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("invites distributed",
		slog.String("reservation_id", reservationID),
		slog.Int("requested", len(emails)),
		slog.Int("created", created),
	)

	return created, nil
}

// Respond records the acting member's answer to a pending invite. Accepting
// runs the room capacity check and the member's own-schedule check before
// flipping the state; both checks and the write happen in one transaction
// under the reservation's and the member's locks.
func (s *InvitationService) Respond(ctx context.Context, actor domain.Actor, reservationID string, answer domain.Response, reason string) error {
	log := slogx.FromContext(ctx)

	// 1. Only accept and decline are answers; pending is not.
	if answer != domain.ResponseAccepted && answer != domain.ResponseDeclined {
		return fmt.Errorf("%w: answer must be %q or %q", ErrValidation, domain.ResponseAccepted, domain.ResponseDeclined)
	}
	if answer == domain.ResponseDeclined && reason == "" {
		return fmt.Errorf("%w: declining requires a reason", ErrValidation)
	}

	// 2. The invite must exist and still be open.
	invite, err := s.Store.Invites().GetInvite(ctx, actor.Email, reservationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: no invite for %s to reservation %s", ErrNotFound, actor.Email, reservationID)
		}
		return err
	}
	if invite.Response != domain.ResponsePending {
		return fmt.Errorf("%w: invite already answered (%s)", ErrValidation, invite.Response)
	}

	reservation, err := s.Store.Reservations().GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: reservation %s", ErrNotFound, reservationID)
		}
		return err
	}

	now := time.Now().UTC()

	// 3. Declining needs no checks beyond the reason.
	if answer == domain.ResponseDeclined {
		if err := s.Store.Invites().SetInviteResponse(ctx, actor.Email, reservationID, domain.ResponseDeclined, reason, now); err != nil {
			return err
		}
		log.Info("invite declined",
			slog.String("reservation_id", reservationID),
			slog.String("member", actor.Email),
		)
		return nil
	}

	// 4. Accepting competes for a seat and for the member's own calendar, so
	// the checks and the write are serialized on both keys. Lock order is
	// reservation then member, everywhere.
	unlockResv := s.Locks.Lock("resv:" + reservationID)
	defer unlockResv()
	unlockMember := s.Locks.Lock("member:" + actor.Email)
	defer unlockMember()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Re-read under the locks: a concurrent respond may have beaten us.
		current, err := tx.Invites().GetInvite(ctx, actor.Email, reservationID)
		if err != nil {
			return err
		}
		if current.Response != domain.ResponsePending {
			return fmt.Errorf("%w: invite already answered (%s)", ErrValidation, current.Response)
		}

		room, err := tx.Rooms().GetRoomByID(ctx, reservation.RoomID)
		if err != nil {
			return err
		}

		accepted, err := tx.Invites().CountAccepted(ctx, reservationID)
		if err != nil {
			return err
		}
		if accepted >= room.Capacity {
			return fmt.Errorf("%w: room %s holds %d", ErrRoomFull, room.ID, room.Capacity)
		}

		busy, err := tx.Invites().HasAcceptedOverlap(ctx, actor.Email, reservation.StartAt, reservation.EndAt(), reservationID)
		if err != nil {
			return err
		}
		if busy {
			return fmt.Errorf("%w: member already committed in that interval", ErrScheduleConflict)
		}

		if err := tx.Invites().SetInviteResponse(ctx, actor.Email, reservationID, domain.ResponseAccepted, "", now); err != nil {
			return err
		}
		return tx.Reservations().AddAcceptedCount(ctx, reservationID, 1)
	})
	if err != nil {
		return err
	}

	log.Info("invite accepted",
		slog.String("reservation_id", reservationID),
		slog.String("member", actor.Email),
	)
	return nil
}

// Withdraw takes back an accepted invite, returning it to pending and
// freeing the seat. Withdrawing a pending invite is a no-op. A declined
// invite stays declined.
func (s *InvitationService) Withdraw(ctx context.Context, actor domain.Actor, reservationID string) error {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.Invites().GetInvite(ctx, actor.Email, reservationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: no invite for %s to reservation %s", ErrNotFound, actor.Email, reservationID)
		}
		return err
	}

	if invite.Response != domain.ResponseAccepted {
		return nil
	}

	unlockResv := s.Locks.Lock("resv:" + reservationID)
	defer unlockResv()
	unlockMember := s.Locks.Lock("member:" + actor.Email)
	defer unlockMember()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Invites().GetInvite(ctx, actor.Email, reservationID)
		if err != nil {
			return err
		}
		if current.Response != domain.ResponseAccepted {
			return nil
		}
		if err := tx.Invites().ResetInvite(ctx, actor.Email, reservationID); err != nil {
			return err
		}
		return tx.Reservations().AddAcceptedCount(ctx, reservationID, -1)
	})
	if err != nil {
		return err
	}

	log.Info("invite withdrawn",
		slog.String("reservation_id", reservationID),
		slog.String("member", actor.Email),
	)
	return nil
}

// ListPending returns the acting member's open invites for reservations that
// have not started yet, soonest first.
func (s *InvitationService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.InviteDetail, error) {
	return s.Store.Invites().ListPendingByMember(ctx, actor.Email, time.Now().UTC())
}
