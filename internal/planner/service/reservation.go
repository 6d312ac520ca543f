package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/store"
	"github.com/assomusica/playroom/pkg/idx"
	"github.com/assomusica/playroom/pkg/slogx"
)

// ReservationService owns the reservation lifecycle: slot validation, the
// per-room overlap invariant, and the invite cascade on delete.
type ReservationService struct {
	Store store.Store
	Locks *KeyedLocks
}

type CreateReservationInput struct {
	RoomID        string
	StartAt       time.Time
	DurationHours int
	Activity      string
	Criterion     domain.Criterion
}

type ReservationPatch struct {
	StartAt       time.Time
	DurationHours int
	Activity      string
}

// Create validates and persists a new reservation for the acting manager.
func (s *ReservationService) Create(ctx context.Context, actor domain.Actor, in CreateReservationInput) (domain.Reservation, error) {
	log := slogx.FromContext(ctx)

	// 1. Field presence.
	if in.RoomID == "" || in.Activity == "" || in.StartAt.IsZero() {
		return domain.Reservation{}, fmt.Errorf("%w: room, activity and start time are required", ErrValidation)
	}
	if in.DurationHours < 1 {
		return domain.Reservation{}, fmt.Errorf("%w: duration must be at least one hour", ErrValidation)
	}
	if in.Criterion == "" {
		in.Criterion = domain.CriterionManual
	}
	if !in.Criterion.Valid() {
		return domain.Reservation{}, fmt.Errorf("%w: unknown invite criterion %q", ErrValidation, in.Criterion)
	}

	// 2. Slot shape: exact hour inside booking hours. Only the start hour is
	// checked, so 23:00 bookings may run past midnight.
	if err := validateSlot(in.StartAt); err != nil {
		return domain.Reservation{}, err
	}

	// 3. The actor must be a fully appointed manager.
	member, err := s.Store.Members().GetMemberByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Reservation{}, fmt.Errorf("%w: unknown member %s", ErrNotAllowed, actor.Email)
		}
		return domain.Reservation{}, err
	}
	if !member.CanManage() {
		log.Warn("reservation create rejected: not a manager", slog.String("member", actor.Email))
		return domain.Reservation{}, fmt.Errorf("%w: only managers may create reservations", ErrNotAllowed)
	}

	now := time.Now().UTC()
	reservation := domain.Reservation{
		ID:            idx.New().String(),
		RoomID:        in.RoomID,
		ManagerEmail:  member.Email,
		StartAt:       in.StartAt.UTC(),
		DurationHours: in.DurationHours,
		Activity:      in.Activity,
		Criterion:     in.Criterion,
		AcceptedCount: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 4. Check-then-insert under the room's lock so two concurrent creates
	// cannot both pass the overlap check.
	unlock := s.Locks.Lock("room:" + in.RoomID)
	defer unlock()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		room, err := tx.Rooms().GetRoomByID(ctx, in.RoomID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: room %s", ErrNotFound, in.RoomID)
			}
			return err
		}
		reservation.Sector = room.Sector

		n, err := tx.Reservations().CountOverlapping(ctx, in.RoomID, reservation.StartAt, reservation.EndAt(), "")
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: room %s is occupied in that interval", ErrSlotConflict, in.RoomID)
		}

		return tx.Reservations().CreateReservation(ctx, reservation)
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	log.Info("reservation created",
		slog.String("reservation_id", reservation.ID),
		slog.String("room_id", reservation.RoomID),
		slog.String("manager", reservation.ManagerEmail),
		slog.Time("start_at", reservation.StartAt),
		slog.Int("duration_hours", reservation.DurationHours),
	)

	return reservation, nil
}

// Update changes a reservation's slot or activity. Room and owner are
// immutable: moving to another room means delete and recreate, so the
// overlap and capacity invariants get re-validated from scratch.
func (s *ReservationService) Update(ctx context.Context, actor domain.Actor, id string, patch ReservationPatch) (domain.Reservation, error) {
	log := slogx.FromContext(ctx)

	if patch.Activity == "" || patch.StartAt.IsZero() {
		return domain.Reservation{}, fmt.Errorf("%w: activity and start time are required", ErrValidation)
	}
	if patch.DurationHours < 1 {
		return domain.Reservation{}, fmt.Errorf("%w: duration must be at least one hour", ErrValidation)
	}
	if err := validateSlot(patch.StartAt); err != nil {
		return domain.Reservation{}, err
	}

	existing, err := s.Store.Reservations().GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Reservation{}, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
		}
		return domain.Reservation{}, err
	}
	if existing.ManagerEmail != actor.Email {
		return domain.Reservation{}, fmt.Errorf("%w: reservation %s belongs to another manager", ErrNotAllowed, id)
	}

	start := patch.StartAt.UTC()
	end := start.Add(time.Duration(patch.DurationHours) * time.Hour)

	unlock := s.Locks.Lock("room:" + existing.RoomID)
	defer unlock()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Overlap check against every other reservation in the room.
		n, err := tx.Reservations().CountOverlapping(ctx, existing.RoomID, start, end, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: room %s is occupied in that interval", ErrSlotConflict, existing.RoomID)
		}

		return tx.Reservations().UpdateReservationSlot(ctx, id, start, patch.DurationHours, patch.Activity)
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	log.Info("reservation updated",
		slog.String("reservation_id", id),
		slog.Time("start_at", start),
		slog.Int("duration_hours", patch.DurationHours),
	)

	existing.StartAt = start
	existing.DurationHours = patch.DurationHours
	existing.Activity = patch.Activity
	return existing, nil
}

// Delete removes a reservation and, first, every invite hanging off it.
func (s *ReservationService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	log := slogx.FromContext(ctx)

	existing, err := s.Store.Reservations().GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
		}
		return err
	}
	if existing.ManagerEmail != actor.Email {
		return fmt.Errorf("%w: reservation %s belongs to another manager", ErrNotAllowed, id)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().DeleteInvitesByReservation(ctx, id); err != nil {
			return err
		}
		return tx.Reservations().DeleteReservation(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Info("reservation deleted", slog.String("reservation_id", id))
	return nil
}

// ListOwned returns the acting manager's reservations, newest start first.
func (s *ReservationService) ListOwned(ctx context.Context, actor domain.Actor) ([]domain.ReservationDetail, error) {
	return s.Store.Reservations().ListReservationsByManager(ctx, actor.Email)
}

// validateSlot checks a reservation start time: exact hour, inside the
// association's 09-23 booking window.
func validateSlot(start time.Time) error {
	if start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return fmt.Errorf("%w: reservations must start on the hour", ErrValidation)
	}
	if h := start.Hour(); h < domain.OpeningHour || h > domain.ClosingHour {
		return fmt.Errorf("%w: booking hours are %02d:00-%02d:00", ErrValidation, domain.OpeningHour, domain.ClosingHour)
	}
	return nil
}
