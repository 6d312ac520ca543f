package service

import (
	"context"
	"testing"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/stretchr/testify/require"
)

func TestReservationCreateValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	learner := seedLearner(t, st, "kid@asso.example")

	svc := &ReservationService{Store: st, Locks: NewKeyedLocks()}

	base := CreateReservationInput{
		RoomID:        "studio-1",
		StartAt:       slot(3, 15),
		DurationHours: 2,
		Activity:      "band rehearsal",
	}

	t.Run("creates a valid reservation", func(t *testing.T) {
		r, err := svc.Create(ctx, asActor(manager), base)
		require.NoError(t, err)
		require.NotEmpty(t, r.ID)
		require.Equal(t, manager.Email, r.ManagerEmail)
		require.Equal(t, "Musica Moderna", r.Sector)
		require.Equal(t, domain.CriterionManual, r.Criterion)
		require.Equal(t, slot(3, 17), r.EndAt())
	})

	t.Run("rejects non-managers", func(t *testing.T) {
		_, err := svc.Create(ctx, asActor(learner), base)
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("rejects manager role without appointment date", func(t *testing.T) {
		half := seedMember(t, st, "half@asso.example", domain.RoleManager, nil)
		_, err := svc.Create(ctx, asActor(half), base)
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("rejects unknown actor", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.Actor{Email: "ghost@asso.example", Role: domain.RoleManager}, base)
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		in := base
		in.Activity = ""
		_, err := svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrValidation)

		in = base
		in.RoomID = ""
		_, err = svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrValidation)

		in = base
		in.DurationHours = 0
		_, err = svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects unknown criterion", func(t *testing.T) {
		in := base
		in.StartAt = slot(4, 10)
		in.Criterion = domain.Criterion("astrological-sign")
		_, err := svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects off-hour starts", func(t *testing.T) {
		in := base
		in.StartAt = time.Date(2030, time.June, 4, 10, 30, 0, 0, time.UTC)
		_, err := svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects starts outside booking hours", func(t *testing.T) {
		in := base
		in.StartAt = slot(4, 8)
		_, err := svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrValidation)

		in.StartAt = time.Date(2030, time.June, 4, 0, 0, 0, 0, time.UTC)
		_, err = svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("accepts the boundary hours", func(t *testing.T) {
		in := base
		in.StartAt = slot(5, 9)
		_, err := svc.Create(ctx, asActor(manager), in)
		require.NoError(t, err)

		// 23:00 may run past midnight; only the start hour is checked.
		in.StartAt = slot(5, 23)
		in.DurationHours = 3
		_, err = svc.Create(ctx, asActor(manager), in)
		require.NoError(t, err)
	})

	t.Run("rejects unknown room", func(t *testing.T) {
		in := base
		in.RoomID = "sala-inesistente"
		in.StartAt = slot(6, 10)
		_, err := svc.Create(ctx, asActor(manager), in)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReservationOverlap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	other := seedManager(t, st, "other@asso.example")

	svc := &ReservationService{Store: st, Locks: NewKeyedLocks()}

	// Occupy studio-1 from 14:00 to 17:00.
	_, err := svc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(10, 14), DurationHours: 3, Activity: "recording",
	})
	require.NoError(t, err)

	t.Run("conflicts inside the interval regardless of owner", func(t *testing.T) {
		_, err := svc.Create(ctx, asActor(other), CreateReservationInput{
			RoomID: "studio-1", StartAt: slot(10, 15), DurationHours: 1, Activity: "lesson",
		})
		require.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("conflicts when straddling the start", func(t *testing.T) {
		_, err := svc.Create(ctx, asActor(manager), CreateReservationInput{
			RoomID: "studio-1", StartAt: slot(10, 13), DurationHours: 2, Activity: "lesson",
		})
		require.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("back to back slots do not conflict", func(t *testing.T) {
		_, err := svc.Create(ctx, asActor(manager), CreateReservationInput{
			RoomID: "studio-1", StartAt: slot(10, 17), DurationHours: 1, Activity: "lesson",
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, asActor(manager), CreateReservationInput{
			RoomID: "studio-1", StartAt: slot(10, 12), DurationHours: 2, Activity: "lesson",
		})
		require.NoError(t, err)
	})

	t.Run("same slot in another room is fine", func(t *testing.T) {
		_, err := svc.Create(ctx, asActor(manager), CreateReservationInput{
			RoomID: "sala-grande", StartAt: slot(10, 14), DurationHours: 3, Activity: "orchestra",
		})
		require.NoError(t, err)
	})
}

func TestReservationUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	other := seedManager(t, st, "other@asso.example")

	svc := &ReservationService{Store: st, Locks: NewKeyedLocks()}

	created, err := svc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-2", StartAt: slot(12, 10), DurationHours: 2, Activity: "rehearsal",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-2", StartAt: slot(12, 15), DurationHours: 2, Activity: "lesson",
	})
	require.NoError(t, err)

	t.Run("moves the slot", func(t *testing.T) {
		updated, err := svc.Update(ctx, asActor(manager), created.ID, ReservationPatch{
			StartAt: slot(12, 12), DurationHours: 3, Activity: "extended rehearsal",
		})
		require.NoError(t, err)
		require.Equal(t, slot(12, 12), updated.StartAt)
		require.Equal(t, 3, updated.DurationHours)

		got, err := st.Reservations().GetReservationByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "extended rehearsal", got.Activity)
		require.Equal(t, slot(12, 15), got.EndAt())
	})

	t.Run("does not conflict with itself", func(t *testing.T) {
		_, err := svc.Update(ctx, asActor(manager), created.ID, ReservationPatch{
			StartAt: slot(12, 12), DurationHours: 2, Activity: "rehearsal",
		})
		require.NoError(t, err)
	})

	t.Run("re-checks overlap against others", func(t *testing.T) {
		_, err := svc.Update(ctx, asActor(manager), created.ID, ReservationPatch{
			StartAt: slot(12, 14), DurationHours: 2, Activity: "rehearsal",
		})
		require.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("re-validates the slot shape", func(t *testing.T) {
		_, err := svc.Update(ctx, asActor(manager), created.ID, ReservationPatch{
			StartAt: slot(12, 7), DurationHours: 1, Activity: "rehearsal",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("owner only", func(t *testing.T) {
		_, err := svc.Update(ctx, asActor(other), created.ID, ReservationPatch{
			StartAt: slot(12, 18), DurationHours: 1, Activity: "takeover",
		})
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, err := svc.Update(ctx, asActor(manager), "nope", ReservationPatch{
			StartAt: slot(12, 18), DurationHours: 1, Activity: "x",
		})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReservationDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	other := seedManager(t, st, "other@asso.example")
	learner := seedLearner(t, st, "kid@asso.example")

	resvSvc := &ReservationService{Store: st, Locks: NewKeyedLocks()}
	invSvc := &InvitationService{Store: st, Locks: resvSvc.Locks}

	created, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(20, 10), DurationHours: 2, Activity: "rehearsal",
	})
	require.NoError(t, err)

	_, err = invSvc.Distribute(ctx, asActor(manager), created.ID, []string{learner.Email})
	require.NoError(t, err)

	t.Run("owner only", func(t *testing.T) {
		err := resvSvc.Delete(ctx, asActor(other), created.ID)
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("cascades invites", func(t *testing.T) {
		require.NoError(t, resvSvc.Delete(ctx, asActor(manager), created.ID))

		_, err := st.Reservations().GetReservationByID(ctx, created.ID)
		require.Error(t, err)

		pending, err := invSvc.ListPending(ctx, asActor(learner))
		require.NoError(t, err)
		require.Empty(t, pending)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		err := resvSvc.Delete(ctx, asActor(manager), created.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReservationListOwned(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	other := seedManager(t, st, "other@asso.example")

	svc := &ReservationService{Store: st, Locks: NewKeyedLocks()}

	_, err := svc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(3, 10), DurationHours: 1, Activity: "first",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "sala-grande", StartAt: slot(5, 18), DurationHours: 2, Activity: "second",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, asActor(other), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(4, 10), DurationHours: 1, Activity: "not mine",
	})
	require.NoError(t, err)

	owned, err := svc.ListOwned(ctx, asActor(manager))
	require.NoError(t, err)
	require.Len(t, owned, 2)

	// Newest start first, with room display data joined in.
	require.Equal(t, "second", owned[0].Activity)
	require.Equal(t, "Sala Grande", owned[0].RoomName)
	require.Equal(t, "first", owned[1].Activity)
}
