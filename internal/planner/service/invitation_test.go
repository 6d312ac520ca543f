package service

import (
	"context"
	"testing"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/stretchr/testify/require"
)

func TestInvitationDistribute(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	other := seedManager(t, st, "other@asso.example")
	alice := seedLearner(t, st, "alice@asso.example")
	bob := seedLearner(t, st, "bob@asso.example")

	locks := NewKeyedLocks()
	resvSvc := &ReservationService{Store: st, Locks: locks}
	invSvc := &InvitationService{Store: st, Locks: locks}

	resv, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "sala-grande", StartAt: slot(10, 18), DurationHours: 2, Activity: "orchestra",
	})
	require.NoError(t, err)

	t.Run("creates pending invites", func(t *testing.T) {
		created, err := invSvc.Distribute(ctx, asActor(manager), resv.ID, []string{alice.Email, bob.Email})
		require.NoError(t, err)
		require.Equal(t, 2, created)

		invite, err := st.Invites().GetInvite(ctx, alice.Email, resv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ResponsePending, invite.Response)
		require.Nil(t, invite.RespondedAt)
	})

	t.Run("is idempotent and preserves answers", func(t *testing.T) {
		require.NoError(t, invSvc.Respond(ctx, asActor(alice), resv.ID, domain.ResponseAccepted, ""))

		created, err := invSvc.Distribute(ctx, asActor(manager), resv.ID, []string{alice.Email, bob.Email})
		require.NoError(t, err)
		require.Equal(t, 0, created)

		invite, err := st.Invites().GetInvite(ctx, alice.Email, resv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ResponseAccepted, invite.Response)
	})

	t.Run("skips unknown members", func(t *testing.T) {
		created, err := invSvc.Distribute(ctx, asActor(manager), resv.ID, []string{"ghost@asso.example"})
		require.NoError(t, err)
		require.Equal(t, 0, created)
	})

	t.Run("owner only", func(t *testing.T) {
		_, err := invSvc.Distribute(ctx, asActor(other), resv.ID, []string{bob.Email})
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("requires at least one email", func(t *testing.T) {
		_, err := invSvc.Distribute(ctx, asActor(manager), resv.ID, nil)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, err := invSvc.Distribute(ctx, asActor(manager), "nope", []string{bob.Email})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInvitationRespond(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	alice := seedLearner(t, st, "alice@asso.example")
	bob := seedLearner(t, st, "bob@asso.example")
	carol := seedLearner(t, st, "carol@asso.example")

	locks := NewKeyedLocks()
	resvSvc := &ReservationService{Store: st, Locks: locks}
	invSvc := &InvitationService{Store: st, Locks: locks}

	// studio-1 holds two people.
	resv, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(10, 14), DurationHours: 2, Activity: "duo session",
	})
	require.NoError(t, err)

	_, err = invSvc.Distribute(ctx, asActor(manager), resv.ID, []string{alice.Email, bob.Email, carol.Email})
	require.NoError(t, err)

	t.Run("requires an invite", func(t *testing.T) {
		ghost := seedLearner(t, st, "dave@asso.example")
		err := invSvc.Respond(ctx, asActor(ghost), resv.ID, domain.ResponseAccepted, "")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects pending as an answer", func(t *testing.T) {
		err := invSvc.Respond(ctx, asActor(alice), resv.ID, domain.ResponsePending, "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("decline requires a reason", func(t *testing.T) {
		err := invSvc.Respond(ctx, asActor(alice), resv.ID, domain.ResponseDeclined, "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("accept stamps the invite and bumps the counter", func(t *testing.T) {
		require.NoError(t, invSvc.Respond(ctx, asActor(alice), resv.ID, domain.ResponseAccepted, ""))

		invite, err := st.Invites().GetInvite(ctx, alice.Email, resv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ResponseAccepted, invite.Response)
		require.NotNil(t, invite.RespondedAt)

		got, err := st.Reservations().GetReservationByID(ctx, resv.ID)
		require.NoError(t, err)
		require.Equal(t, 1, got.AcceptedCount)
	})

	t.Run("answered invites cannot be answered again", func(t *testing.T) {
		err := invSvc.Respond(ctx, asActor(alice), resv.ID, domain.ResponseDeclined, "changed my mind")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("room full once capacity is reached", func(t *testing.T) {
		require.NoError(t, invSvc.Respond(ctx, asActor(bob), resv.ID, domain.ResponseAccepted, ""))

		err := invSvc.Respond(ctx, asActor(carol), resv.ID, domain.ResponseAccepted, "")
		require.ErrorIs(t, err, ErrRoomFull)

		// The failed accept must leave the invite pending.
		invite, err := st.Invites().GetInvite(ctx, carol.Email, resv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ResponsePending, invite.Response)
	})

	t.Run("decline records the reason without touching the counter", func(t *testing.T) {
		require.NoError(t, invSvc.Respond(ctx, asActor(carol), resv.ID, domain.ResponseDeclined, "exam week"))

		invite, err := st.Invites().GetInvite(ctx, carol.Email, resv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ResponseDeclined, invite.Response)
		require.Equal(t, "exam week", invite.Reason)

		got, err := st.Reservations().GetReservationByID(ctx, resv.ID)
		require.NoError(t, err)
		require.Equal(t, 2, got.AcceptedCount)
	})
}

func TestInvitationScheduleConflict(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	alice := seedLearner(t, st, "alice@asso.example")

	locks := NewKeyedLocks()
	resvSvc := &ReservationService{Store: st, Locks: locks}
	invSvc := &InvitationService{Store: st, Locks: locks}

	// Two overlapping reservations in different rooms. Alice can hold a seat
	// in at most one of them.
	first, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(10, 14), DurationHours: 3, Activity: "band",
	})
	require.NoError(t, err)
	second, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "sala-grande", StartAt: slot(10, 16), DurationHours: 2, Activity: "choir",
	})
	require.NoError(t, err)
	later, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "sala-grande", StartAt: slot(10, 19), DurationHours: 1, Activity: "choir encore",
	})
	require.NoError(t, err)

	for _, r := range []string{first.ID, second.ID, later.ID} {
		_, err := invSvc.Distribute(ctx, asActor(manager), r, []string{alice.Email})
		require.NoError(t, err)
	}

	require.NoError(t, invSvc.Respond(ctx, asActor(alice), first.ID, domain.ResponseAccepted, ""))

	t.Run("overlapping accepted invite blocks the second accept", func(t *testing.T) {
		err := invSvc.Respond(ctx, asActor(alice), second.ID, domain.ResponseAccepted, "")
		require.ErrorIs(t, err, ErrScheduleConflict)
	})

	t.Run("back to back commitment is fine", func(t *testing.T) {
		require.NoError(t, invSvc.Respond(ctx, asActor(alice), later.ID, domain.ResponseAccepted, ""))
	})

	t.Run("withdrawing frees the slot for the other accept", func(t *testing.T) {
		require.NoError(t, invSvc.Withdraw(ctx, asActor(alice), first.ID))
		require.NoError(t, invSvc.Respond(ctx, asActor(alice), second.ID, domain.ResponseAccepted, ""))
	})
}

func TestInvitationWithdraw(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	alice := seedLearner(t, st, "alice@asso.example")
	bob := seedLearner(t, st, "bob@asso.example")

	locks := NewKeyedLocks()
	resvSvc := &ReservationService{Store: st, Locks: locks}
	invSvc := &InvitationService{Store: st, Locks: locks}

	resv, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-2", StartAt: slot(10, 14), DurationHours: 2, Activity: "quartet",
	})
	require.NoError(t, err)

	_, err = invSvc.Distribute(ctx, asActor(manager), resv.ID, []string{alice.Email, bob.Email})
	require.NoError(t, err)
	require.NoError(t, invSvc.Respond(ctx, asActor(alice), resv.ID, domain.ResponseAccepted, ""))
	require.NoError(t, invSvc.Respond(ctx, asActor(bob), resv.ID, domain.ResponseDeclined, "on tour"))

	t.Run("accepted goes back to pending and frees the seat", func(t *testing.T) {
		require.NoError(t, invSvc.Withdraw(ctx, asActor(alice), resv.ID))

		invite, err := st.Invites().GetInvite(ctx, alice.Email, resv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ResponsePending, invite.Response)
		require.Nil(t, invite.RespondedAt)
		require.Empty(t, invite.Reason)

		got, err := st.Reservations().GetReservationByID(ctx, resv.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.AcceptedCount)
	})

	t.Run("pending withdraw is a no-op", func(t *testing.T) {
		require.NoError(t, invSvc.Withdraw(ctx, asActor(alice), resv.ID))

		got, err := st.Reservations().GetReservationByID(ctx, resv.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.AcceptedCount)
	})

	t.Run("declined stays declined", func(t *testing.T) {
		require.NoError(t, invSvc.Withdraw(ctx, asActor(bob), resv.ID))

		invite, err := st.Invites().GetInvite(ctx, bob.Email, resv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ResponseDeclined, invite.Response)
		require.Equal(t, "on tour", invite.Reason)
	})

	t.Run("no invite", func(t *testing.T) {
		err := invSvc.Withdraw(ctx, asActor(manager), resv.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInvitationListPending(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	alice := seedLearner(t, st, "alice@asso.example")

	locks := NewKeyedLocks()
	resvSvc := &ReservationService{Store: st, Locks: locks}
	invSvc := &InvitationService{Store: st, Locks: locks}

	late, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(20, 18), DurationHours: 1, Activity: "late",
	})
	require.NoError(t, err)
	early, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(15, 10), DurationHours: 1, Activity: "early",
	})
	require.NoError(t, err)
	answered, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-2", StartAt: slot(16, 10), DurationHours: 1, Activity: "answered",
	})
	require.NoError(t, err)

	for _, r := range []string{late.ID, early.ID, answered.ID} {
		_, err := invSvc.Distribute(ctx, asActor(manager), r, []string{alice.Email})
		require.NoError(t, err)
	}
	require.NoError(t, invSvc.Respond(ctx, asActor(alice), answered.ID, domain.ResponseAccepted, ""))

	pending, err := invSvc.ListPending(ctx, asActor(alice))
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// Soonest first, answered invites excluded, detail joined in.
	require.Equal(t, "early", pending[0].Reservation.Activity)
	require.Equal(t, "Studio 1", pending[0].RoomName)
	require.Equal(t, "Test Member", pending[0].ManagerName)
	require.Equal(t, "late", pending[1].Reservation.Activity)
}
