package service

import (
	"context"
	"testing"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/stretchr/testify/require"
)

func TestScheduleReservationsInWeek(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")

	locks := NewKeyedLocks()
	resvSvc := &ReservationService{Store: st, Locks: locks}
	schedSvc := &ScheduleService{Store: st}

	// June 2030: Monday the 3rd through Sunday the 9th is one week.
	mustCreate := func(roomID string, start time.Time, activity string) domain.Reservation {
		r, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
			RoomID: roomID, StartAt: start, DurationHours: 1, Activity: activity,
		})
		require.NoError(t, err)
		return r
	}

	mustCreate("studio-1", slot(3, 9), "monday morning")   // week start boundary
	mustCreate("studio-1", slot(9, 23), "sunday night")    // week end boundary
	mustCreate("studio-2", slot(5, 14), "midweek")         // same week, other room
	mustCreate("studio-1", slot(10, 9), "next monday")     // following week
	mustCreate("studio-1", slot(2, 23), "previous sunday") // preceding week

	t.Run("all rooms, whole week, ordered by start", func(t *testing.T) {
		week, err := schedSvc.ReservationsInWeek(ctx, "", slot(5, 12))
		require.NoError(t, err)
		require.Len(t, week, 3)
		require.Equal(t, "monday morning", week[0].Activity)
		require.Equal(t, "midweek", week[1].Activity)
		require.Equal(t, "sunday night", week[2].Activity)
	})

	t.Run("any reference day inside the week gives the same window", func(t *testing.T) {
		monday, err := schedSvc.ReservationsInWeek(ctx, "", slot(3, 0))
		require.NoError(t, err)
		sunday, err := schedSvc.ReservationsInWeek(ctx, "", slot(9, 23))
		require.NoError(t, err)
		require.Equal(t, monday, sunday)
	})

	t.Run("filters by room", func(t *testing.T) {
		week, err := schedSvc.ReservationsInWeek(ctx, "studio-2", slot(5, 12))
		require.NoError(t, err)
		require.Len(t, week, 1)
		require.Equal(t, "midweek", week[0].Activity)
	})

	t.Run("unknown room yields an empty week", func(t *testing.T) {
		week, err := schedSvc.ReservationsInWeek(ctx, "sala-inesistente", slot(5, 12))
		require.NoError(t, err)
		require.Empty(t, week)
	})
}

func TestScheduleCommitmentsInWeek(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	alice := seedLearner(t, st, "alice@asso.example")

	locks := NewKeyedLocks()
	resvSvc := &ReservationService{Store: st, Locks: locks}
	invSvc := &InvitationService{Store: st, Locks: locks}
	schedSvc := &ScheduleService{Store: st}

	inWeek, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(5, 14), DurationHours: 2, Activity: "in week",
	})
	require.NoError(t, err)
	nextWeek, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(12, 14), DurationHours: 2, Activity: "next week",
	})
	require.NoError(t, err)
	pendingOnly, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-2", StartAt: slot(6, 14), DurationHours: 1, Activity: "pending only",
	})
	require.NoError(t, err)

	for _, r := range []string{inWeek.ID, nextWeek.ID, pendingOnly.ID} {
		_, err := invSvc.Distribute(ctx, asActor(manager), r, []string{alice.Email})
		require.NoError(t, err)
	}
	require.NoError(t, invSvc.Respond(ctx, asActor(alice), inWeek.ID, domain.ResponseAccepted, ""))
	require.NoError(t, invSvc.Respond(ctx, asActor(alice), nextWeek.ID, domain.ResponseAccepted, ""))

	t.Run("accepted invites inside the week only", func(t *testing.T) {
		commitments, err := schedSvc.CommitmentsInWeek(ctx, alice.Email, slot(4, 10))
		require.NoError(t, err)
		require.Len(t, commitments, 1)
		require.Equal(t, "in week", commitments[0].Reservation.Activity)
		require.Equal(t, "Studio 1", commitments[0].Reservation.RoomName)
	})

	t.Run("unknown member yields an empty week", func(t *testing.T) {
		commitments, err := schedSvc.CommitmentsInWeek(ctx, "ghost@asso.example", slot(4, 10))
		require.NoError(t, err)
		require.Empty(t, commitments)
	})
}
