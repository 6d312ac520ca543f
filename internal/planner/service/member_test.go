package service

import (
	"context"
	"testing"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMemberRegister(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MemberService{Store: st, Locks: NewKeyedLocks()}

	valid := RegisterMemberInput{
		Email:     "alice@asso.example",
		FirstName: "Alice",
		LastName:  "Rossi",
		Password:  "correct horse battery",
		BirthDate: time.Date(1998, time.March, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("registers with hashed password", func(t *testing.T) {
		m, err := svc.Register(ctx, valid)
		require.NoError(t, err)
		require.Equal(t, domain.RoleLearner, m.Role)
		require.NotEqual(t, valid.Password, m.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword(valid.Password, m.PasswordHash))
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, valid)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("malformed email", func(t *testing.T) {
		in := valid
		in.Email = "not-an-email"
		_, err := svc.Register(ctx, in)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("short password", func(t *testing.T) {
		in := valid
		in.Email = "bob@asso.example"
		in.Password = "short"
		_, err := svc.Register(ctx, in)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown role", func(t *testing.T) {
		in := valid
		in.Email = "bob@asso.example"
		in.Role = domain.Role("janitor")
		_, err := svc.Register(ctx, in)
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestMemberAuthenticate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MemberService{Store: st, Locks: NewKeyedLocks()}

	_, err := svc.Register(ctx, RegisterMemberInput{
		Email:     "alice@asso.example",
		FirstName: "Alice",
		LastName:  "Rossi",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		m, err := svc.Authenticate(ctx, "alice@asso.example", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, "alice@asso.example", m.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@asso.example", "wrong")
		require.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost@asso.example", "whatever")
		require.ErrorIs(t, err, ErrNotAllowed)
	})
}

func TestMemberProfileAndUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MemberService{Store: st, Locks: NewKeyedLocks()}
	alice := seedLearner(t, st, "alice@asso.example")

	t.Run("profile round trip", func(t *testing.T) {
		m, err := svc.Profile(ctx, alice.Email)
		require.NoError(t, err)
		require.Equal(t, alice.Email, m.Email)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := svc.Profile(ctx, "ghost@asso.example")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update profile", func(t *testing.T) {
		birth := time.Date(1999, time.July, 9, 0, 0, 0, 0, time.UTC)
		require.NoError(t, svc.UpdateProfile(ctx, asActor(alice), "Alicia", "Bianchi", birth))

		m, err := svc.Profile(ctx, alice.Email)
		require.NoError(t, err)
		require.Equal(t, "Alicia", m.FirstName)
		require.Equal(t, "Bianchi", m.LastName)
		require.Equal(t, birth, m.BirthDate)
	})

	t.Run("update rejects empty names", func(t *testing.T) {
		err := svc.UpdateProfile(ctx, asActor(alice), "", "Bianchi", time.Time{})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestMemberDeleteAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	manager := seedManager(t, st, "boss@asso.example")
	alice := seedLearner(t, st, "alice@asso.example")

	locks := NewKeyedLocks()
	memberSvc := &MemberService{Store: st, Locks: locks}
	resvSvc := &ReservationService{Store: st, Locks: locks}
	invSvc := &InvitationService{Store: st, Locks: locks}

	resv, err := resvSvc.Create(ctx, asActor(manager), CreateReservationInput{
		RoomID: "studio-1", StartAt: slot(10, 14), DurationHours: 2, Activity: "duo",
	})
	require.NoError(t, err)
	_, err = invSvc.Distribute(ctx, asActor(manager), resv.ID, []string{alice.Email})
	require.NoError(t, err)
	require.NoError(t, invSvc.Respond(ctx, asActor(alice), resv.ID, domain.ResponseAccepted, ""))

	t.Run("deletes the member and releases accepted seats", func(t *testing.T) {
		require.NoError(t, memberSvc.DeleteAccount(ctx, asActor(alice)))

		_, err := memberSvc.Profile(ctx, alice.Email)
		require.ErrorIs(t, err, ErrNotFound)

		got, err := st.Reservations().GetReservationByID(ctx, resv.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.AcceptedCount)
	})

	t.Run("owned reservations survive their manager", func(t *testing.T) {
		require.NoError(t, memberSvc.DeleteAccount(ctx, asActor(manager)))

		_, err := st.Reservations().GetReservationByID(ctx, resv.ID)
		require.NoError(t, err)
	})

	t.Run("unknown member", func(t *testing.T) {
		err := memberSvc.DeleteAccount(ctx, asActor(alice))
		require.ErrorIs(t, err, ErrNotFound)
	})
}
