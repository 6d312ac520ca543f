package service

import (
	"context"
	"testing"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/store"
	"github.com/assomusica/playroom/internal/planner/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore spins up a migrated in-memory sqlite store. The room catalog
// comes seeded from the migrations: studio-1 (capacity 2), studio-2 (4),
// sala-grande (12), sala-percussioni (6).
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedMember(t *testing.T, st store.Store, email string, role domain.Role, managerSince *time.Time) domain.Member {
	t.Helper()

	now := time.Now().UTC()
	m := domain.Member{
		Email:        email,
		FirstName:    "Test",
		LastName:     "Member",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
		BirthDate:    time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC),
		Role:         role,
		ManagerSince: managerSince,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Members().CreateMember(context.Background(), m))
	return m
}

func seedManager(t *testing.T, st store.Store, email string) domain.Member {
	t.Helper()

	since := time.Now().UTC().AddDate(-1, 0, 0)
	return seedMember(t, st, email, domain.RoleManager, &since)
}

func seedLearner(t *testing.T, st store.Store, email string) domain.Member {
	t.Helper()
	return seedMember(t, st, email, domain.RoleLearner, nil)
}

// slot returns an exact-hour start time on a fixed future date, safely inside
// booking hours.
func slot(day int, hour int) time.Time {
	return time.Date(2030, time.June, day, hour, 0, 0, 0, time.UTC)
}

func asActor(m domain.Member) domain.Actor {
	return domain.Actor{Email: m.Email, Role: m.Role}
}
