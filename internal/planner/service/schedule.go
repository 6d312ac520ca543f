package service

import (
	"context"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/store"
	"github.com/assomusica/playroom/pkg/calendarx"
)

// ScheduleService is the read side: weekly views over reservations and a
// member's accepted commitments. Unknown rooms or members simply yield empty
// slices; there is nothing to protect on a read.
type ScheduleService struct {
	Store store.Store
}

// ReservationsInWeek returns every reservation starting inside the week that
// contains ref, ordered by start. Empty roomID means all rooms.
func (s *ScheduleService) ReservationsInWeek(ctx context.Context, roomID string, ref time.Time) ([]domain.ReservationDetail, error) {
	from, to := calendarx.WeekWindow(ref)
	return s.Store.Reservations().ListReservationsBetween(ctx, roomID, from, calendarx.NextDay(to))
}

// CommitmentsInWeek returns the member's accepted invites whose reservation
// starts inside the week containing ref, ordered by start.
func (s *ScheduleService) CommitmentsInWeek(ctx context.Context, memberEmail string, ref time.Time) ([]domain.Commitment, error) {
	from, to := calendarx.WeekWindow(ref)
	return s.Store.Invites().ListAcceptedBetween(ctx, memberEmail, from, calendarx.NextDay(to))
}
