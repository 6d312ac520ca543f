package http

import (
	"net/http"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/plannersdk"
)

// actorFromRequest rebuilds the acting member from the authn context.
// Handlers behind AuthnMiddleware can rely on ok being true.
func actorFromRequest(r *http.Request) (domain.Actor, bool) {
	email, role, ok := httpx.MemberFromContext(r.Context())
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{Email: email, Role: domain.Role(role)}, true
}

func toMemberInfo(m domain.Member) plannersdk.MemberInfo {
	return plannersdk.MemberInfo{
		Email:        m.Email,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		BirthDate:    m.BirthDate,
		Role:         string(m.Role),
		ManagerSince: m.ManagerSince,
	}
}

func toReservationInfo(r domain.Reservation) plannersdk.ReservationInfo {
	return plannersdk.ReservationInfo{
		ID:            r.ID,
		RoomID:        r.RoomID,
		ManagerEmail:  r.ManagerEmail,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt(),
		DurationHours: r.DurationHours,
		Activity:      r.Activity,
		Criterion:     string(r.Criterion),
		Sector:        r.Sector,
		AcceptedCount: r.AcceptedCount,
	}
}

func toReservationDetailInfo(d domain.ReservationDetail) plannersdk.ReservationInfo {
	info := toReservationInfo(d.Reservation)
	info.RoomName = d.RoomName
	info.RoomCapacity = d.RoomCapacity
	info.ManagerName = d.ManagerName
	return info
}

func toInviteInfo(d domain.InviteDetail) plannersdk.InviteInfo {
	reservation := toReservationInfo(d.Reservation)
	reservation.RoomName = d.RoomName
	reservation.ManagerName = d.ManagerName

	return plannersdk.InviteInfo{
		ReservationID: d.ReservationID,
		Response:      string(d.Response),
		Reason:        d.Reason,
		RespondedAt:   d.RespondedAt,
		Reservation:   reservation,
	}
}

func toCommitmentInfo(c domain.Commitment) plannersdk.InviteInfo {
	return plannersdk.InviteInfo{
		ReservationID: c.ReservationID,
		Response:      string(c.Response),
		Reason:        c.Reason,
		RespondedAt:   c.RespondedAt,
		Reservation:   toReservationDetailInfo(c.Reservation),
	}
}
