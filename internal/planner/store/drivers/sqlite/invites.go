package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `member_email, reservation_id, response, reason, responded_at, created_at, updated_at`

func (r *invitesRepo) GetInvite(ctx context.Context, memberEmail, reservationID string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE member_email = ? AND reservation_id = ?`,
		memberEmail, reservationID)

	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) CreateInviteIfAbsent(ctx context.Context, memberEmail, reservationID string, createdAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO invites (member_email, reservation_id, response, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		memberEmail, reservationID, string(domain.ResponsePending),
		fmtTime(createdAt), fmtTime(createdAt))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitesRepo) SetInviteResponse(ctx context.Context, memberEmail, reservationID string, response domain.Response, reason string, respondedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET response = ?, reason = ?, responded_at = ?, updated_at = ?
		 WHERE member_email = ? AND reservation_id = ?`,
		string(response), mapStringNull(reason), fmtTime(respondedAt), fmtTime(respondedAt),
		memberEmail, reservationID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *invitesRepo) ResetInvite(ctx context.Context, memberEmail, reservationID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET response = ?, reason = NULL, responded_at = NULL, updated_at = ?
		 WHERE member_email = ? AND reservation_id = ?`,
		string(domain.ResponsePending), fmtTime(time.Now()), memberEmail, reservationID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *invitesRepo) DeleteInvitesByReservation(ctx context.Context, reservationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE reservation_id = ?`, reservationID)
	return err
}

func (r *invitesRepo) DeleteInvitesByMember(ctx context.Context, memberEmail string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT reservation_id FROM invites WHERE member_email = ? AND response = ?`,
		memberEmail, string(domain.ResponseAccepted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accepted []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		accepted = append(accepted, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE member_email = ?`, memberEmail); err != nil {
		return nil, err
	}
	return accepted, nil
}

func (r *invitesRepo) CountAccepted(ctx context.Context, reservationID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invites WHERE reservation_id = ? AND response = ?`,
		reservationID, string(domain.ResponseAccepted)).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *invitesRepo) HasAcceptedOverlap(ctx context.Context, memberEmail string, start, end time.Time, excludeReservationID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM invites i
		 JOIN reservations r ON r.id = i.reservation_id
		 WHERE i.member_email = ?
		   AND i.response = ?
		   AND i.reservation_id != ?
		   AND r.start_at < ? AND ? < r.end_at`,
		memberEmail, string(domain.ResponseAccepted), excludeReservationID,
		fmtTime(end), fmtTime(start)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitesRepo) ListPendingByMember(ctx context.Context, memberEmail string, now time.Time) ([]domain.InviteDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT i.member_email, i.reservation_id, i.response, i.reason, i.responded_at, i.created_at, i.updated_at,
		        r.id, r.room_id, r.manager_email, r.start_at, r.end_at, r.duration_hours,
		        r.activity, r.criterion, r.sector, r.accepted_count, r.created_at, r.updated_at,
		        rm.name, COALESCE(m.first_name || ' ' || m.last_name, '')
		 FROM invites i
		 JOIN reservations r ON r.id = i.reservation_id
		 JOIN rooms rm ON rm.id = r.room_id
		 LEFT JOIN members m ON m.email = r.manager_email
		 WHERE i.member_email = ? AND i.response = ? AND r.start_at >= ?
		 ORDER BY r.start_at ASC`,
		memberEmail, string(domain.ResponsePending), fmtTime(now))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InviteDetail
	for rows.Next() {
		var d domain.InviteDetail
		var invResponse, invCreated, invUpdated string
		var invReason, invResponded sql.NullString
		var resCriterion, resStart, resEnd, resCreated, resUpdated string

		err := rows.Scan(&d.MemberEmail, &d.ReservationID, &invResponse, &invReason, &invResponded, &invCreated, &invUpdated,
			&d.Reservation.ID, &d.Reservation.RoomID, &d.Reservation.ManagerEmail, &resStart, &resEnd,
			&d.Reservation.DurationHours, &d.Reservation.Activity, &resCriterion, &d.Reservation.Sector,
			&d.Reservation.AcceptedCount, &resCreated, &resUpdated,
			&d.RoomName, &d.ManagerName)
		if err != nil {
			return nil, err
		}

		if err := fillInvite(&d.Invite, invResponse, invReason, invResponded, invCreated, invUpdated); err != nil {
			return nil, err
		}
		d.Reservation.Criterion = domain.Criterion(resCriterion)
		if d.Reservation.StartAt, err = parseTime(resStart); err != nil {
			return nil, err
		}
		if d.Reservation.CreatedAt, err = parseTime(resCreated); err != nil {
			return nil, err
		}
		if d.Reservation.UpdatedAt, err = parseTime(resUpdated); err != nil {
			return nil, err
		}

		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *invitesRepo) ListAcceptedBetween(ctx context.Context, memberEmail string, from, to time.Time) ([]domain.Commitment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT i.member_email, i.reservation_id, i.response, i.reason, i.responded_at, i.created_at, i.updated_at,
		        r.id, r.room_id, r.manager_email, r.start_at, r.end_at, r.duration_hours,
		        r.activity, r.criterion, r.sector, r.accepted_count, r.created_at, r.updated_at,
		        rm.name, rm.sector, rm.capacity,
		        COALESCE(m.first_name || ' ' || m.last_name, '')
		 FROM invites i
		 JOIN reservations r ON r.id = i.reservation_id
		 JOIN rooms rm ON rm.id = r.room_id
		 LEFT JOIN members m ON m.email = r.manager_email
		 WHERE i.member_email = ? AND i.response = ? AND r.start_at >= ? AND r.start_at < ?
		 ORDER BY r.start_at ASC`,
		memberEmail, string(domain.ResponseAccepted), fmtTime(from), fmtTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Commitment
	for rows.Next() {
		var c domain.Commitment
		var invResponse, invCreated, invUpdated string
		var invReason, invResponded sql.NullString
		var resCriterion, resStart, resEnd, resCreated, resUpdated string

		err := rows.Scan(&c.MemberEmail, &c.ReservationID, &invResponse, &invReason, &invResponded, &invCreated, &invUpdated,
			&c.Reservation.ID, &c.Reservation.RoomID, &c.Reservation.ManagerEmail, &resStart, &resEnd,
			&c.Reservation.DurationHours, &c.Reservation.Activity, &resCriterion, &c.Reservation.Sector,
			&c.Reservation.AcceptedCount, &resCreated, &resUpdated,
			&c.Reservation.RoomName, &c.Reservation.RoomSector, &c.Reservation.RoomCapacity,
			&c.Reservation.ManagerName)
		if err != nil {
			return nil, err
		}

		if err := fillInvite(&c.Invite, invResponse, invReason, invResponded, invCreated, invUpdated); err != nil {
			return nil, err
		}
		c.Reservation.Criterion = domain.Criterion(resCriterion)
		if c.Reservation.StartAt, err = parseTime(resStart); err != nil {
			return nil, err
		}
		if c.Reservation.CreatedAt, err = parseTime(resCreated); err != nil {
			return nil, err
		}
		if c.Reservation.UpdatedAt, err = parseTime(resUpdated); err != nil {
			return nil, err
		}

		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *invitesRepo) DeleteStalePendingInvites(ctx context.Context, endedBefore time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invites
		 WHERE response = ?
		   AND reservation_id IN (SELECT id FROM reservations WHERE end_at < ?)`,
		string(domain.ResponsePending), fmtTime(endedBefore))
	return err
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var inv domain.Invite
	var response, createdAt, updatedAt string
	var reason, respondedAt sql.NullString

	err := row.Scan(&inv.MemberEmail, &inv.ReservationID, &response, &reason,
		&respondedAt, &createdAt, &updatedAt)
	if err != nil {
		return domain.Invite{}, err
	}

	if err := fillInvite(&inv, response, reason, respondedAt, createdAt, updatedAt); err != nil {
		return domain.Invite{}, err
	}
	return inv, nil
}

func fillInvite(inv *domain.Invite, response string, reason, respondedAt sql.NullString, createdAt, updatedAt string) error {
	inv.Response = domain.Response(response)
	inv.Reason = mapNullString(reason)

	var err error
	if inv.RespondedAt, err = parseTimePtr(respondedAt); err != nil {
		return err
	}
	if inv.CreatedAt, err = parseTime(createdAt); err != nil {
		return err
	}
	if inv.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return err
	}
	return nil
}
