package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
)

type reservationsRepo struct {
	db dbtx
}

const reservationColumns = `id, room_id, manager_email, start_at, end_at, duration_hours, activity, criterion, sector, accepted_count, created_at, updated_at`

func (r *reservationsRepo) GetReservationByID(ctx context.Context, id string) (domain.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)

	res, err := scanReservation(row)
	if err != nil {
		return domain.Reservation{}, mapNotFound(err)
	}
	return res, nil
}

func (r *reservationsRepo) CreateReservation(ctx context.Context, res domain.Reservation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reservations (`+reservationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID,
		res.RoomID,
		res.ManagerEmail,
		fmtTime(res.StartAt),
		fmtTime(res.EndAt()),
		res.DurationHours,
		res.Activity,
		string(res.Criterion),
		res.Sector,
		res.AcceptedCount,
		fmtTime(res.CreatedAt),
		fmtTime(res.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *reservationsRepo) UpdateReservationSlot(ctx context.Context, id string, startAt time.Time, durationHours int, activity string) error {
	end := startAt.Add(time.Duration(durationHours) * time.Hour)
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations
		 SET start_at = ?, end_at = ?, duration_hours = ?, activity = ?, updated_at = ?
		 WHERE id = ?`,
		fmtTime(startAt), fmtTime(end), durationHours, activity, fmtTime(time.Now()), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *reservationsRepo) DeleteReservation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *reservationsRepo) CountOverlapping(ctx context.Context, roomID string, start, end time.Time, excludeID string) (int, error) {
	// Half-open interval test: existing.start < end AND start < existing.end.
	query := `SELECT COUNT(*) FROM reservations WHERE room_id = ? AND start_at < ? AND ? < end_at`
	args := []any{roomID, fmtTime(end), fmtTime(start)}
	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

const reservationDetailQuery = `
	SELECT r.id, r.room_id, r.manager_email, r.start_at, r.end_at, r.duration_hours,
	       r.activity, r.criterion, r.sector, r.accepted_count, r.created_at, r.updated_at,
	       rm.name, rm.sector, rm.capacity,
	       COALESCE(m.first_name || ' ' || m.last_name, '')
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id
	LEFT JOIN members m ON m.email = r.manager_email`

func (r *reservationsRepo) ListReservationsByManager(ctx context.Context, managerEmail string) ([]domain.ReservationDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		reservationDetailQuery+` WHERE r.manager_email = ? ORDER BY r.start_at DESC`,
		managerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReservationDetails(rows)
}

func (r *reservationsRepo) ListReservationsBetween(ctx context.Context, roomID string, from, to time.Time) ([]domain.ReservationDetail, error) {
	query := reservationDetailQuery + ` WHERE r.start_at >= ? AND r.start_at < ?`
	args := []any{fmtTime(from), fmtTime(to)}
	if roomID != "" {
		query += ` AND r.room_id = ?`
		args = append(args, roomID)
	}
	query += ` ORDER BY r.start_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReservationDetails(rows)
}

func (r *reservationsRepo) AddAcceptedCount(ctx context.Context, id string, delta int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET accepted_count = MAX(0, accepted_count + ?), updated_at = ? WHERE id = ?`,
		delta, fmtTime(time.Now()), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var res domain.Reservation
	var criterion, startAt, endAt, createdAt, updatedAt string

	err := row.Scan(&res.ID, &res.RoomID, &res.ManagerEmail, &startAt, &endAt,
		&res.DurationHours, &res.Activity, &criterion, &res.Sector,
		&res.AcceptedCount, &createdAt, &updatedAt)
	if err != nil {
		return domain.Reservation{}, err
	}

	res.Criterion = domain.Criterion(criterion)
	if res.StartAt, err = parseTime(startAt); err != nil {
		return domain.Reservation{}, err
	}
	// end_at is derived from start and duration; nothing to keep from it.
	if res.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Reservation{}, err
	}
	if res.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

func scanReservationDetail(row rowScanner) (domain.ReservationDetail, error) {
	var d domain.ReservationDetail
	var criterion, startAt, endAt, createdAt, updatedAt string

	err := row.Scan(&d.ID, &d.RoomID, &d.ManagerEmail, &startAt, &endAt,
		&d.DurationHours, &d.Activity, &criterion, &d.Sector,
		&d.AcceptedCount, &createdAt, &updatedAt,
		&d.RoomName, &d.RoomSector, &d.RoomCapacity, &d.ManagerName)
	if err != nil {
		return domain.ReservationDetail{}, err
	}

	d.Criterion = domain.Criterion(criterion)
	if d.StartAt, err = parseTime(startAt); err != nil {
		return domain.ReservationDetail{}, err
	}
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.ReservationDetail{}, err
	}
	if d.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.ReservationDetail{}, err
	}
	return d, nil
}

func collectReservationDetails(rows *sql.Rows) ([]domain.ReservationDetail, error) {
	var out []domain.ReservationDetail
	for rows.Next() {
		d, err := scanReservationDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
