package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/store"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `email, first_name, last_name, password_hash, birth_date, role, manager_since, created_at, updated_at`

func (r *membersRepo) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE email = ?`, email)

	m, err := scanMember(row)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO members (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Email,
		m.FirstName,
		m.LastName,
		m.PasswordHash,
		fmtTime(m.BirthDate),
		string(m.Role),
		fmtTimePtr(m.ManagerSince),
		fmtTime(m.CreatedAt),
		fmtTime(m.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *membersRepo) UpdateMemberProfile(ctx context.Context, email, firstName, lastName string, birthDate time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE members SET first_name = ?, last_name = ?, birth_date = ?, updated_at = ? WHERE email = ?`,
		firstName, lastName, fmtTime(birthDate), fmtTime(time.Now()), email)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *membersRepo) DeleteMember(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE email = ?`, email)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *membersRepo) ListMembers(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (domain.Member, error) {
	var m domain.Member
	var role, birthDate, createdAt, updatedAt string
	var managerSince sql.NullString

	err := row.Scan(&m.Email, &m.FirstName, &m.LastName, &m.PasswordHash,
		&birthDate, &role, &managerSince, &createdAt, &updatedAt)
	if err != nil {
		return domain.Member{}, err
	}

	m.Role = domain.Role(role)
	if m.BirthDate, err = parseTime(birthDate); err != nil {
		return domain.Member{}, err
	}
	if m.ManagerSince, err = parseTimePtr(managerSince); err != nil {
		return domain.Member{}, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Member{}, err
	}
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Member{}, err
	}
	return m, nil
}

func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	// modernc/sqlite surfaces constraint failures as plain errors carrying
	// the sqlite message text.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "PRIMARY KEY constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
