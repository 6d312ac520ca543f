package domain

import "time"

// Role is a member's standing inside the association.
type Role string

const (
	RoleLearner Role = "learner"
	RoleManager Role = "manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleLearner || r == RoleManager
}

// Member is an association member, keyed by email.
type Member struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // argon2id encoded, checked at login
	BirthDate    time.Time
	Role         Role
	ManagerSince *time.Time // non-nil only for members entitled to book rooms
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanManage reports whether the member is a fully qualified manager:
// holding the manager role alone is not enough, the appointment date must
// be set too.
func (m Member) CanManage() bool {
	return m.Role == RoleManager && m.ManagerSince != nil
}

// DisplayName is the member's name as shown in schedules.
func (m Member) DisplayName() string {
	return m.FirstName + " " + m.LastName
}
