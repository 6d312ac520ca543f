package domain

// Actor is the authenticated member on whose behalf an operation runs. It is
// passed explicitly into every service call; nothing reads identity from
// ambient state.
type Actor struct {
	Email string
	Role  Role
}

// IsManager reports whether the actor claims the manager role. Operations
// that care about the manager appointment date must still load the member
// record and check CanManage.
func (a Actor) IsManager() bool {
	return a.Role == RoleManager
}
