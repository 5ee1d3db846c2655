package ledger

import "github.com/zuberiservices/hawker-ledger/internal/domain/entity"

// Actor is the authenticated caller of a core operation. It is passed
// explicitly into every operation; the engine keeps no session state.
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// CanActFor reports whether the actor may submit or read data for the given
// hawker: admins may for anyone, hawkers only for themselves.
func (a Actor) CanActFor(hawkerID string) bool {
	return a.IsAdmin() || a.UserID == hawkerID
}
