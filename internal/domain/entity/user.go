package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin  = "admin"
	RoleHawker = "hawker"
)

// User is a system account: the business admin or a field vendor (hawker).
// Usernames are unique across the system; uniqueness is enforced at creation.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never the raw secret
	Role         string // admin, hawker
	DisplayName  string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsHawker reports whether the user holds the hawker role.
func (u *User) IsHawker() bool { return u.Role == RoleHawker }
