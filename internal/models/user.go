package models

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// IsValid reports whether the role is one of the two supported roles.
func (r UserRole) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is a full account record as persisted in the users collection.
// Passwords are stored as-is; credential hashing is out of scope for this
// store layout.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password,omitempty" validate:"required"`
	Role     UserRole `json:"role"`
}

// SessionUser is the redacted user view kept as the current session and
// handed back to callers. It never carries the password.
type SessionUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// Redacted returns the session/display view of the user.
func (u *User) Redacted() *SessionUser {
	return &SessionUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
