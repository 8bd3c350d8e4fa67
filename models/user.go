package models

import "time"

// User is a locker customer. Users never act on boxes themselves; an admin
// assigns and releases slots on their behalf while the server accrues the
// time they spent occupying slots.
type User struct {
	// UserID is the server-assigned identifier (uuid v7, text form).
	UserID string `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	// Password is the SHA-512 hex digest computed by the client. The server
	// compares it verbatim and never returns it.
	Password string `json:"-"`

	// TimeOfUse is the total time, in milliseconds, the user has occupied
	// slots. A nil value means the stored record is malformed.
	TimeOfUse *int64 `json:"timeOfUse"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// HasValidTimeOfUse reports whether the accumulated usage can be credited.
func (u User) HasValidTimeOfUse() bool {
	return u.TimeOfUse != nil && *u.TimeOfUse >= 0
}

// Credentials is the {email, password} pair sent by users and admins.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChange is the body of the password rotation endpoints.
type PasswordChange struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
