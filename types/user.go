package types

import "time"

// User represents a registered job seeker.
type User struct {
	// ID is the surrogate key of the user row.
	ID int `json:"id" db:"id"`

	// Name is the user's display name.
	Name string `json:"name" db:"name"`

	// UserID is the unique login identifier chosen at signup.
	UserID string `json:"userid" db:"userid"`

	// PasswordHash stores the hashed password. It is either a bcrypt hash
	// or, for rows created before bcrypt was adopted, a hex SHA-256 digest.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password"`

	// Phone is the phone number given at signup. It is part of the
	// credentials checked at login.
	Phone string `json:"phone" db:"phone"`

	// JobRole is the role the user is interested in, if any.
	JobRole *string `json:"job_role,omitempty" db:"job_role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
