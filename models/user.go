package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier, chosen at registration.
	// It is the primary key of the users table.
	Username string `json:"username"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST never hold plaintext after the service layer and is
	// excluded from JSON serialization.
	Password string `json:"-"`

	// Token is the opaque session token issued on login and cleared on
	// logout. Nil means the user is logged out. The token carries no
	// structure and is matched by plain equality.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
