package models

// Contact is a single address-book record owned by exactly one user.
// Ownership is carried by Username and enforced in every query that touches
// the record; there is no separate authorization layer.
type Contact struct {
	// ID is the server-assigned surrogate identifier.
	ID int64 `json:"id"`

	// Username is the owner of the record, a foreign key to users.username.
	// Never taken from client input; always set from the authenticated user.
	Username string `json:"-"`

	// FirstName is the only required contact attribute.
	FirstName string `json:"first_name"`

	// LastName, Email and Phone are optional; nil maps to SQL NULL.
	LastName *string `json:"last_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
