package models

// Request shapes for every mutating API operation. The `validate` tags are
// the single source of truth for field constraints and are checked by the
// validators package before any business logic runs.

// RegisterRequest carries the payload of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginRequest carries the payload of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// UpdateUserRequest carries the payload of PATCH /api/users/current.
// Both fields are optional; only supplied fields mutate the account.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=100"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Password == nil
}

// CreateContactRequest carries the payload of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=1,max=20"`
}

// UpdateContactRequest carries the payload of PUT /api/contacts/{id}.
// The ID is taken from the URL, not the body, and all mutable fields are
// replaced wholesale.
type UpdateContactRequest struct {
	ID        int64   `json:"-" validate:"required,gt=0"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=1,max=20"`
}
