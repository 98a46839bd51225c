package models

// UserResponse is the public projection of a User. It strips the password
// hash before the entity crosses the HTTP boundary. Token is present only in
// the login response.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ToUserResponse converts a persisted User into its public projection.
// The token is intentionally NOT copied; login attaches it explicitly.
func ToUserResponse(user User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

// ContactResponse is the public projection of a Contact. The owning username
// is internal and never serialized.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// ToContactResponse converts a persisted Contact into its public projection.
func ToContactResponse(contact Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
