package identity

import "strings"

// User represents an application user record as exposed by the remote API
type User struct {
	ID             int    `json:"id"`
	Identification string `json:"identification"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password,omitempty"`
	IsActive       bool   `json:"isActive"`
}

// StatusLabel returns the human-readable active state
func (u User) StatusLabel() string {
	if u.IsActive {
		return "Active"
	}
	return "Inactive"
}

// Matches reports whether the user matches a case-insensitive search term.
// Search covers identification and name.
func (u User) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(u.Identification), term) ||
		strings.Contains(strings.ToLower(u.Name), term)
}

// UserForm is the payload for creating or updating a user
type UserForm struct {
	ID             int    `json:"id"`
	Identification string `json:"identification" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	IsActive       bool   `json:"isActive"`
}

// IsEditing reports whether the form targets an existing record
func (f UserForm) IsEditing() bool {
	return f.ID != 0
}

// Credentials is the login payload
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
