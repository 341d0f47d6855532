package partner

import "strings"

// Customer represents a customer record as exposed by the remote API
type Customer struct {
	ID             int    `json:"id"`
	Identification string `json:"identification"`
	Name           string `json:"name"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	IsActive       bool   `json:"isActive"`
}

// FullName returns the customer's display name
func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.Name
	}
	return c.Name + " " + c.LastName
}

// StatusLabel returns the human-readable active state
func (c Customer) StatusLabel() string {
	if c.IsActive {
		return "Active"
	}
	return "Inactive"
}

// Matches reports whether the customer matches a case-insensitive search term.
// Search covers identification and name, the same fields the listing exposes.
func (c Customer) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Identification), term) ||
		strings.Contains(strings.ToLower(c.Name), term)
}

// CustomerForm is the payload for creating or updating a customer
type CustomerForm struct {
	ID             int    `json:"id"`
	Identification string `json:"identification" validate:"required"`
	Name           string `json:"name" validate:"required"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address"`
	IsActive       bool   `json:"isActive"`
}

// IsEditing reports whether the form targets an existing record
func (f CustomerForm) IsEditing() bool {
	return f.ID != 0
}
