package domain

import "strings"

// User represents an authenticated user as returned by the API.
type User struct {
	ID        string `json:"id"` // Primary Key (UUID)
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName joins the user's first and last name, tolerating either being empty.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
