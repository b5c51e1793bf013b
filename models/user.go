// Package models defines data structures used across the portal.
// File: models/user.go
package models

// ----------------------- role model -----------------------

// Role is the authorization role the backend assigns at login.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps a stored role string to a known Role.
// Unknown or empty values report ok=false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// ----------------------- user model -----------------------

// User is the profile record returned by the backend on login.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

// DisplayName prefers the first name and falls back to the email.
func (u *User) DisplayName() string {
	if u.Firstname != "" {
		return u.Firstname
	}
	return u.Email
}
