// Package models defines the data records exchanged with the booking
// service. Field names mirror the service's JSON contract; the client
// renders these values and never derives pricing or inventory locally.
package models

// Role classifies an account's capabilities.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the two roles the service issues.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the authenticated identity as returned by the service.
// Absence of a User means "logged out".
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	CreatedDate  string `json:"createdDate,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
