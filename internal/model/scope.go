package model

import "laptopxplorer/pkg/scope"

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID string
	Email  string
	Role   string
}

// Roles granted by the account provider.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// NewScope builds a Scope from a verified token payload.
func NewScope(p scope.Payload) Scope {
	return Scope{UserID: p.UserID, Email: p.Email, Role: p.Role}
}

// IsAdmin reports whether the caller may manage catalog data.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
