package model

// Identity is the authenticated principal derived from a verified token.
// Role is fixed at token-issue time; a role edit only takes effect once the
// old token expires.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owns reports whether uid names this identity, by user id or by email.
func (i Identity) Owns(uid string) bool {
	return uid == i.UserID || uid == i.Email
}

// LoginRequest is the body of POST /auth.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
