package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Known user roles.
const (
	RoleAdmin  = "admin"
	RoleChef   = "chef"
	RoleWaiter = "waiter"
)

// Role carries a user's role in its canonical object form. Admin is always
// derived from Role; it is never taken from input.
type Role struct {
	Role  string `bson:"role" json:"role"`
	Admin bool   `bson:"admin" json:"admin"`
}

// NewRole builds a Role with the Admin flag derived from the role name.
func NewRole(role string) Role {
	return Role{Role: role, Admin: role == RoleAdmin}
}

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleChef, RoleWaiter:
		return true
	}
	return false
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     Role               `bson:"role" json:"role"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

// CreateUserRequest is the body of POST /users. Role defaults to waiter.
type CreateUserRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
}

// UpdateUserRequest is the body of PATCH /users/:uid. Absent fields are left
// untouched; a role change requires admin privilege.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// IsEmpty reports whether the patch contains nothing to apply.
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil && r.Password == nil && r.Role == nil
}
