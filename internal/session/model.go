package session

import (
	"strconv"

	"thegriller/internal/remote"
)

// Roles a session can carry. The role is fixed at login time.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// User is the signed-in profile.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

func userFromRemote(u remote.AuthUser) User {
	out := User{
		ID:    strconv.Itoa(u.ID),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if u.Phone != nil {
		out.Phone = *u.Phone
	}
	return out
}
