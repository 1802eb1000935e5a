package auth

import "fmt"

// Role is a closed enumeration. Route allow-lists are built from these
// constants, so a misspelled role is a compile error rather than a route
// nobody can reach.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleRecruiter:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Identity is the authenticated subject carried on a request after the
// session token has been verified.
type Identity struct {
	UserID uint
	Role   Role
}
