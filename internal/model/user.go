package model

// Role tags a user account with its capability set.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RolePassenger Role = "PASSENGER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePassenger:
		return true
	}
	return false
}

// User is a stored account. Passwords are kept in clear text, matching the
// persisted format. Login is the join key the ticket ledger filters on.
type User struct {
	ID       int
	Login    string
	Password string
	Role     Role
}
