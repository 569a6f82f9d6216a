package domain

import "time"

// Role is the access tier of a user. Tiers are mutually exclusive and
// ordered: admin > adherent > guest.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAdherent Role = "adherent"
	RoleGuest    Role = "guest"
)

// roleRank orders the tiers so that policy checks never rely on ad hoc
// string comparisons scattered across handlers.
var roleRank = map[Role]int{
	RoleGuest:    0,
	RoleAdherent: 1,
	RoleAdmin:    2,
}

// Valid reports whether the role is one of the three enumerated tiers.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether the role grants at least the access of other.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// User models an account on the association site.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	// CreatedBy holds the id of the admin that provisioned the account.
	// Empty for self-registered users.
	CreatedBy string `json:"created_by,omitempty"`
}
