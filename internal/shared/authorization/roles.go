// Package authorization defines the user roles and the minimum-role total
// order. Ownership and assignment rules are a separate dimension and live in
// internal/domain/access; nothing there consults this ranking.
package authorization

type Role string

const (
	RoleClient    Role = "client"
	RoleDeveloper Role = "developer"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RoleClient:    1,
	RoleDeveloper: 2,
	RoleAdmin:     3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsClient() bool {
	return r == RoleClient
}

func (r Role) IsDeveloper() bool {
	return r == RoleDeveloper
}

// AtLeast reports whether r ranks at or above required. Used only for
// minimum-role gates such as admin-only routes.
func (r Role) AtLeast(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
