package domain

import "time"

const (
	RoleBarista = "barista"
	RoleManager = "manager"
)

const (
	PermGetDrinksDetail = "get:drinks-detail"
	PermPostDrinks      = "post:drinks"
	PermPatchDrinks     = "patch:drinks"
	PermDeleteDrinks    = "delete:drinks"
	PermPostMenu        = "post:menu"
)

var rolePermissions = map[string][]string{
	RoleBarista: {PermGetDrinksDetail},
	RoleManager: {PermGetDrinksDetail, PermPostDrinks, PermPatchDrinks, PermDeleteDrinks, PermPostMenu},
}

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Permissions returns the coffee shop permissions granted to the user's role.
func (u User) Permissions() []string {
	return PermissionsForRole(u.Role)
}

func PermissionsForRole(role string) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)

	return out
}

func IsValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
