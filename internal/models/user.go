package models

// User & roles
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleSales   Role = "sales"
	RoleManager Role = "manager"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSales, RoleManager:
		return true
	}
	return false
}

// User account. Password is an opaque comparison string; this is a prototype
// auth scheme and intentionally carries no hashing contract. Active gates
// login eligibility.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	FullName string `json:"fullName"`
	Active   bool   `json:"active"`
}
