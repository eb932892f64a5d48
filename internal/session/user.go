package session

// Role is the coarse access tier of a user. Roles form a closed set so
// that a typo in a route's role list fails validation instead of silently
// locking everyone out.
type Role string

const (
	RoleManager     Role = "manager"
	RoleStoreKeeper Role = "store_keeper"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleStoreKeeper:
		return true
	}
	return false
}

// User is the identity record of an authenticated user. Avatar holds an
// inline base64 data URI when the user uploaded a profile picture.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Update carries the profile fields a user may change. Nil fields are
// left untouched.
type Update struct {
	Name   *string
	Email  *string
	Phone  *string
	Avatar *string
}
