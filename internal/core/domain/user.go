package domain

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// RolePrefix is prepended to the raw stored role exactly once, at token-claim
// extraction. Stored roles and request payloads always carry the raw form.
const RolePrefix = "ROLE_"

// KnownRole reports whether role belongs to the closed role set.
func KnownRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User is an identity record. Email doubles as the login identifier and is
// unique across users. Password holds only the bcrypt hash and never travels
// in JSON. AccountIDs is a back-reference to owned accounts; it is replaced
// wholesale on update, never merged.
type User struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Password   string  `json:"-"`
	Role       string  `json:"role"`
	AccountIDs []int64 `json:"-"`
}
