package entities

type Role string

const (
	RoleShipper Role = "shipper"
	RoleCarrier Role = "carrier"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
