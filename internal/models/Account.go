package models

// Account roles.
const (
	RoleRider = "rider"
	RoleAdmin = "admin"
)

// Account represents one registered rider or an administrator.
// Email is the primary key (case-sensitive); email and role never change
// after registration. Bookings is append-only, in insertion order.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`

	Bookings []Booking `json:"bookings"`
}
