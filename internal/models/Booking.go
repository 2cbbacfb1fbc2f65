package models

// Booking links an account to a route seat reserved at a point in time.
// RouteName and Schedule are captured when the booking is made, not
// re-derived from the catalog later. Bookings are immutable; there is
// no cancellation.
type Booking struct {
	RouteID   uint   `json:"route_id"`
	RouteName string `json:"route_name"`
	Schedule  string `json:"schedule"`
	Date      string `json:"date"`
}
