package ledger

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"transconnect/internal/models"
)

// Catalog is the fixed route table. Routes are defined once at
// construction; only seat counters mutate afterwards, and booking goes
// through ReserveSeat so the counter can never leave [0, capacity].
//
// Catalog does no locking of its own: the owning Ledger serializes all
// mutation (see Ledger).
type Catalog struct {
	routes []*models.Route
	byID   map[uint]*models.Route
}

// NewCatalog builds a catalog from route definitions ordered by ID.
// Each route's capacity is fixed to its initial seat count.
func NewCatalog(routes []models.Route) *Catalog {
	c := &Catalog{byID: make(map[uint]*models.Route, len(routes))}
	for i := range routes {
		r := routes[i]
		r.Capacity = r.Seats
		c.routes = append(c.routes, &r)
		c.byID[r.ID] = &r
	}
	return c
}

// DefaultCatalog seeds the Marinduque minibus segments served at launch.
func DefaultCatalog() *Catalog {
	return NewCatalog([]models.Route{
		{
			ID:          1,
			Name:        "Boac to Mogpog",
			Schedule:    "7:00 AM",
			Origin:      point(121.8354, 13.4462),
			Destination: point(121.8636, 13.4871),
			Seats:       15,
		},
		{
			ID:          2,
			Name:        "Mogpog to Santa Cruz",
			Schedule:    "9:00 AM",
			Origin:      point(121.8636, 13.4871),
			Destination: point(122.0087, 13.4276),
			Seats:       15,
		},
		{
			ID:          3,
			Name:        "Boac to Gasan",
			Schedule:    "11:00 AM",
			Origin:      point(121.8354, 13.4462),
			Destination: point(121.8469, 13.3209),
			Seats:       15,
		},
		{
			ID:          4,
			Name:        "Santa Cruz to Torrijos",
			Schedule:    "1:00 PM",
			Origin:      point(122.0087, 13.4276),
			Destination: point(122.0855, 13.3220),
			Seats:       15,
		},
	})
}

func point(lng, lat float64) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{lng, lat})
}

// Routes returns a snapshot of the catalog ordered by route ID.
func (c *Catalog) Routes() []models.Route {
	out := make([]models.Route, 0, len(c.routes))
	for _, r := range c.routes {
		out = append(out, *r)
	}
	return out
}

// Route returns the route with the given ID.
func (c *Catalog) Route(id uint) (models.Route, error) {
	r, ok := c.byID[id]
	if !ok {
		return models.Route{}, fmt.Errorf("route %d: %w", id, ErrNotFound)
	}
	return *r, nil
}

// RouteByName resolves a route by exact display-name match. The
// presentation layer offers routes by name, so booking goes through
// this scan; everything else should prefer Route.
func (c *Catalog) RouteByName(name string) (models.Route, error) {
	for _, r := range c.routes {
		if r.Name == name {
			return *r, nil
		}
	}
	return models.Route{}, fmt.Errorf("route %q: %w", name, ErrNotFound)
}

// SetSeats replaces a route's seat counter exactly (not a delta). The
// counter invariant binds the override too: the new count must stay
// within [0, capacity].
func (c *Catalog) SetSeats(id uint, seats int) error {
	r, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("route %d: %w", id, ErrNotFound)
	}
	if seats < 0 {
		return fmt.Errorf("seat count %d is negative: %w", seats, ErrInvalidArgument)
	}
	if seats > r.Capacity {
		return fmt.Errorf("seat count %d exceeds capacity %d: %w", seats, r.Capacity, ErrInvalidArgument)
	}
	r.Seats = seats
	return nil
}

// ReserveSeat takes exactly one seat off a route. This is the single
// mutation point used by booking.
func (c *Catalog) ReserveSeat(id uint) error {
	r, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("route %d: %w", id, ErrNotFound)
	}
	if r.Seats <= 0 {
		return fmt.Errorf("route %q: %w", r.Name, ErrSeatsUnavailable)
	}
	r.Seats--
	return nil
}

// restoreSeat undoes a ReserveSeat when the booking it belonged to
// could not complete. Only the Ledger's rollback path uses it.
func (c *Catalog) restoreSeat(id uint) {
	if r, ok := c.byID[id]; ok && r.Seats < r.Capacity {
		r.Seats++
	}
}
