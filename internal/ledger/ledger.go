package ledger

import (
	"sync"

	"transconnect/internal/models"
)

// Ledger owns the route catalog and account registry and is the one
// handle the presentation layer calls into. A single mutex serializes
// every operation: the catalog is small and fixed, and seat reservation
// plus booking append must be atomic, so one lock is enough.
type Ledger struct {
	mu       sync.Mutex
	catalog  *Catalog
	registry *Registry
}

func New(catalog *Catalog, registry *Registry) *Ledger {
	return &Ledger{catalog: catalog, registry: registry}
}

// BookSeat reserves one seat on the route with the given display name
// and records the booking on the account. The seat decrement and the
// booking append either both happen or neither does: if the account
// lookup fails after the seat was taken, the seat is restored.
func (l *Ledger) BookSeat(accountID, routeName, today string) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	route, err := l.catalog.RouteByName(routeName)
	if err != nil {
		return models.Booking{}, err
	}
	if err := l.catalog.ReserveSeat(route.ID); err != nil {
		return models.Booking{}, err
	}
	booking := models.Booking{
		RouteID:   route.ID,
		RouteName: route.Name,
		Schedule:  route.Schedule,
		Date:      today,
	}
	if err := l.registry.appendBooking(accountID, booking); err != nil {
		l.catalog.restoreSeat(route.ID)
		return models.Booking{}, err
	}
	return booking, nil
}

// MyBookings returns the account's bookings in insertion order.
func (l *Ledger) MyBookings(accountID string) ([]models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, err := l.registry.Account(accountID)
	if err != nil {
		return nil, err
	}
	return acct.Bookings, nil
}

// AllBookings maps every rider account to its bookings, for
// administrative oversight. Authorization is the caller's concern; the
// admin route group enforces it before this is reached.
func (l *Ledger) AllBookings() map[string][]models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string][]models.Booking)
	for _, acct := range l.registry.Riders() {
		out[acct.Email] = acct.Bookings
	}
	return out
}

// Routes returns the catalog snapshot ordered by route ID.
func (l *Ledger) Routes() []models.Route {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Routes()
}

// Route returns one route by ID.
func (l *Ledger) Route(id uint) (models.Route, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Route(id)
}

// SetSeats is the administrative seat-counter override.
func (l *Ledger) SetSeats(id uint, seats int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.SetSeats(id, seats)
}

// Register creates a rider account.
func (l *Ledger) Register(name, email, password string) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Register(name, email, password)
}

// Authenticate checks credentials and returns the account.
func (l *Ledger) Authenticate(email, password string) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Authenticate(email, password)
}

// IsAdmin reports whether the account holds the admin role.
func (l *Ledger) IsAdmin(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.IsAdmin(email)
}

// Riders lists every non-admin account in registration order.
func (l *Ledger) Riders() []models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Riders()
}
