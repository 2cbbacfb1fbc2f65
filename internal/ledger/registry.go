package ledger

import (
	"fmt"

	"transconnect/internal/models"
)

// Registry holds every registered account keyed by email. Accounts are
// never deleted and only mutate by appending bookings. Like Catalog,
// it relies on the owning Ledger for locking.
type Registry struct {
	accounts map[string]*models.Account
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*models.Account)}
}

// Register creates a rider account with an empty booking history.
func (r *Registry) Register(name, email, password string) (models.Account, error) {
	if name == "" || email == "" || password == "" {
		return models.Account{}, fmt.Errorf("name, email and password are required: %w", ErrInvalidArgument)
	}
	if _, ok := r.accounts[email]; ok {
		return models.Account{}, fmt.Errorf("account %q: %w", email, ErrAlreadyExists)
	}
	acct := &models.Account{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleRider,
	}
	r.accounts[email] = acct
	r.order = append(r.order, email)
	return snapshot(acct), nil
}

// SeedAdmin installs the administrator account configured at startup.
// There is no runtime path that promotes a rider to admin.
func (r *Registry) SeedAdmin(name, email, password string) {
	if _, ok := r.accounts[email]; ok {
		return
	}
	r.accounts[email] = &models.Account{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleAdmin,
	}
	r.order = append(r.order, email)
}

// Authenticate checks credentials by exact match and returns the
// account's identity and role. It has no side effects; holding the
// authenticated identity across calls is the caller's job.
func (r *Registry) Authenticate(email, password string) (models.Account, error) {
	acct, ok := r.accounts[email]
	if !ok {
		return models.Account{}, fmt.Errorf("account %q: %w", email, ErrNotFound)
	}
	if acct.Password != password {
		return models.Account{}, fmt.Errorf("account %q: %w", email, ErrInvalidCredential)
	}
	return snapshot(acct), nil
}

// IsAdmin reports the role flag; unknown accounts are not admins.
func (r *Registry) IsAdmin(email string) bool {
	acct, ok := r.accounts[email]
	return ok && acct.Role == models.RoleAdmin
}

// Account returns a copy of the account with the given email.
func (r *Registry) Account(email string) (models.Account, error) {
	acct, ok := r.accounts[email]
	if !ok {
		return models.Account{}, fmt.Errorf("account %q: %w", email, ErrNotFound)
	}
	return snapshot(acct), nil
}

// Riders returns every non-admin account in registration order.
func (r *Registry) Riders() []models.Account {
	var out []models.Account
	for _, email := range r.order {
		if acct := r.accounts[email]; acct.Role != models.RoleAdmin {
			out = append(out, snapshot(acct))
		}
	}
	return out
}

func (r *Registry) appendBooking(email string, b models.Booking) error {
	acct, ok := r.accounts[email]
	if !ok {
		return fmt.Errorf("account %q: %w", email, ErrNotFound)
	}
	acct.Bookings = append(acct.Bookings, b)
	return nil
}

// snapshot copies an account so callers cannot reach the registry's
// mutable booking slice.
func snapshot(acct *models.Account) models.Account {
	out := *acct
	out.Bookings = append([]models.Booking(nil), acct.Bookings...)
	return out
}
