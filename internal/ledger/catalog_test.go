package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRoutesOrderedByID(t *testing.T) {
	c := DefaultCatalog()

	routes := c.Routes()
	require.NotEmpty(t, routes)
	for i := 1; i < len(routes); i++ {
		assert.Less(t, routes[i-1].ID, routes[i].ID)
	}
	for _, r := range routes {
		assert.Equal(t, r.Capacity, r.Seats, "fresh catalog starts at full capacity")
	}
}

func TestCatalogRouteByName(t *testing.T) {
	c := DefaultCatalog()

	r, err := c.RouteByName("Boac to Mogpog")
	require.NoError(t, err)
	assert.Equal(t, uint(1), r.ID)
	assert.Equal(t, "7:00 AM", r.Schedule)

	_, err = c.RouteByName("Nonexistent Route")
	assert.ErrorIs(t, err, ErrNotFound)

	// Match is exact, not case-folded.
	_, err = c.RouteByName("boac to mogpog")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRouteByID(t *testing.T) {
	c := DefaultCatalog()

	r, err := c.Route(2)
	require.NoError(t, err)
	assert.Equal(t, "Mogpog to Santa Cruz", r.Name)

	_, err = c.Route(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogSetSeats(t *testing.T) {
	tests := []struct {
		name    string
		id      uint
		seats   int
		wantErr error
	}{
		{name: "replace exactly", id: 1, seats: 3},
		{name: "zero is allowed", id: 1, seats: 0},
		{name: "full capacity", id: 1, seats: 15},
		{name: "negative rejected", id: 1, seats: -1, wantErr: ErrInvalidArgument},
		{name: "above capacity rejected", id: 1, seats: 16, wantErr: ErrInvalidArgument},
		{name: "unknown route", id: 99, seats: 5, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCatalog()
			err := c.SetSeats(tt.id, tt.seats)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				r, _ := c.Route(1)
				assert.Equal(t, 15, r.Seats, "failed override must not touch the counter")
				return
			}
			require.NoError(t, err)
			r, err := c.Route(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.seats, r.Seats)
		})
	}
}

func TestCatalogReserveSeatNeverGoesNegative(t *testing.T) {
	c := DefaultCatalog()

	for i := 0; i < 15; i++ {
		require.NoError(t, c.ReserveSeat(1))
	}
	r, _ := c.Route(1)
	assert.Equal(t, 0, r.Seats)

	err := c.ReserveSeat(1)
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	r, _ = c.Route(1)
	assert.Equal(t, 0, r.Seats, "exhausted counter stays at zero")

	assert.ErrorIs(t, c.ReserveSeat(99), ErrNotFound)
}

func TestCatalogRestoreSeatCappedAtCapacity(t *testing.T) {
	c := DefaultCatalog()

	require.NoError(t, c.ReserveSeat(1))
	c.restoreSeat(1)
	r, _ := c.Route(1)
	assert.Equal(t, 15, r.Seats)

	// Restoring a seat that was never taken must not break the cap.
	c.restoreSeat(1)
	r, _ = c.Route(1)
	assert.Equal(t, 15, r.Seats)
}
