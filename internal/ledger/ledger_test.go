package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	registry := NewRegistry()
	registry.SeedAdmin("Dispatcher", "admin@x.com", "adminpw")
	return New(DefaultCatalog(), registry)
}

func TestBookSeatHappyPath(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Register("Ana", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = l.Authenticate("a@x.com", "pw")
	require.NoError(t, err)

	booking, err := l.BookSeat("a@x.com", "Boac to Mogpog", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, uint(1), booking.RouteID)
	assert.Equal(t, "Boac to Mogpog", booking.RouteName)
	assert.Equal(t, "7:00 AM", booking.Schedule)
	assert.Equal(t, "2024-01-01", booking.Date)

	r, err := l.Route(1)
	require.NoError(t, err)
	assert.Equal(t, 14, r.Seats)

	mine, err := l.MyBookings("a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, booking, mine[0])
}

func TestBookSeatExhaustsCapacity(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Register("Ana", "a@x.com", "pw")
	require.NoError(t, err)

	for i := 0; i < 15; i++ {
		_, err := l.BookSeat("a@x.com", "Boac to Mogpog", "2024-01-01")
		require.NoError(t, err, "booking %d of 15", i+1)
	}

	_, err = l.BookSeat("a@x.com", "Boac to Mogpog", "2024-01-01")
	assert.ErrorIs(t, err, ErrSeatsUnavailable)

	r, _ := l.Route(1)
	assert.Equal(t, 0, r.Seats)
	mine, err := l.MyBookings("a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 15, "the failed 16th attempt must not record a booking")
}

func TestBookSeatUnknownRoute(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Register("Ana", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = l.BookSeat("a@x.com", "Nonexistent Route", "2024-01-01")
	assert.ErrorIs(t, err, ErrNotFound)

	mine, err := l.MyBookings("a@x.com")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestBookSeatUnknownAccountRollsSeatBack(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.BookSeat("ghost@x.com", "Boac to Mogpog", "2024-01-01")
	assert.ErrorIs(t, err, ErrNotFound)

	r, _ := l.Route(1)
	assert.Equal(t, 15, r.Seats, "failed booking must return the reserved seat")
}

func TestBookSeatZeroSeatsLeavesAccountUnchanged(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Register("Ana", "a@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, l.SetSeats(1, 0))

	_, err = l.BookSeat("a@x.com", "Boac to Mogpog", "2024-01-01")
	assert.ErrorIs(t, err, ErrSeatsUnavailable)

	mine, err := l.MyBookings("a@x.com")
	require.NoError(t, err)
	assert.Empty(t, mine)
	r, _ := l.Route(1)
	assert.Equal(t, 0, r.Seats)
}

func TestAllBookingsGroupsRidersOnly(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Register("Ana", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = l.Register("Ben", "b@x.com", "pw")
	require.NoError(t, err)

	_, err = l.BookSeat("a@x.com", "Boac to Mogpog", "2024-01-01")
	require.NoError(t, err)
	_, err = l.BookSeat("a@x.com", "Mogpog to Santa Cruz", "2024-01-02")
	require.NoError(t, err)

	all := l.AllBookings()
	require.Len(t, all, 2)
	assert.Len(t, all["a@x.com"], 2)
	assert.Empty(t, all["b@x.com"])
	assert.NotContains(t, all, "admin@x.com")
}

func TestMyBookingsUnknownAccount(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.MyBookings("ghost@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Concurrent callers hammering one 15-seat route must end with exactly
// 15 confirmed bookings and a counter at zero.
func TestBookSeatConcurrentCallers(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Register("Ana", "a@x.com", "pw")
	require.NoError(t, err)

	const attempts = 40
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.BookSeat("a@x.com", "Boac to Mogpog", "2024-01-01")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, unavailable int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, ErrSeatsUnavailable)
			unavailable++
		}
	}
	assert.Equal(t, 15, ok)
	assert.Equal(t, attempts-15, unavailable)

	r, _ := l.Route(1)
	assert.Equal(t, 0, r.Seats)
	mine, err := l.MyBookings("a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 15)
}
