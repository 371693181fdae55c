package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	jan1, jan4, jan5, jan10 := date(2025, 1, 1), date(2025, 1, 4), date(2025, 1, 5), date(2025, 1, 10)

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		assert.False(t, Overlaps(jan1, jan5, jan5, jan10))
		assert.False(t, Overlaps(jan5, jan10, jan1, jan5))
	})

	t.Run("partial overlap", func(t *testing.T) {
		assert.True(t, Overlaps(jan1, jan5, jan4, jan10))
		assert.True(t, Overlaps(jan4, jan10, jan1, jan5))
	})

	t.Run("containment", func(t *testing.T) {
		assert.True(t, Overlaps(jan1, jan10, jan4, jan5))
		assert.True(t, Overlaps(jan4, jan5, jan1, jan10))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.False(t, Overlaps(jan1, jan4, jan5, jan10))
	})
}

func TestResolveToolStatus(t *testing.T) {
	t.Run("no associations", func(t *testing.T) {
		assert.Equal(t, ToolStatusAvailable, ResolveToolStatus(nil, nil))
	})

	t.Run("in-progress maintenance wins over everything", func(t *testing.T) {
		maints := []Maintenance{{Status: MaintenanceStatusInProgress}}
		bookings := []Booking{{Status: BookingStatusActive}, {Status: BookingStatusPending}}
		assert.Equal(t, ToolStatusInMaintenance, ResolveToolStatus(maints, bookings))
	})

	t.Run("active booking beats pending and scheduled maintenance", func(t *testing.T) {
		maints := []Maintenance{{Status: MaintenanceStatusScheduled}}
		bookings := []Booking{{Status: BookingStatusPending}, {Status: BookingStatusActive}}
		assert.Equal(t, ToolStatusInUse, ResolveToolStatus(maints, bookings))
	})

	t.Run("pending or approved booking yields booked", func(t *testing.T) {
		assert.Equal(t, ToolStatusBooked, ResolveToolStatus(nil, []Booking{{Status: BookingStatusPending}}))
		assert.Equal(t, ToolStatusBooked, ResolveToolStatus(nil, []Booking{{Status: BookingStatusApproved}}))
	})

	t.Run("scheduled maintenance only", func(t *testing.T) {
		maints := []Maintenance{{Status: MaintenanceStatusScheduled}}
		assert.Equal(t, ToolStatusInMaintenance, ResolveToolStatus(maints, nil))
	})

	t.Run("terminal records do not count", func(t *testing.T) {
		maints := []Maintenance{{Status: MaintenanceStatusCompleted}}
		bookings := []Booking{
			{Status: BookingStatusCompleted},
			{Status: BookingStatusCancelled},
			{Status: BookingStatusRejected},
		}
		assert.Equal(t, ToolStatusAvailable, ResolveToolStatus(maints, bookings))
	})

	t.Run("dates are not consulted", func(t *testing.T) {
		// A booking six months out still reports the tool as booked today.
		farFuture := []Booking{{
			Status:    BookingStatusPending,
			StartDate: time.Now().AddDate(0, 6, 0),
			EndDate:   time.Now().AddDate(0, 6, 7),
		}}
		assert.Equal(t, ToolStatusBooked, ResolveToolStatus(nil, farFuture))
	})
}

func TestFindBookingConflict(t *testing.T) {
	mar1, mar5, mar8, mar10, mar15 := date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 8), date(2025, 3, 10), date(2025, 3, 15)
	existing := []Booking{{ID: 7, Status: BookingStatusApproved, StartDate: mar1, EndDate: mar10}}

	t.Run("overlapping request conflicts", func(t *testing.T) {
		got := FindBookingConflict(existing, mar5, mar8)
		if assert.NotNil(t, got) {
			assert.Equal(t, int32(7), got.ID)
		}
	})

	t.Run("back-to-back request is accepted", func(t *testing.T) {
		assert.Nil(t, FindBookingConflict(existing, mar10, mar15))
	})

	t.Run("terminal bookings never conflict", func(t *testing.T) {
		for _, st := range []BookingStatus{BookingStatusCancelled, BookingStatusRejected, BookingStatusCompleted} {
			terminal := []Booking{{Status: st, StartDate: mar1, EndDate: mar10}}
			assert.Nil(t, FindBookingConflict(terminal, mar5, mar8), "status %s", st)
		}
	})

	t.Run("pending and active conflict too", func(t *testing.T) {
		for _, st := range []BookingStatus{BookingStatusPending, BookingStatusActive} {
			nonTerminal := []Booking{{Status: st, StartDate: mar1, EndDate: mar10}}
			assert.NotNil(t, FindBookingConflict(nonTerminal, mar5, mar8), "status %s", st)
		}
	})
}

func TestFindMaintenanceConflict(t *testing.T) {
	apr1, apr2, apr3, apr4 := date(2025, 4, 1), date(2025, 4, 2), date(2025, 4, 3), date(2025, 4, 4)

	t.Run("scheduled window conflicts", func(t *testing.T) {
		maints := []Maintenance{{ID: 3, Status: MaintenanceStatusScheduled, StartDate: apr1, EndDate: &apr3}}
		got := FindMaintenanceConflict(maints, apr2, apr4)
		if assert.NotNil(t, got) {
			assert.Equal(t, int32(3), got.ID)
		}
	})

	t.Run("completed maintenance never conflicts", func(t *testing.T) {
		maints := []Maintenance{{Status: MaintenanceStatusCompleted, StartDate: apr1, EndDate: &apr3}}
		assert.Nil(t, FindMaintenanceConflict(maints, apr2, apr4))
	})

	t.Run("open-ended window collapses to its start", func(t *testing.T) {
		maints := []Maintenance{{Status: MaintenanceStatusRequested, StartDate: apr2}}
		// Straddling the start instant conflicts; starting at it does not.
		assert.NotNil(t, FindMaintenanceConflict(maints, apr1, apr3))
		assert.Nil(t, FindMaintenanceConflict(maints, apr2, apr4))
	})
}

func TestFindCheckoutConflict(t *testing.T) {
	now := time.Now()

	t.Run("approved booking covering now conflicts", func(t *testing.T) {
		bookings := []Booking{{Status: BookingStatusApproved, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}}
		b, m := FindCheckoutConflict(bookings, nil, now)
		assert.NotNil(t, b)
		assert.Nil(t, m)
	})

	t.Run("pending booking is ignored by the checkout probe", func(t *testing.T) {
		bookings := []Booking{{Status: BookingStatusPending, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}}
		b, m := FindCheckoutConflict(bookings, nil, now)
		assert.Nil(t, b)
		assert.Nil(t, m)
	})

	t.Run("in-progress maintenance conflicts", func(t *testing.T) {
		end := now.Add(2 * time.Hour)
		maints := []Maintenance{{Status: MaintenanceStatusInProgress, StartDate: now.Add(-time.Hour), EndDate: &end}}
		b, m := FindCheckoutConflict(nil, maints, now)
		assert.Nil(t, b)
		assert.NotNil(t, m)
	})

	t.Run("just-barely-future window is caught", func(t *testing.T) {
		bookings := []Booking{{Status: BookingStatusActive, StartDate: now.Add(30 * time.Second), EndDate: now.Add(time.Hour)}}
		b, _ := FindCheckoutConflict(bookings, nil, now)
		assert.NotNil(t, b)
	})

	t.Run("clear tool", func(t *testing.T) {
		b, m := FindCheckoutConflict(nil, nil, now)
		assert.Nil(t, b)
		assert.Nil(t, m)
	})
}

func TestActiveBooking(t *testing.T) {
	bookings := []Booking{
		{ID: 1, Status: BookingStatusCompleted},
		{ID: 2, Status: BookingStatusActive},
	}
	got := ActiveBooking(bookings)
	if assert.NotNil(t, got) {
		assert.Equal(t, int32(2), got.ID)
	}
	assert.Nil(t, ActiveBooking(bookings[:1]))
}
