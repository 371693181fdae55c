package domain

import "time"

// CheckoutWindow bounds the instant-checkout conflict probe: a direct
// checkout checks [now, now+CheckoutWindow) instead of a full interval.
const CheckoutWindow = time.Minute

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count: a booking
// ending exactly when another starts is allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ResolveToolStatus derives a tool's status from its associated records.
// The priority order is policy, first match wins:
//
//  1. a maintenance is in progress      -> in_maintenance
//  2. a booking is active               -> in_use
//  3. a booking is approved or pending  -> booked
//  4. a maintenance is scheduled        -> in_maintenance
//  5. otherwise                         -> available
//
// Dates are deliberately not consulted: a tool with a far-future pending
// booking reports as booked today.
func ResolveToolStatus(maintenances []Maintenance, bookings []Booking) ToolStatus {
	for i := range maintenances {
		if maintenances[i].Status == MaintenanceStatusInProgress {
			return ToolStatusInMaintenance
		}
	}
	for i := range bookings {
		if bookings[i].Status == BookingStatusActive {
			return ToolStatusInUse
		}
	}
	for i := range bookings {
		if bookings[i].Status == BookingStatusApproved || bookings[i].Status == BookingStatusPending {
			return ToolStatusBooked
		}
	}
	for i := range maintenances {
		if maintenances[i].Status == MaintenanceStatusScheduled {
			return ToolStatusInMaintenance
		}
	}
	return ToolStatusAvailable
}

// ActiveBooking returns the tool's currently active booking, if any.
func ActiveBooking(bookings []Booking) *Booking {
	for i := range bookings {
		if bookings[i].Status == BookingStatusActive {
			return &bookings[i]
		}
	}
	return nil
}

// FindBookingConflict returns the first non-terminal booking whose interval
// overlaps [start, end). Rejected, completed and cancelled bookings never
// conflict.
func FindBookingConflict(bookings []Booking, start, end time.Time) *Booking {
	for i := range bookings {
		b := &bookings[i]
		if b.Status.Terminal() {
			continue
		}
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			return b
		}
	}
	return nil
}

// FindMaintenanceConflict returns the first non-completed maintenance whose
// window overlaps [start, end).
func FindMaintenanceConflict(maintenances []Maintenance, start, end time.Time) *Maintenance {
	for i := range maintenances {
		m := &maintenances[i]
		if m.Status == MaintenanceStatusCompleted {
			continue
		}
		ws, we := m.Window()
		if Overlaps(start, end, ws, we) {
			return m
		}
	}
	return nil
}

// FindCheckoutConflict is the time-of-call variant of the overlap check used
// by direct checkout when no booking record covers the request. It probes
// [now, now+CheckoutWindow) against approved/active bookings and
// scheduled/in-progress maintenances only.
func FindCheckoutConflict(bookings []Booking, maintenances []Maintenance, now time.Time) (*Booking, *Maintenance) {
	end := now.Add(CheckoutWindow)
	for i := range bookings {
		b := &bookings[i]
		if b.Status != BookingStatusApproved && b.Status != BookingStatusActive {
			continue
		}
		if Overlaps(now, end, b.StartDate, b.EndDate) {
			return b, nil
		}
	}
	for i := range maintenances {
		m := &maintenances[i]
		if m.Status != MaintenanceStatusScheduled && m.Status != MaintenanceStatusInProgress {
			continue
		}
		ws, we := m.Window()
		if Overlaps(now, end, ws, we) {
			return nil, m
		}
	}
	return nil, nil
}
