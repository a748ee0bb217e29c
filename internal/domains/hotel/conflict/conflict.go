// Package conflict detects double-booked rooms. Date ranges are half-open
// [start, end): a checkout and a check-in on the same day do not overlap.
package conflict

import "reziro/internal/domains/hotel/model"

// Overlaps compares ISO dates lexically, which orders YYYY-MM-DD correctly.
func Overlaps(startA, endA, startB, endB string) bool {
	return startA < endB && endA > startB
}

// HasConflict reports whether any booking of roomID other than excludeID
// overlaps [startDate, endDate).
func HasConflict(bookings []model.Booking, roomID, startDate, endDate, excludeID string) bool {
	for _, booking := range bookings {
		if clashes(booking, roomID, startDate, endDate, excludeID) {
			return true
		}
	}

	return false
}

// Conflicts returns the bookings that make HasConflict true, for highlighting.
func Conflicts(bookings []model.Booking, roomID, startDate, endDate, excludeID string) []model.Booking {
	found := []model.Booking{}

	for _, booking := range bookings {
		if clashes(booking, roomID, startDate, endDate, excludeID) {
			found = append(found, booking)
		}
	}

	return found
}

func clashes(booking model.Booking, roomID, startDate, endDate, excludeID string) bool {
	if booking.RoomID != roomID {
		return false
	}

	if excludeID != "" && booking.ID == excludeID {
		return false
	}

	return Overlaps(startDate, endDate, booking.StartDate, booking.EndDate)
}
