package booking

import (
	"time"

	"jybooking/internal/domain"
)

// FindConflict scans bookings in ascending creation order and returns
// the first non-cancelled booking on listingID whose [CheckIn, CheckOut)
// window strictly overlaps the candidate window, or nil. A booking whose
// id equals excludeID is skipped so an existing booking can re-check its
// own window. Equal boundaries do not overlap: check-in on another
// booking's check-out day (back-to-back turnover) is allowed.
//
// Linear scan is adequate for the expected per-listing volume; an index
// sorted by check-in would be the next step if that changes.
func FindConflict(bookings []domain.Booking, listingID string, checkIn, checkOut time.Time, excludeID string) *domain.Booking {
	for i := range bookings {
		b := &bookings[i]
		if b.ListingID != listingID || b.ID == excludeID {
			continue
		}
		if b.Status == domain.BookingCancelled {
			continue
		}
		if checkIn.Before(b.CheckOut) && checkOut.After(b.CheckIn) {
			return b
		}
	}
	return nil
}
