package availability

import "devalaya/models"

// BlockedDates folds a service's booking list against one candidate
// variation and returns the per-date availability verdicts.
//
// The input list may be unfiltered and partially malformed:
//   - bookings for other services are ignored;
//   - bookings whose date fails to normalize are skipped;
//   - blocked verdicts union per date, so a blocked date is never unmarked
//     by a later non-blocking booking.
//
// Dates with no blocking booking are absent from the map (open). The result
// is deterministic and independent of input ordering. The computation is
// total: it never returns an error for malformed records, degrading to
// "fewer dates blocked" instead.
func BlockedDates(bookings []models.Booking, serviceID string, cand Candidate) models.AvailabilityMap {
	verdicts := make(models.AvailabilityMap)
	for _, b := range bookings {
		if b.ServiceRef() != serviceID {
			continue
		}
		isoDate, ok := ToISODate(b.BookingDate)
		if !ok {
			continue
		}
		if !Blocks(b, cand) {
			continue
		}
		verdicts[isoDate] = models.DateVerdict{Blocked: true}
	}
	return verdicts
}
