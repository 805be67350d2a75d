package availability

import "devalaya/models"

// Candidate is the variation being purchased, fixed for the duration of one
// availability computation.
type Candidate struct {
	ServiceID string
	StartTime string // "HH:MM" or "HH:MM:SS"; may be empty for FULL_DAY
	EndTime   string
	PriceType string // models.PriceTypeFullDay or a timed category
}

// CandidateFromVariation builds a Candidate from a catalogue variation.
func CandidateFromVariation(v models.ServiceVariation) Candidate {
	return Candidate{
		ServiceID: v.ServiceID,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		PriceType: v.PriceType,
	}
}

// Blocks decides whether one existing booking conflicts with the candidate
// on the booking's calendar date.
//
// The policy, in order:
//  1. Anything other than an active "B" booking is inert.
//  2. A full-day pricing type on either side occupies the entire date, so
//     the two always conflict. Checked before any numeric comparison since
//     full-day records may legitimately carry null time fields.
//  3. If any of the four times is unknown, no overlap can be proven: fail
//     open.
//  4. Otherwise strict half-open interval overlap: [start, end) ranges
//     conflict iff existingStart < candidateEnd && candidateStart <
//     existingEnd. Back-to-back bookings sharing an endpoint do not
//     conflict.
func Blocks(existing models.Booking, cand Candidate) bool {
	if existing.Status != models.BookingStatusBooked {
		return false
	}

	if existing.VariationData.PriceType == models.PriceTypeFullDay ||
		cand.PriceType == models.PriceTypeFullDay {
		return true
	}

	existingStart, ok1 := ClockMinutes(existing.StartTime)
	existingEnd, ok2 := ClockMinutes(existing.EndTime)
	candStart, ok3 := ClockMinutes(cand.StartTime)
	candEnd, ok4 := ClockMinutes(cand.EndTime)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}

	return existingStart < candEnd && candStart < existingEnd
}
