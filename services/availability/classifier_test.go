package availability

import (
	"testing"

	"devalaya/models"
)

func booked(start, end, priceType string) models.Booking {
	return models.Booking{
		ServiceID:     "S1",
		BookingDate:   "05-JAN-2025",
		StartTime:     start,
		EndTime:       end,
		Status:        models.BookingStatusBooked,
		VariationData: models.VariationData{PriceType: priceType},
	}
}

func timedCandidate(start, end string) Candidate {
	return Candidate{ServiceID: "S1", StartTime: start, EndTime: end, PriceType: models.PriceTypeTimed}
}

func TestBlocks_OverlapPolicy(t *testing.T) {
	tests := []struct {
		name     string
		existing models.Booking
		cand     Candidate
		want     bool
	}{
		{
			name:     "strict overlap blocks",
			existing: booked("10:00", "11:30", models.PriceTypeTimed),
			cand:     timedCandidate("11:00", "12:00"),
			want:     true,
		},
		{
			name:     "touching endpoints do not block",
			existing: booked("10:00", "11:00", models.PriceTypeTimed),
			cand:     timedCandidate("11:00", "12:00"),
			want:     false,
		},
		{
			name:     "candidate ends at existing start",
			existing: booked("12:00", "13:00", models.PriceTypeTimed),
			cand:     timedCandidate("11:00", "12:00"),
			want:     false,
		},
		{
			name:     "candidate contained in existing",
			existing: booked("09:00", "17:00", models.PriceTypeTimed),
			cand:     timedCandidate("11:00", "12:00"),
			want:     true,
		},
		{
			name:     "existing full-day blocks any candidate",
			existing: booked("", "", models.PriceTypeFullDay),
			cand:     timedCandidate("09:00", "10:00"),
			want:     true,
		},
		{
			name:     "full-day candidate blocked by any active booking",
			existing: booked("22:00", "23:00", models.PriceTypeTimed),
			cand:     Candidate{ServiceID: "S1", PriceType: models.PriceTypeFullDay},
			want:     true,
		},
		{
			name: "cancelled booking is inert even when overlapping",
			existing: models.Booking{
				ServiceID:     "S1",
				BookingDate:   "05-JAN-2025",
				StartTime:     "10:00",
				EndTime:       "12:00",
				Status:        models.BookingStatusCancelled,
				VariationData: models.VariationData{PriceType: models.PriceTypeTimed},
			},
			cand: timedCandidate("11:00", "12:00"),
			want: false,
		},
		{
			name: "cancelled full-day booking is inert",
			existing: models.Booking{
				ServiceID:     "S1",
				BookingDate:   "05-JAN-2025",
				Status:        models.BookingStatusCancelled,
				VariationData: models.VariationData{PriceType: models.PriceTypeFullDay},
			},
			cand: timedCandidate("11:00", "12:00"),
			want: false,
		},
		{
			name:     "unknown existing time fails open",
			existing: booked("", "12:00", models.PriceTypeTimed),
			cand:     timedCandidate("11:00", "12:00"),
			want:     false,
		},
		{
			name:     "unknown candidate time fails open",
			existing: booked("10:00", "12:00", models.PriceTypeTimed),
			cand:     timedCandidate("11:00", "garbage"),
			want:     false,
		},
		{
			name:     "full-day checked before time parsing",
			existing: booked("??", "??", models.PriceTypeFullDay),
			cand:     timedCandidate("11:00", "12:00"),
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blocks(tt.existing, tt.cand); got != tt.want {
				t.Errorf("Blocks() = %v, want %v", got, tt.want)
			}
		})
	}
}
