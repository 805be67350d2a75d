package availability

import (
	"reflect"
	"testing"

	"devalaya/models"
)

func timedBooking(serviceID, date, start, end, status string) models.Booking {
	return models.Booking{
		ServiceID:     serviceID,
		BookingDate:   date,
		StartTime:     start,
		EndTime:       end,
		Status:        status,
		VariationData: models.VariationData{PriceType: models.PriceTypeTimed},
	}
}

func TestBlockedDates_OverlapScenario(t *testing.T) {
	bookings := []models.Booking{
		timedBooking("S1", "05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
	}
	cand := timedCandidate("11:00", "13:00")

	got := BlockedDates(bookings, "S1", cand)
	want := models.AvailabilityMap{"2025-01-05": {Blocked: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BlockedDates() = %v, want %v", got, want)
	}
}

func TestBlockedDates_TouchingEndpointsOpen(t *testing.T) {
	bookings := []models.Booking{
		timedBooking("S1", "05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
	}
	cand := timedCandidate("12:00", "13:00")

	got := BlockedDates(bookings, "S1", cand)
	if len(got) != 0 {
		t.Errorf("BlockedDates() = %v, want empty map", got)
	}
}

func TestBlockedDates_FullDayWithNullTimes(t *testing.T) {
	bookings := []models.Booking{
		{
			ServiceID:     "S1",
			BookingDate:   "10-MAR-2025",
			Status:        models.BookingStatusBooked,
			VariationData: models.VariationData{PriceType: models.PriceTypeFullDay},
		},
	}
	cand := timedCandidate("09:00", "10:00")

	got := BlockedDates(bookings, "S1", cand)
	want := models.AvailabilityMap{"2025-03-10": {Blocked: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BlockedDates() = %v, want %v", got, want)
	}
}

func TestBlockedDates_CrossServiceIsolation(t *testing.T) {
	bookings := []models.Booking{
		timedBooking("S2", "05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
	}
	cand := timedCandidate("11:00", "13:00")

	if got := BlockedDates(bookings, "S1", cand); len(got) != 0 {
		t.Errorf("booking for service S2 leaked into S1 map: %v", got)
	}
}

func TestBlockedDates_ServiceDataBackReference(t *testing.T) {
	bookings := []models.Booking{
		{
			ServiceData:   &models.ServiceData{ServiceID: "S1"},
			BookingDate:   "05-JAN-2025",
			StartTime:     "10:00",
			EndTime:       "12:00",
			Status:        models.BookingStatusBooked,
			VariationData: models.VariationData{PriceType: models.PriceTypeTimed},
		},
	}
	cand := timedCandidate("11:00", "13:00")

	got := BlockedDates(bookings, "S1", cand)
	if !got["2025-01-05"].Blocked {
		t.Errorf("service_data back-reference not honored: %v", got)
	}
}

func TestBlockedDates_SkipsMalformedDates(t *testing.T) {
	bookings := []models.Booking{
		timedBooking("S1", "not-a-date", "10:00", "12:00", models.BookingStatusBooked),
		timedBooking("S1", "05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
	}
	cand := timedCandidate("11:00", "13:00")

	got := BlockedDates(bookings, "S1", cand)
	want := models.AvailabilityMap{"2025-01-05": {Blocked: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("malformed record corrupted the map: got %v, want %v", got, want)
	}
}

func TestBlockedDates_CancelledBookingsInert(t *testing.T) {
	bookings := []models.Booking{
		timedBooking("S1", "05-JAN-2025", "10:00", "12:00", models.BookingStatusCancelled),
	}
	cand := timedCandidate("11:00", "13:00")

	if got := BlockedDates(bookings, "S1", cand); len(got) != 0 {
		t.Errorf("cancelled booking contributed a block: %v", got)
	}
}

func TestBlockedDates_EmptyInput(t *testing.T) {
	cand := timedCandidate("11:00", "13:00")
	if got := BlockedDates(nil, "S1", cand); len(got) != 0 {
		t.Errorf("BlockedDates(nil) = %v, want empty map", got)
	}
}

func TestBlockedDates_UnionSemantics(t *testing.T) {
	// A non-blocking booking on an already-blocked date must not unmark it.
	bookings := []models.Booking{
		timedBooking("S1", "05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
		timedBooking("S1", "05-JAN-2025", "14:00", "15:00", models.BookingStatusBooked),
	}
	cand := timedCandidate("11:00", "13:00")

	got := BlockedDates(bookings, "S1", cand)
	if !got["2025-01-05"].Blocked {
		t.Errorf("blocked date was unmarked by a later non-blocking booking: %v", got)
	}
}

func TestBlockedDates_OrderIndependenceAndIdempotence(t *testing.T) {
	bookings := []models.Booking{
		timedBooking("S1", "05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
		timedBooking("S1", "06-JAN-2025", "14:00", "15:00", models.BookingStatusBooked),
		timedBooking("S1", "07-JAN-2025", "11:30", "12:30", models.BookingStatusBooked),
		timedBooking("S2", "05-JAN-2025", "11:00", "12:00", models.BookingStatusBooked),
		timedBooking("S1", "bad-date!", "11:00", "12:00", models.BookingStatusBooked),
	}
	cand := timedCandidate("11:00", "13:00")

	first := BlockedDates(bookings, "S1", cand)

	// Idempotence: same inputs, same map.
	if again := BlockedDates(bookings, "S1", cand); !reflect.DeepEqual(first, again) {
		t.Errorf("recomputation diverged: %v vs %v", first, again)
	}

	// Order independence: reverse the list.
	reversed := make([]models.Booking, len(bookings))
	for i, b := range bookings {
		reversed[len(bookings)-1-i] = b
	}
	if rev := BlockedDates(reversed, "S1", cand); !reflect.DeepEqual(first, rev) {
		t.Errorf("order changed the map: %v vs %v", first, rev)
	}
}
