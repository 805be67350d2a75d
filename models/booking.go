package models

import "time"

// Booking status codes used on the wire.
const (
	BookingStatusBooked    = "B"
	BookingStatusCancelled = "CX"
)

// Pricing type tags. A FULL_DAY booking occupies the entire calendar date
// regardless of its stated time bounds.
const (
	PriceTypeFullDay = "FULL_DAY"
	PriceTypeTimed   = "TIMED"
)

// VariationData is the snapshot of the purchased variation embedded in a
// booking record.
type VariationData struct {
	VariationID string  `bson:"variation_id,omitempty" json:"variation_id,omitempty"`
	Name        string  `bson:"name,omitempty" json:"name,omitempty"`
	PriceType   string  `bson:"price_type" json:"price_type"`
	BasePrice   float64 `bson:"base_price,omitempty" json:"base_price,omitempty"`
}

// ServiceData is the optional back-reference to the owning service carried
// by some historical booking records instead of a flat service_id.
type ServiceData struct {
	ServiceID string `bson:"service_id" json:"service_id"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
}

// Booking represents a reservation of a temple service variation on a
// specific date and time range.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	UserID        string        `bson:"user_id" json:"user_id"`
	TempleID      string        `bson:"temple_id" json:"temple_id"`
	ServiceID     string        `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ServiceData   *ServiceData  `bson:"service_data,omitempty" json:"service_data,omitempty"`
	BookingDate   string        `bson:"booking_date" json:"booking_date"` // "DD-MON-YYYY", e.g. "05-JAN-2025"
	StartTime     string        `bson:"start_time" json:"start_time"`     // "HH:MM" or "HH:MM:SS"; may be empty
	EndTime       string        `bson:"end_time" json:"end_time"`
	Status        string        `bson:"status" json:"status"` // "B" booked, "CX" cancelled
	Amount        float64       `bson:"amount" json:"amount"`
	Participants  int           `bson:"participants,omitempty" json:"participants,omitempty"`
	VariationData VariationData `bson:"service_variation_data" json:"service_variation_data"`
	PaymentIntent string        `bson:"payment_intent,omitempty" json:"payment_intent,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// ServiceRef returns the owning service identifier, preferring the flat
// service_id field over the embedded service_data back-reference.
func (b Booking) ServiceRef() string {
	if b.ServiceID != "" {
		return b.ServiceID
	}
	if b.ServiceData != nil {
		return b.ServiceData.ServiceID
	}
	return ""
}
