package models

import "time"

// Service categories offered by temples.
const (
	CategoryHall  = "HALL"
	CategoryPuja  = "PUJA"
	CategoryEvent = "EVENT"
)

// Temple represents a temple listed on the platform.
type Temple struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	City        string    `bson:"city" json:"city"`
	Deity       string    `bson:"deity,omitempty" json:"deity,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// TempleService is a bookable offering of a temple (hall, puja or event).
type TempleService struct {
	ID          string `bson:"id" json:"id"`
	TempleID    string `bson:"temple_id" json:"temple_id"`
	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"` // HALL, PUJA or EVENT
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Active      bool   `bson:"active" json:"active"`
}

// ServiceVariation is a priced, time-scoped offering of a service,
// e.g. "morning slot" or "full-day hall rental".
type ServiceVariation struct {
	ID             string  `bson:"id" json:"id"`
	ServiceID      string  `bson:"service_id" json:"service_id"`
	Name           string  `bson:"name" json:"name"`
	StartTime      string  `bson:"start_time" json:"start_time"` // "HH:MM" or "HH:MM:SS"; may be empty for FULL_DAY
	EndTime        string  `bson:"end_time" json:"end_time"`
	PriceType      string  `bson:"price_type" json:"price_type"` // FULL_DAY or TIMED
	BasePrice      float64 `bson:"base_price" json:"base_price"`
	Currency       string  `bson:"currency" json:"currency"`
	MaxParticipant int     `bson:"max_participant" json:"max_participant"`
	MaxNoPerDay    int     `bson:"max_no_per_day" json:"max_no_per_day"`
}
