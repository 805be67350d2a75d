package models

import "time"

// SessionStage is the current step of the linear booking wizard.
// The wizard always advances service -> variation -> date -> confirm.
type SessionStage string

const (
	StageService   SessionStage = "service"
	StageVariation SessionStage = "variation"
	StageDate      SessionStage = "date"
	StageConfirm   SessionStage = "confirm"
)

// BookingSession is the staged state of one in-flight booking wizard.
// Redis-resident; never persisted to Mongo.
type BookingSession struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Stage     SessionStage `json:"stage"`
	TempleID  string       `json:"templeId"`
	ServiceID string       `json:"serviceId"`

	// Set once the variation stage completes.
	Variation *ServiceVariation `json:"variation,omitempty"`
	// Blocked dates computed for the selected variation, keyed by ISO date.
	Availability AvailabilityMap `json:"availability,omitempty"`

	// Set once the date stage completes. ISO "YYYY-MM-DD".
	SelectedDate string `json:"selectedDate,omitempty"`
	Participants int    `json:"participants,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
