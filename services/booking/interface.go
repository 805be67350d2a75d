package booking

import (
	"context"
	"time"

	"devalaya/models"
)

// BookingSessionService drives the linear booking wizard:
// service -> variation -> date -> confirm.
type BookingSessionService interface {
	InitiateSession(userID, templeID, serviceID string) (*models.BookingSession, error)
	SelectVariation(userID, sessionID, variationID string) (*models.BookingSession, error)
	SelectDate(userID, sessionID, isoDate string, participants int) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, userID, sessionID string) (*ConfirmationResult, error)
	CancelSession(userID, sessionID string) error

	ServiceAvailability(serviceID, variationID string) (models.AvailabilityMap, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	CancelBooking(userID, bookingID string) error
}

// ReminderScheduler schedules a booking reminder push for later delivery.
type ReminderScheduler interface {
	ScheduleBookingReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// ConfirmationResult is returned once a booking is persisted.
type ConfirmationResult struct {
	Booking             models.Booking `json:"booking"`
	PaymentClientSecret string         `json:"paymentClientSecret,omitempty"`
}
