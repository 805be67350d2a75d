package bookingRepo

import "devalaya/models"

// BookingRepository defines persistence for confirmed bookings.
type BookingRepository interface {
	CreateBooking(booking *models.Booking) error
	GetBookingByID(bookingID string) (*models.Booking, error)
	// GetBookingsByService returns every booking referencing the service,
	// including cancelled ones; the availability resolver filters by status.
	GetBookingsByService(serviceID string) ([]models.Booking, error)
	GetBookingsByUser(userID string) ([]models.Booking, error)
	// CountActiveForVariation counts "B" bookings of one variation on one
	// wire-format date, used to enforce the per-day booking cap.
	CountActiveForVariation(variationID, bookingDate string) (int64, error)
	CancelBooking(bookingID string) error
}
