package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "devalaya/database/repository/booking"
	templeRepo "devalaya/database/repository/temple"
	"devalaya/models"
	"devalaya/services/availability"
	"devalaya/services/notification"
	"devalaya/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingSessionService is the production implementation of the
// booking wizard.
type DefaultBookingSessionService struct {
	TempleRepo   templeRepo.TempleRepository
	BookingRepo  bookingRepo.BookingRepository
	Sessions     SessionStore
	Payments     PaymentHandler
	Notification notification.NotificationService
	Reminders    ReminderScheduler
}

// InitiateSession starts a wizard for one temple service. Completing the
// service step leaves the session waiting at the variation stage.
func (s *DefaultBookingSessionService) InitiateSession(userID, templeID, serviceID string) (*models.BookingSession, error) {
	service, err := s.TempleRepo.GetServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, fmt.Errorf("service %s is not open for booking", serviceID)
	}
	if service.TempleID != templeID {
		return nil, fmt.Errorf("service %s does not belong to temple %s", serviceID, templeID)
	}

	now := time.Now()
	session := &models.BookingSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Stage:     models.StageVariation,
		TempleID:  templeID,
		ServiceID: serviceID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectVariation records the chosen variation and computes the
// availability map the date picker renders from. Advances to the date stage.
func (s *DefaultBookingSessionService) SelectVariation(userID, sessionID, variationID string) (*models.BookingSession, error) {
	session, err := s.loadOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StageVariation {
		return nil, NewStageError(fmt.Sprintf("session is at stage %q, expected variation selection", session.Stage))
	}

	variation, err := s.TempleRepo.GetVariationByID(variationID)
	if err != nil {
		return nil, err
	}
	if variation.ServiceID != session.ServiceID {
		return nil, fmt.Errorf("variation %s does not belong to service %s", variationID, session.ServiceID)
	}

	availMap, err := s.ServiceAvailability(session.ServiceID, variationID)
	if err != nil {
		return nil, err
	}

	session.Variation = variation
	session.Availability = availMap
	session.Stage = models.StageDate
	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate records the chosen calendar date. A date the availability map
// marks blocked must never be selectable. Advances to the confirm stage.
func (s *DefaultBookingSessionService) SelectDate(userID, sessionID, isoDate string, participants int) (*models.BookingSession, error) {
	session, err := s.loadOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StageDate {
		return nil, NewStageError(fmt.Sprintf("session is at stage %q, expected date selection", session.Stage))
	}

	if _, ok := availability.FromISODate(isoDate); !ok {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", isoDate)
	}
	if session.Availability[isoDate].Blocked {
		return nil, NewDateBlockedError(isoDate)
	}

	if participants <= 0 {
		participants = 1
	}
	if max := session.Variation.MaxParticipant; max > 0 && participants > max {
		return nil, NewCapacityError(fmt.Sprintf("at most %d participants allowed", max))
	}

	session.SelectedDate = isoDate
	session.Participants = participants
	session.Stage = models.StageConfirm
	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking persists the booking. Availability is recomputed against
// fresh repository state first, so a date that got blocked while the wizard
// was open is rejected rather than double-booked.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, userID, sessionID string) (*ConfirmationResult, error) {
	logger := utils.GetLogger()

	session, err := s.loadOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StageConfirm {
		return nil, NewStageError(fmt.Sprintf("session is at stage %q, expected confirmation", session.Stage))
	}

	variation := session.Variation
	freshMap, err := s.ServiceAvailability(session.ServiceID, variation.ID)
	if err != nil {
		return nil, err
	}
	if freshMap[session.SelectedDate].Blocked {
		return nil, NewDateBlockedError(session.SelectedDate)
	}

	wireDate, ok := availability.FromISODate(session.SelectedDate)
	if !ok {
		return nil, fmt.Errorf("invalid session date %q", session.SelectedDate)
	}

	if variation.MaxNoPerDay > 0 {
		count, err := s.BookingRepo.CountActiveForVariation(variation.ID, wireDate)
		if err != nil {
			return nil, err
		}
		if count >= int64(variation.MaxNoPerDay) {
			return nil, NewCapacityError(fmt.Sprintf("variation is fully booked for %s", session.SelectedDate))
		}
	}

	newBooking := models.Booking{
		ID:           uuid.New().String(),
		UserID:       userID,
		TempleID:     session.TempleID,
		ServiceID:    session.ServiceID,
		BookingDate:  wireDate,
		StartTime:    variation.StartTime,
		EndTime:      variation.EndTime,
		Status:       models.BookingStatusBooked,
		Amount:       variation.BasePrice,
		Participants: session.Participants,
		VariationData: models.VariationData{
			VariationID: variation.ID,
			Name:        variation.Name,
			PriceType:   variation.PriceType,
			BasePrice:   variation.BasePrice,
		},
		CreatedAt: time.Now(),
	}

	// Free offerings (amount 0) skip payment entirely.
	var clientSecret string
	if s.Payments != nil && newBooking.Amount > 0 {
		intentID, secret, err := s.Payments.CreatePaymentIntent(ctx, newBooking, variation.Currency)
		if err != nil {
			return nil, err
		}
		newBooking.PaymentIntent = intentID
		clientSecret = secret
	}

	if err := s.BookingRepo.CreateBooking(&newBooking); err != nil {
		return nil, err
	}

	s.scheduleReminder(newBooking)

	if s.Notification != nil {
		title := "Booking confirmed"
		body := fmt.Sprintf("Your booking for %s on %s is confirmed.", variation.Name, session.SelectedDate)
		data := map[string]string{"bookingId": newBooking.ID}
		if err := s.Notification.SendUserPushNotification(ctx, userID, title, body, data); err != nil {
			logger.Warn("ConfirmBooking: push notification failed", zap.Error(err))
		}
	}

	if err := s.Sessions.Delete(sessionID); err != nil {
		logger.Warn("ConfirmBooking: failed to clear session", zap.Error(err))
	}

	return &ConfirmationResult{Booking: newBooking, PaymentClientSecret: clientSecret}, nil
}

// CancelSession abandons the wizard. Nothing outlives the session, so
// discarding it is the whole cleanup.
func (s *DefaultBookingSessionService) CancelSession(userID, sessionID string) error {
	if _, err := s.loadOwnedSession(userID, sessionID); err != nil {
		return err
	}
	return s.Sessions.Delete(sessionID)
}

// ServiceAvailability computes the per-date verdicts for one candidate
// variation from the service's full booking list.
func (s *DefaultBookingSessionService) ServiceAvailability(serviceID, variationID string) (models.AvailabilityMap, error) {
	variation, err := s.TempleRepo.GetVariationByID(variationID)
	if err != nil {
		return nil, err
	}
	if variation.ServiceID != serviceID {
		return nil, fmt.Errorf("variation %s does not belong to service %s", variationID, serviceID)
	}

	bookings, err := s.BookingRepo.GetBookingsByService(serviceID)
	if err != nil {
		return nil, err
	}

	cand := availability.CandidateFromVariation(*variation)
	return availability.BlockedDates(bookings, serviceID, cand), nil
}

// GetUserBookings returns the user's booking history.
func (s *DefaultBookingSessionService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByUser(userID)
}

// CancelBooking marks a booking cancelled; the date frees up immediately
// because cancelled records never contribute a blocked verdict.
func (s *DefaultBookingSessionService) CancelBooking(userID, bookingID string) error {
	b, err := s.BookingRepo.GetBookingByID(bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return fmt.Errorf("booking %s does not belong to this user", bookingID)
	}
	if b.Status == models.BookingStatusCancelled {
		return fmt.Errorf("booking %s is already cancelled", bookingID)
	}
	return s.BookingRepo.CancelBooking(bookingID)
}

// loadOwnedSession fetches a session and verifies ownership.
func (s *DefaultBookingSessionService) loadOwnedSession(userID, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, NewSessionNotFoundError()
	}
	return session, nil
}

// scheduleReminder queues a push for 09:00 the day before the booking.
// Bookings too close to their date simply get no reminder.
func (s *DefaultBookingSessionService) scheduleReminder(b models.Booking) {
	if s.Reminders == nil {
		return
	}

	isoDate, ok := availability.ToISODate(b.BookingDate)
	if !ok {
		return
	}
	day, err := time.ParseInLocation("2006-01-02", isoDate, time.Local)
	if err != nil {
		return
	}
	fireAt := day.AddDate(0, 0, -1).Add(9 * time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		Title:     "Upcoming booking",
		Body:      fmt.Sprintf("Reminder: %s at the temple tomorrow.", b.VariationData.Name),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleBookingReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("scheduleReminder: failed to enqueue reminder", zap.Error(err))
	}
}
