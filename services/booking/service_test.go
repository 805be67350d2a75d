package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"devalaya/models"
)

type memSessionStore struct {
	sessions map[string]models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memSessionStore) Save(s *models.BookingSession) error {
	m.sessions[s.ID] = *s
	return nil
}

func (m *memSessionStore) Get(id string) (*models.BookingSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, NewSessionNotFoundError()
	}
	cp := s
	return &cp, nil
}

func (m *memSessionStore) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}

type fakeCatalogue struct {
	services   map[string]models.TempleService
	variations map[string]models.ServiceVariation
}

func (f *fakeCatalogue) GetAllTemples() ([]models.Temple, error)       { return nil, nil }
func (f *fakeCatalogue) GetTempleByID(string) (*models.Temple, error) { return nil, errors.New("not found") }
func (f *fakeCatalogue) GetServicesByTemple(string) ([]models.TempleService, error) {
	return nil, nil
}

func (f *fakeCatalogue) GetServiceByID(id string) (*models.TempleService, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return &s, nil
}

func (f *fakeCatalogue) GetVariationsByService(string) ([]models.ServiceVariation, error) {
	return nil, nil
}

func (f *fakeCatalogue) GetVariationByID(id string) (*models.ServiceVariation, error) {
	v, ok := f.variations[id]
	if !ok {
		return nil, fmt.Errorf("variation %s not found", id)
	}
	return &v, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) CreateBooking(b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetBookingByID(id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}

func (f *fakeBookingRepo) GetBookingsByService(serviceID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ServiceRef() == serviceID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetBookingsByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveForVariation(variationID, bookingDate string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.VariationData.VariationID == variationID &&
			b.BookingDate == bookingDate &&
			b.Status == models.BookingStatusBooked {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) CancelBooking(id string) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings[i].Status = models.BookingStatusCancelled
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", id)
}

func newTestService(repo *fakeBookingRepo) *DefaultBookingSessionService {
	catalogue := &fakeCatalogue{
		services: map[string]models.TempleService{
			"S1": {ID: "S1", TempleID: "T1", Name: "Wedding Hall", Category: models.CategoryHall, Active: true},
			"S9": {ID: "S9", TempleID: "T1", Name: "Closed Hall", Category: models.CategoryHall, Active: false},
		},
		variations: map[string]models.ServiceVariation{
			"V1": {
				ID: "V1", ServiceID: "S1", Name: "Morning slot",
				StartTime: "11:00", EndTime: "13:00",
				PriceType: models.PriceTypeTimed, BasePrice: 5000,
				MaxParticipant: 100, MaxNoPerDay: 1,
			},
		},
	}
	return &DefaultBookingSessionService{
		TempleRepo:  catalogue,
		BookingRepo: repo,
		Sessions:    newMemSessionStore(),
	}
}

func existingBooking(date, start, end, status string) models.Booking {
	return models.Booking{
		ID:          "existing-" + date,
		UserID:      "other-user",
		ServiceID:   "S1",
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
		VariationData: models.VariationData{
			VariationID: "V-other",
			PriceType:   models.PriceTypeTimed,
		},
	}
}

func TestWizard_HappyPath(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		existingBooking("05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
	}}
	svc := newTestService(repo)

	session, err := svc.InitiateSession("U1", "T1", "S1")
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}
	if session.Stage != models.StageVariation {
		t.Fatalf("stage = %q, want variation", session.Stage)
	}

	session, err = svc.SelectVariation("U1", session.ID, "V1")
	if err != nil {
		t.Fatalf("SelectVariation: %v", err)
	}
	if session.Stage != models.StageDate {
		t.Fatalf("stage = %q, want date", session.Stage)
	}
	// The existing 10:00-12:00 booking overlaps the 11:00-13:00 candidate.
	if !session.Availability["2025-01-05"].Blocked {
		t.Fatalf("expected 2025-01-05 blocked, got %v", session.Availability)
	}

	session, err = svc.SelectDate("U1", session.ID, "2099-01-06", 10)
	if err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if session.Stage != models.StageConfirm {
		t.Fatalf("stage = %q, want confirm", session.Stage)
	}

	result, err := svc.ConfirmBooking(context.Background(), "U1", session.ID)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	b := result.Booking
	if b.BookingDate != "06-JAN-2099" {
		t.Errorf("booking date = %q, want 06-JAN-2099", b.BookingDate)
	}
	if b.Status != models.BookingStatusBooked {
		t.Errorf("status = %q, want B", b.Status)
	}
	if b.VariationData.PriceType != models.PriceTypeTimed {
		t.Errorf("price type = %q, want TIMED", b.VariationData.PriceType)
	}

	// Session is gone after confirmation.
	if _, err := svc.Sessions.Get(session.ID); err == nil {
		t.Errorf("session survived confirmation")
	}
}

func TestWizard_BlockedDateRejected(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		existingBooking("05-JAN-2025", "10:00", "12:00", models.BookingStatusBooked),
	}}
	svc := newTestService(repo)

	session, _ := svc.InitiateSession("U1", "T1", "S1")
	session, _ = svc.SelectVariation("U1", session.ID, "V1")

	_, err := svc.SelectDate("U1", session.ID, "2025-01-05", 1)
	var sessErr *SessionError
	if !errors.As(err, &sessErr) || sessErr.Code != "dateBlocked" {
		t.Fatalf("SelectDate on blocked date: err = %v, want dateBlocked", err)
	}
}

func TestWizard_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		existingBooking("05-JAN-2025", "10:00", "12:00", models.BookingStatusCancelled),
	}}
	svc := newTestService(repo)

	session, _ := svc.InitiateSession("U1", "T1", "S1")
	session, err := svc.SelectVariation("U1", session.ID, "V1")
	if err != nil {
		t.Fatalf("SelectVariation: %v", err)
	}
	if len(session.Availability) != 0 {
		t.Fatalf("cancelled booking blocked a date: %v", session.Availability)
	}
}

func TestWizard_StageViolation(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	session, _ := svc.InitiateSession("U1", "T1", "S1")
	if _, err := svc.SelectDate("U1", session.ID, "2099-01-06", 1); err == nil {
		t.Fatal("SelectDate before variation selection succeeded")
	}
	if _, err := svc.ConfirmBooking(context.Background(), "U1", session.ID); err == nil {
		t.Fatal("ConfirmBooking before date selection succeeded")
	}
}

func TestWizard_InactiveServiceRejected(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})
	if _, err := svc.InitiateSession("U1", "T1", "S9"); err == nil {
		t.Fatal("expected inactive service to be rejected")
	}
}

func TestWizard_ConfirmRechecksAvailability(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo)

	session, _ := svc.InitiateSession("U1", "T1", "S1")
	session, _ = svc.SelectVariation("U1", session.ID, "V1")
	session, err := svc.SelectDate("U1", session.ID, "2099-01-06", 1)
	if err != nil {
		t.Fatalf("SelectDate: %v", err)
	}

	// Someone else books an overlapping slot while the wizard sits open.
	repo.bookings = append(repo.bookings,
		existingBooking("06-JAN-2099", "12:00", "14:00", models.BookingStatusBooked))

	_, err = svc.ConfirmBooking(context.Background(), "U1", session.ID)
	var sessErr *SessionError
	if !errors.As(err, &sessErr) || sessErr.Code != "dateBlocked" {
		t.Fatalf("ConfirmBooking: err = %v, want dateBlocked", err)
	}
}

func TestWizard_PerDayCapEnforced(t *testing.T) {
	// A non-overlapping active booking of the same variation exhausts the
	// MaxNoPerDay=1 cap without blocking the date outright.
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{
			ID:          "other",
			UserID:      "other-user",
			ServiceID:   "S1",
			BookingDate: "06-JAN-2099",
			StartTime:   "06:00",
			EndTime:     "07:00",
			Status:      models.BookingStatusBooked,
			VariationData: models.VariationData{
				VariationID: "V1",
				PriceType:   models.PriceTypeTimed,
			},
		},
	}}
	svc := newTestService(repo)

	session, _ := svc.InitiateSession("U1", "T1", "S1")
	session, _ = svc.SelectVariation("U1", session.ID, "V1")
	session, err := svc.SelectDate("U1", session.ID, "2099-01-06", 1)
	if err != nil {
		t.Fatalf("SelectDate: %v", err)
	}

	_, err = svc.ConfirmBooking(context.Background(), "U1", session.ID)
	var sessErr *SessionError
	if !errors.As(err, &sessErr) || sessErr.Code != "capacityExceeded" {
		t.Fatalf("ConfirmBooking: err = %v, want capacityExceeded", err)
	}
}

func TestWizard_SessionOwnership(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})
	session, _ := svc.InitiateSession("U1", "T1", "S1")

	if _, err := svc.SelectVariation("U2", session.ID, "V1"); err == nil {
		t.Fatal("another user advanced a foreign session")
	}
	if err := svc.CancelSession("U2", session.ID); err == nil {
		t.Fatal("another user cancelled a foreign session")
	}
}

func TestCancelBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "B1", UserID: "U1", ServiceID: "S1", Status: models.BookingStatusBooked},
	}}
	svc := newTestService(repo)

	if err := svc.CancelBooking("U2", "B1"); err == nil {
		t.Fatal("another user cancelled a foreign booking")
	}
	if err := svc.CancelBooking("U1", "B1"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if repo.bookings[0].Status != models.BookingStatusCancelled {
		t.Errorf("status = %q, want CX", repo.bookings[0].Status)
	}
	if err := svc.CancelBooking("U1", "B1"); err == nil {
		t.Fatal("cancelling twice succeeded")
	}
}
