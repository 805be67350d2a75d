package booking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"devalaya/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates a payment intent for a booking.
type PaymentHandler interface {
	CreatePaymentIntent(ctx context.Context, booking models.Booking, currency string) (string, string, error)
}

// StripePaymentHandler is the production implementation.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler constructs a StripePaymentHandler.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreatePaymentIntent opens a Stripe payment intent for the booking amount
// and returns its ID and client secret.
func (h *StripePaymentHandler) CreatePaymentIntent(ctx context.Context, booking models.Booking, currency string) (string, string, error) {
	if currency == "" {
		currency = "inr"
	}

	// Stripe amounts are in the currency's minor unit.
	amountMinor := int64(math.Round(booking.Amount * 100))
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(strings.ToLower(currency)),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("user_id", booking.UserID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.logger.Info("created payment intent",
		zap.String("bookingID", booking.ID),
		zap.String("paymentIntentID", pi.ID))
	return pi.ID, pi.ClientSecret, nil
}
