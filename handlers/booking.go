package handlers

import (
	"errors"
	"net/http"

	"devalaya/services/booking"
	"devalaya/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler drives the booking wizard over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, logger: logger}
}

// sessionErrorStatus maps wizard failures to HTTP status codes.
func sessionErrorStatus(err error) int {
	var sessErr *booking.SessionError
	if !errors.As(err, &sessErr) {
		return http.StatusInternalServerError
	}
	switch sessErr.Code {
	case "sessionNotFound":
		return http.StatusNotFound
	case "dateBlocked", "capacityExceeded":
		return http.StatusConflict
	case "stageViolation":
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// InitiateSession starts a booking wizard for one temple service.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	userID := c.GetString("userID")
	var input struct {
		TempleID  string `json:"templeId" binding:"required"`
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.InitiateSession(userID, input.TempleID, input.ServiceID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectVariation picks the variation and returns the blocked-date map.
func (h *BookingHandler) SelectVariation(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")
	var input struct {
		VariationID string `json:"variationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SelectVariation(userID, sessionID, input.VariationID)
	if err != nil {
		utils.JSONError(c, sessionErrorStatus(err), "failed to select variation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":      session,
		"availability": session.Availability,
	})
}

// SelectDate picks the calendar date for the booking.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")
	var input struct {
		Date         string `json:"date" binding:"required"` // "YYYY-MM-DD"
		Participants int    `json:"participants"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SelectDate(userID, sessionID, input.Date, input.Participants)
	if err != nil {
		utils.JSONError(c, sessionErrorStatus(err), "failed to select date", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmBooking finalizes the wizard into a persisted booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")

	result, err := h.Service.ConfirmBooking(c.Request.Context(), userID, sessionID)
	if err != nil {
		utils.JSONError(c, sessionErrorStatus(err), "booking confirmation failed", err.Error())
		return
	}

	h.logger.Info("booking confirmed",
		zap.String("bookingID", result.Booking.ID),
		zap.String("userID", userID))
	c.JSON(http.StatusOK, result)
}

// CancelSession abandons the wizard.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")

	if err := h.Service.CancelSession(userID, sessionID); err != nil {
		utils.JSONError(c, sessionErrorStatus(err), "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetAvailability exposes the per-date verdicts outside the wizard, for
// calendar rendering before a session is opened.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	serviceID := c.Query("serviceId")
	variationID := c.Query("variationId")
	if serviceID == "" || variationID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "serviceId and variationId are required")
		return
	}

	availMap, err := h.Service.ServiceAvailability(serviceID, variationID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": availMap})
}

// GetMyBookings returns the authenticated user's booking history.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := h.Service.GetUserBookings(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking cancels a confirmed booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	if err := h.Service.CancelBooking(userID, bookingID); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
