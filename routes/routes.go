package routes

import (
	"net/http"
	"time"

	"devalaya/handlers"
	"devalaya/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me", hb.User.UpdateMeHandler)
		api.DELETE("/me", hb.User.DeleteMeHandler)
		api.DELETE("/revoke", hb.User.RevokeUserAuthTokenHandler)
	}
}

// RegisterTempleRoutes registers the public temple catalogue endpoints.
func RegisterTempleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/temples", hb.Temple.ListTemplesHandler)
		api.GET("/temples/:id", hb.Temple.GetTempleHandler)
		api.GET("/temples/:id/services", hb.Temple.ListServicesHandler)
		api.GET("/services/:id/variations", hb.Temple.ListVariationsHandler)
		// Calendars render before the wizard opens, so this stays public.
		api.GET("/availability", hb.Booking.GetAvailability)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.PUT("/session/:sessionID/variation", hb.Booking.SelectVariation)
		bookingGroup.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}

	myBookings := r.Group("/api/bookings")
	{
		myBookings.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		myBookings.GET("", hb.Booking.GetMyBookings)
		myBookings.DELETE("/:id", hb.Booking.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Devalaya"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterTempleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
