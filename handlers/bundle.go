package handlers

import userRepo "devalaya/database/repository/user"

// HandlerBundle aggregates the handlers and the repositories the route
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	User    *UserHandler
	Temple  *TempleHandler
	Booking *BookingHandler
}
