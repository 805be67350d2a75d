package user

import (
	userRepo "devalaya/database/repository/user"
	"devalaya/models"
)

// UserService defines registration, authentication and profile management.
type UserService interface {
	RegisterUser(name, email, password, phoneNumber string) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	UpdateUser(userID, name, phoneNumber string) (*models.User, error)
	UpdateFCMToken(userID, fcmToken string) error
	DeleteUser(userID string) error
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
