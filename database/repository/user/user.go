package userRepo

import "devalaya/models"

// UserRepository defines persistence for platform users.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(userID string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	Update(user *models.User) error
	UpdateTokenHash(userID, tokenHash string) error
	UpdateFCMToken(userID, fcmToken string) error
	Delete(userID string) error
}
