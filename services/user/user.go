package user

import (
	"context"
	"fmt"

	"devalaya/models"
	"devalaya/utils"

	"go.uber.org/zap"
)

// issueToken generates a JWT, records its hash for revocation, and caches
// the hash in Redis for cheap middleware lookups.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(userRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	sessionClient := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := sessionClient.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:          userRec.ID,
		Token:       token,
		Name:        userRec.Name,
		Email:       userRec.Email,
		PhoneNumber: userRec.PhoneNumber,
	}, nil
}

// GetUserByID fetches a user profile.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return userRec, nil
}

// UpdateUser updates mutable profile fields.
func (s *DefaultUserService) UpdateUser(userID, name, phoneNumber string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if name != "" {
		userRec.Name = name
	}
	if phoneNumber != "" {
		userRec.PhoneNumber = phoneNumber
	}
	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return userRec, nil
}

// UpdateFCMToken stores the device push token.
func (s *DefaultUserService) UpdateFCMToken(userID, fcmToken string) error {
	if err := s.Repo.UpdateFCMToken(userID, fcmToken); err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	return nil
}

// DeleteUser removes the account and revokes its token.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.RevokeAuthToken(userID); err != nil {
		utils.GetLogger().Warn("DeleteUser: failed to revoke token", zap.Error(err))
	}
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
