package user

import (
	"context"
	"fmt"

	"devalaya/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies credentials and issues a fresh JWT. The hash of
// the issued token is stored on the user record so a token can be revoked
// server-side before its expiry.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// RevokeAuthToken invalidates the user's current token.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	sessionClient := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	if err := sessionClient.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("RevokeAuthToken: failed to clear token cache", zap.Error(err))
	}
	return nil
}
