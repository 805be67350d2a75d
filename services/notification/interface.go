package notification

import (
	"context"
	"fmt"

	"devalaya/services/user"
	"devalaya/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// FCMNotificationService is the production implementation.
type FCMNotificationService struct {
	Users user.UserService
}

// NewFCMNotificationService constructs an FCMNotificationService.
func NewFCMNotificationService(userSvc user.UserService) (*FCMNotificationService, error) {
	if userSvc == nil {
		return nil, fmt.Errorf("notification service initialization error: user service is nil")
	}
	return &FCMNotificationService{Users: userSvc}, nil
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
// With push delivery unconfigured this is a no-op.
func (s *FCMNotificationService) SendUserPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		return nil
	}

	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendUserPushNotification: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
