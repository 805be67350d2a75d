package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"devalaya/models"
	"devalaya/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds in-flight booking wizard sessions.
type SessionStore interface {
	Save(session *models.BookingSession) error
	Get(sessionID string) (*models.BookingSession, error)
	Delete(sessionID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL so abandoned wizards
// expire on their own.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore constructs a session store on the shared session client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(session *models.BookingSession) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	key := utils.BookingSessionPrefix + session.ID
	if err := s.Client.Set(ctx, key, data, utils.BookingSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, utils.BookingSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, NewSessionNotFoundError()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	return s.Client.Del(ctx, utils.BookingSessionPrefix+sessionID).Err()
}
