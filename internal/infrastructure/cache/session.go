package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisSessionStore implements the SessionStore interface using Redis
// hashes. Sessions back the admin API's token revocation check.
type redisSessionStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisSessionStore creates a new Redis-based session store
func NewRedisSessionStore(client *redis.Client, logger *zap.Logger) SessionStore {
	return &redisSessionStore{
		client: client,
		logger: logger,
	}
}

// CreateSession creates a new session with the given data
func (s *redisSessionStore) CreateSession(ctx context.Context, userID uuid.UUID, data map[string]interface{}) (string, error) {
	sessionID := uuid.New().String()
	sessionKey := SessionPrefix + sessionID

	sessionData := make(map[string]interface{}, len(data)+2)
	for k, v := range data {
		sessionData[k] = v
	}
	sessionData["user_id"] = userID.String()
	sessionData["created_at"] = time.Now().Unix()

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, sessionKey, sessionData)
	pipe.Expire(ctx, sessionKey, SessionTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("session creation failed",
			zap.String("session_id", sessionID),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return "", fmt.Errorf("session creation failed: %w", err)
	}

	return sessionID, nil
}

// GetSession retrieves session data by session ID
func (s *redisSessionStore) GetSession(ctx context.Context, sessionID string) (map[string]interface{}, error) {
	sessionKey := SessionPrefix + sessionID

	result, err := s.client.HGetAll(ctx, sessionKey).Result()
	if err != nil {
		s.logger.Error("session get failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, fmt.Errorf("session get failed: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrSessionExpired{SessionID: sessionID}
	}

	sessionData := make(map[string]interface{}, len(result))
	for k, v := range result {
		if k == "created_at" {
			if timestamp, err := strconv.ParseInt(v, 10, 64); err == nil {
				sessionData[k] = timestamp
				continue
			}
		}
		sessionData[k] = v
	}

	return sessionData, nil
}

// DeleteSession removes a session
func (s *redisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	sessionKey := SessionPrefix + sessionID

	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		s.logger.Error("session deletion failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// ExtendSession updates the session TTL
func (s *redisSessionStore) ExtendSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	sessionKey := SessionPrefix + sessionID

	exists, err := s.client.Exists(ctx, sessionKey).Result()
	if err != nil {
		s.logger.Error("session exists check failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return fmt.Errorf("session exists check failed: %w", err)
	}
	if exists == 0 {
		return ErrSessionExpired{SessionID: sessionID}
	}

	if err := s.client.Expire(ctx, sessionKey, ttl).Err(); err != nil {
		s.logger.Error("session extend failed",
			zap.String("session_id", sessionID),
			zap.Duration("ttl", ttl),
			zap.Error(err))
		return fmt.Errorf("session extend failed: %w", err)
	}

	return nil
}
