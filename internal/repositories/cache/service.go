package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bankee/internal/models"

	"github.com/redis/go-redis/v9"
)

const walletKeyPrefix = "wallet:"

// Service wraps the Redis client with typed helpers.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

// NewService creates a cache service with the given default TTL.
func NewService(client *redis.Client, ttl time.Duration) *Service {
	return &Service{client: client, ttl: ttl}
}

func (s *Service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	val, err := s.client.Get(ctx, walletKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	var wallet models.Wallet
	if err := json.Unmarshal([]byte(val), &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *Service) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, walletKey(wallet.UserID), data, s.ttl).Err()
}

func (s *Service) InvalidateWallet(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, walletKey(userID)).Err()
}

func (s *Service) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *Service) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

func (s *Service) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *Service) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *Service) Close() error {
	return s.client.Close()
}

func walletKey(userID uint) string {
	return fmt.Sprintf("%s%d", walletKeyPrefix, userID)
}
