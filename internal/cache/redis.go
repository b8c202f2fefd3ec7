package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	packagesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, packagesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		packagesTTL: packagesTTL,
	}
}

func (c *RedisCache) GetPackages(ctx context.Context) ([]domain.TravelPackage, error) {
	data, err := c.client.Get(ctx, packagesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var packages []domain.TravelPackage
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *RedisCache) SetPackages(ctx context.Context, packages []domain.TravelPackage) error {
	payload, err := json.Marshal(packages)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, packagesKey(), payload, c.packagesTTL).Err()
}

// AcquireSignupLock takes a short-lived exclusive lock on the activity so
// concurrent sign-ups cannot both read a free slot before either writes.
func (c *RedisCache) AcquireSignupLock(ctx context.Context, activityID string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, signupLockKey(activityID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSignupLock(ctx context.Context, activityID string) error {
	return c.client.Del(ctx, signupLockKey(activityID)).Err()
}

func packagesKey() string {
	return "cache:packages"
}

func signupLockKey(activityID string) string {
	return fmt.Sprintf("lock:activity:%s", activityID)
}
