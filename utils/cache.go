// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"hotelify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (search results).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for revoked-token tracking.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for revoked-token tracking.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for revoked-token tracking.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

const revokedKeyPrefix = "revoked:"

// RevokeToken blacklists a token hash until its natural expiry.
func RevokeToken(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, revokedKeyPrefix+tokenHash, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token hash has been blacklisted.
func IsTokenRevoked(ctx context.Context, tokenHash string) bool {
	n, err := GetAuthCacheClient().Exists(ctx, revokedKeyPrefix+tokenHash).Result()
	return err == nil && n > 0
}
