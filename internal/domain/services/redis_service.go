package services

import (
	"context"
	"encoding/json"
	"fmt"
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheStockLevel(level *models.StockLevel, expiration time.Duration) error
	GetCachedStockLevel(supplyTypeID uint) (*models.StockLevel, error)
	InvalidateStockLevel(supplyTypeID uint) error
	InvalidateLowStockList() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheStockLevel caches a stock level record with expiration
func (s *RedisService) CacheStockLevel(level *models.StockLevel, expiration time.Duration) error {
	key := fmt.Sprintf("stock_level:%d", level.SupplyTypeID)
	return s.Set(key, level, expiration)
}

// 5 GetCachedStockLevel gets a cached stock level by supply type ID
func (s *RedisService) GetCachedStockLevel(supplyTypeID uint) (*models.StockLevel, error) {
	var level models.StockLevel
	key := fmt.Sprintf("stock_level:%d", supplyTypeID)
	if err := s.Get(key, &level); err != nil {
		return nil, err
	}
	return &level, nil
}

// 6 InvalidateStockLevel removes a cached stock level after a mutation
func (s *RedisService) InvalidateStockLevel(supplyTypeID uint) error {
	key := fmt.Sprintf("stock_level:%d", supplyTypeID)
	return s.Delete(key)
}

// 7 InvalidateLowStockList removes the cached low stock dashboard list
func (s *RedisService) InvalidateLowStockList() error {
	return s.Delete("stock_level:low")
}
