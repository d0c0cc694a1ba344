// Package cache кэш каталога услуг в redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultServiceTTL = 5 * time.Minute

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisServiceCache хранит услуги каталога в json. Промах возвращает domain.ErrRecordNotFound.
type RedisServiceCache struct {
	client redisClient
	ttl    time.Duration
}

func NewRedisServiceCache(client *redis.Client, ttl time.Duration) *RedisServiceCache {
	if ttl <= 0 {
		ttl = DefaultServiceTTL
	}
	return &RedisServiceCache{client: client, ttl: ttl}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (c *RedisServiceCache) Get(ctx context.Context, id int64) (*domain.Service, error) {
	data, err := c.client.Get(ctx, serviceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("[cache/service %d] %w", id, domain.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("get cached service %d: %w", id, err)
	}
	var svc domain.Service
	if err := json.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("unmarshal cached service %d: %w", id, err)
	}
	return &svc, nil
}

func (c *RedisServiceCache) Set(ctx context.Context, s *domain.Service) error {
	data, err := marshalService(s)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, serviceKey(s.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache service %d: %w", s.ID, err)
	}
	return nil
}

// Add кэширует услугу, только если ключа еще нет (SET NX). Уже записанная версия не перезаписывается.
func (c *RedisServiceCache) Add(ctx context.Context, s *domain.Service) error {
	data, err := marshalService(s)
	if err != nil {
		return err
	}
	if err := c.client.SetNX(ctx, serviceKey(s.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache service %d: %w", s.ID, err)
	}
	return nil
}

func marshalService(s *domain.Service) ([]byte, error) {
	if s == nil {
		return nil, errors.New("cannot cache nil service")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal service %d: %w", s.ID, err)
	}
	return data, nil
}

func (c *RedisServiceCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, serviceKey(id)).Err(); err != nil {
		return fmt.Errorf("delete cached service %d: %w", id, err)
	}
	return nil
}

func serviceKey(id int64) string {
	return fmt.Sprintf("service:%d", id)
}
