package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapClient минимальная замена redis в памяти.
type mapClient struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newMapClient() *mapClient {
	return &mapClient{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *mapClient) Get(_ context.Context, key string) *redis.StringCmd {
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mapClient) Set(_ context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.data[key] = string(value.([]byte))
	m.ttl[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (m *mapClient) SetNX(_ context.Context, key string, value interface{}, exp time.Duration) *redis.BoolCmd {
	if m.err != nil {
		return redis.NewBoolResult(false, m.err)
	}
	if _, ok := m.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = string(value.([]byte))
	m.ttl[key] = exp
	return redis.NewBoolResult(true, nil)
}

func (m *mapClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisServiceCache(t *testing.T) {
	client := newMapClient()
	c := &RedisServiceCache{client: client, ttl: DefaultServiceTTL}
	ctx := t.Context()

	_, err := c.Get(ctx, 1)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	svc := &domain.Service{
		ID:       1,
		Code:     "tg",
		Provider: domain.ProviderA,
		Price:    decimal.RequireFromString("1.50"),
		Active:   true,
	}
	require.NoError(t, c.Set(ctx, svc))
	assert.Equal(t, DefaultServiceTTL, client.ttl["service:1"])

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "tg", got.Code)
	assert.True(t, svc.Price.Equal(got.Price))

	require.NoError(t, c.Delete(ctx, 1))
	_, err = c.Get(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestRedisServiceCache_Errors(t *testing.T) {
	client := newMapClient()
	client.err = errors.New("connection refused")
	c := &RedisServiceCache{client: client, ttl: time.Minute}

	_, err := c.Get(t.Context(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRecordNotFound)

	assert.Error(t, c.Set(t.Context(), &domain.Service{ID: 1}))
	assert.Error(t, c.Set(t.Context(), nil))
	assert.Error(t, c.Add(t.Context(), &domain.Service{ID: 1}))
}

func TestRedisServiceCache_AddKeepsNewerEntry(t *testing.T) {
	client := newMapClient()
	c := &RedisServiceCache{client: client, ttl: DefaultServiceTTL}
	ctx := t.Context()

	stale := &domain.Service{ID: 1, Code: "tg", Price: decimal.RequireFromString("1.50"), Active: true}
	fresh := &domain.Service{ID: 1, Code: "tg", Price: decimal.RequireFromString("2.00"), Active: true}

	// чтение из БД началось до смены цены, а закончилось после
	require.NoError(t, c.Set(ctx, fresh))
	require.NoError(t, c.Add(ctx, stale))

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, fresh.Price.Equal(got.Price))

	require.NoError(t, c.Delete(ctx, 1))
	require.NoError(t, c.Add(ctx, stale))
	got, err = c.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, stale.Price.Equal(got.Price))
	assert.Equal(t, DefaultServiceTTL, client.ttl["service:1"])
}
