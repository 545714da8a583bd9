package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "item"
)

// CachedItem is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. The cache is never authoritative:
// Postgres owns durable state and every mutation invalidates the entry.
type CachedItem struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ItemCache provides structured read/write operations for item cache entries.
// Key format: "item:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID uuid.UUID) (*CachedItem, error) {
	key := c.key(itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	item := &CachedItem{
		ID:        id,
		Name:      vals["name"],
		Price:     price,
		CreatedAt: createdAt,
	}

	if v := vals["created_by"]; v != "" {
		createdBy, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("cache parse created_by: %w", err)
		}
		item.CreatedBy = &createdBy
	}
	if v := vals["updated_by"]; v != "" {
		updatedBy, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("cache parse updated_by: %w", err)
		}
		item.UpdatedBy = &updatedBy
	}
	if v := vals["updated_at"]; v != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("cache parse updated_at: %w", err)
		}
		item.UpdatedAt = &updatedAt
	}

	return item, nil
}

// Set writes a cached item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", item.ID.String(),
		"name", item.Name,
		"price", strconv.FormatFloat(item.Price, 'f', -1, 64),
		"created_by", uuidOrEmpty(item.CreatedBy),
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_by", uuidOrEmpty(item.UpdatedBy),
		"updated_at", timeOrEmpty(item.UpdatedAt),
	)
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Called on every update and delete so stale
// entries never outlive a mutation.
func (c *ItemCache) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "item:{itemID}"
func (c *ItemCache) key(itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", itemCacheKeyPrefix, itemID)
}

func uuidOrEmpty(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
