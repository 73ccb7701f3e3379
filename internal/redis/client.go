package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps the redis connection with the two caches this service
// needs: the cart badge count and the per-day mostly-ordered sets.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Cart badge count

func cartCountKey(customerID uint) string {
	return fmt.Sprintf("cart:count:%d", customerID)
}

func (c *Client) GetCartCount(customerID uint) (int, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, cartCountKey(customerID)).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("cart count not cached")
		}
		return 0, fmt.Errorf("failed to get cart count: %w", err)
	}
	return val, nil
}

func (c *Client) SetCartCount(customerID uint, count int, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, cartCountKey(customerID), count, ttl).Err()
}

func (c *Client) InvalidateCartCount(customerID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, cartCountKey(customerID)).Err()
}

// Mostly-ordered tag sets

func mostlyOrderedKey(restaurantID uint, day string) string {
	return fmt.Sprintf("mostly_ordered:%d:%s", restaurantID, day)
}

func (c *Client) GetMostlyOrdered(restaurantID uint, day string) ([]uint, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, mostlyOrderedKey(restaurantID, day)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("mostly-ordered set not cached")
		}
		return nil, fmt.Errorf("failed to get mostly-ordered set: %w", err)
	}

	var ids []uint
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mostly-ordered set: %w", err)
	}
	return ids, nil
}

func (c *Client) SetMostlyOrdered(restaurantID uint, day string, itemIDs []uint, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(itemIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal mostly-ordered set: %w", err)
	}
	return c.rdb.Set(ctx, mostlyOrderedKey(restaurantID, day), jsonData, ttl).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
