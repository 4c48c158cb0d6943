package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/the-witty-one/doctors-appointment-api/models"
)

const (
	doctorListKey = "doctors:all"
	doctorListTTL = 60 * time.Second
)

// Cache holds the doctor list in redis for a short TTL. A nil *Cache is a
// valid no-op cache, so callers never have to branch on whether redis is
// configured.
type Cache struct {
	client *redis.Client
}

// Connect pings redis at addr and returns the cache handle.
func Connect(addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Cache{client: client}, nil
}

// GetDoctors returns the cached doctor list, or ok=false on a miss or any
// redis failure.
func (c *Cache) GetDoctors(ctx context.Context) ([]models.Doctor, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, doctorListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var doctors []models.Doctor
	if err := json.Unmarshal(payload, &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

func (c *Cache) SetDoctors(ctx context.Context, doctors []models.Doctor) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	c.client.Set(ctx, doctorListKey, payload, doctorListTTL)
}

// InvalidateDoctors drops the cached list after a doctor is created.
func (c *Cache) InvalidateDoctors(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, doctorListKey)
}
