// Package cache is a redis read-through cache for normalized backend
// payloads: the feed section list and single product DTOs.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aya-Jafar/storefront-api/pkg/dto"
)

const feedKey = "feed:sections"

type Store struct {
	Address  string
	Password string
	TTL      time.Duration
}

func New(address, password string, ttl time.Duration) *Store {
	return &Store{Address: address, Password: password, TTL: ttl}
}

func (s *Store) client() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     s.Address,
		Password: s.Password,
		DB:       0,
		Protocol: 2,
	})
}

// CacheFeed stores the normalized section list.
func (s *Store) CacheFeed(ctx context.Context, sections []dto.Section) error {
	client := s.client()
	defer client.Close()

	payload, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("failed to marshal feed sections: %w", err)
	}
	return client.Set(ctx, feedKey, payload, s.TTL).Err()
}

// FeedFromCache loads the normalized section list. A cache miss surfaces as
// redis.Nil.
func (s *Store) FeedFromCache(ctx context.Context) ([]dto.Section, error) {
	client := s.client()
	defer client.Close()

	payload, err := client.Get(ctx, feedKey).Result()
	if err != nil {
		return nil, err
	}
	var sections []dto.Section
	if err := json.Unmarshal([]byte(payload), &sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed sections: %w", err)
	}
	return sections, nil
}

// CacheProduct stores a single product DTO and tracks it in the
// recent-products list, trimmed to the 100 most recent.
func (s *Store) CacheProduct(ctx context.Context, p *dto.ProductDTO) error {
	client := s.client()
	defer client.Close()

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", p.ID, err)
	}

	pipe := client.TxPipeline()
	productKey := fmt.Sprintf("product:%s", p.ID)
	pipe.Set(ctx, productKey, payload, s.TTL)
	pipe.LPush(ctx, "products:recent", p.ID)
	pipe.LTrim(ctx, "products:recent", 0, 99)
	pipe.Expire(ctx, "products:recent", s.TTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute redis pipeline for product %s: %w", p.ID, err)
	}
	return nil
}

// ProductFromCache loads a single product DTO by id.
func (s *Store) ProductFromCache(ctx context.Context, id string) (*dto.ProductDTO, error) {
	client := s.client()
	defer client.Close()

	payload, err := client.Get(ctx, fmt.Sprintf("product:%s", id)).Result()
	if err != nil {
		return nil, err
	}
	var p dto.ProductDTO
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &p, nil
}

// InvalidateFeed drops the cached section list.
func (s *Store) InvalidateFeed(ctx context.Context) error {
	client := s.client()
	defer client.Close()
	return client.Del(ctx, feedKey).Err()
}
