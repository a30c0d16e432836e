package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mortgage-agent/domain"
)

const DefaultCatalogKey = "mortgage:catalog:snapshot"

// CatalogRepositoryRedis keeps the snapshot as one JSON document so that
// several service instances share the catalog produced by one refresh.
type CatalogRepositoryRedis struct {
	client *redis.Client
	key    string
}

func NewCatalogRepositoryRedis(client *redis.Client, key string) *CatalogRepositoryRedis {
	if key == "" {
		key = DefaultCatalogKey
	}
	return &CatalogRepositoryRedis{
		client: client,
		key:    key,
	}
}

func (r *CatalogRepositoryRedis) Current(ctx context.Context) (domain.CatalogSnapshot, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CatalogSnapshot{}, ErrCatalogNotLoaded
	}
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("read catalog snapshot: %w", err)
	}

	var snapshot domain.CatalogSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("decode catalog snapshot: %w", err)
	}
	return snapshot, nil
}

func (r *CatalogRepositoryRedis) Replace(ctx context.Context, snapshot domain.CatalogSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("write catalog snapshot: %w", err)
	}
	return nil
}
