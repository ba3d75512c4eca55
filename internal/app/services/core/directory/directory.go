// Package directory holds what every directory page shares: cached backend
// reads, listing page composition, profile extras and not-found pages.
package directory

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/shared/redis"
	"bhzdravlje-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	cacheKindReference = "reference"
	cacheKindListing   = "listing"
	cacheKindProfile   = "profile"
)

// Cache configures read-through caching of backend reads. The zero value
// disables caching.
type Cache struct {
	Repo         contracts.RedisRepository
	Log          *zap.Logger
	ReferenceTTL time.Duration
	ListingTTL   time.Duration
	ProfileTTL   time.Duration
}

// Page is one fetched backend page.
type Page[T any] struct {
	Items []T              `json:"items"`
	Meta  *models.ListMeta `json:"meta,omitempty"`
}

func FetchPage[T any](ctx context.Context, cache Cache, backend contracts.ResourceBackend[T], resource string, params url.Values) (Page[T], error) {
	key := fmt.Sprintf(constvars.RedisKeyListingFormat, resource, params.Encode())
	return redis.GetOrLoad(ctx, cache.Repo, cache.logger(), cacheKindListing, key, cache.ListingTTL, func(ctx context.Context) (Page[T], error) {
		items, meta, err := backend.FindAll(ctx, params)
		if err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Items: items, Meta: meta}, nil
	})
}

func FetchItem[T any](ctx context.Context, cache Cache, backend contracts.ResourceBackend[T], resource, slug string) (*T, error) {
	key := fmt.Sprintf(constvars.RedisKeyProfileFormat, resource, slug)
	return redis.GetOrLoad(ctx, cache.Repo, cache.logger(), cacheKindProfile, key, cache.ProfileTTL, func(ctx context.Context) (*T, error) {
		return backend.FindBySlug(ctx, slug)
	})
}

// Reference caches slow-changing lookup data such as cities.
func Reference[T any](ctx context.Context, cache Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	return redis.GetOrLoad(ctx, cache.Repo, cache.logger(), cacheKindReference, key, cache.ReferenceTTL, load)
}

func (c Cache) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}
