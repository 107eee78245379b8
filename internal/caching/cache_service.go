package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"bodegamart/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService fronts the product collection per profile. Every product or
// stock mutation must invalidate the owning profile's entries; reads treat a
// miss as "go to the database".
type CacheService interface {
	// Product caching
	GetProduct(ctx context.Context, profileID, productID uuid.UUID) (*models.Product, error)
	SetProduct(ctx context.Context, profileID uuid.UUID, product *models.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, profileID, productID uuid.UUID) error

	// Product collection caching
	GetProductList(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error)
	SetProductList(ctx context.Context, profileID uuid.UUID, products []*models.Product, ttl time.Duration) error

	// Cache invalidation
	InvalidateProfileCache(ctx context.Context, profileID uuid.UUID) error
	InvalidateAllCache(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port and rediss://host:port forms
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetProduct(ctx context.Context, profileID, productID uuid.UUID) (*models.Product, error) {
	key := fmt.Sprintf("bodegamart:product:%s:%s", profileID.String(), productID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetProduct(ctx context.Context, profileID uuid.UUID, product *models.Product, ttl time.Duration) error {
	key := fmt.Sprintf("bodegamart:product:%s:%s", profileID.String(), product.ID.String())
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, profileID, productID uuid.UUID) error {
	key := fmt.Sprintf("bodegamart:product:%s:%s", profileID.String(), productID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetProductList(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error) {
	key := fmt.Sprintf("bodegamart:products:%s", profileID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var products []*models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *redisCacheService) SetProductList(ctx context.Context, profileID uuid.UUID, products []*models.Product, ttl time.Duration) error {
	key := fmt.Sprintf("bodegamart:products:%s", profileID.String())
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) InvalidateProfileCache(ctx context.Context, profileID uuid.UUID) error {
	patterns := []string{
		fmt.Sprintf("bodegamart:product:%s:*", profileID.String()),
		fmt.Sprintf("bodegamart:products:%s", profileID.String()),
	}
	for _, pattern := range patterns {
		keys, err := r.client.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *redisCacheService) InvalidateAllCache(ctx context.Context) error {
	pattern := "bodegamart:*"
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
