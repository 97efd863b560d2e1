package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const priceTTL = 5 * time.Minute

// PriceCache fronts catalog price lookups for the cart hot path.
// Backend errors degrade to a cache miss; the catalog stays authoritative.
// Key format: price:<product_id>
type PriceCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewPriceCache(client *redis.Client, logger zerolog.Logger) *PriceCache {
	return &PriceCache{client: client, logger: logger}
}

func (p *PriceCache) GetPrice(ctx context.Context, productID int) (float64, bool) {
	price, err := p.client.Get(ctx, p.key(productID)).Float64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger.Warn().Err(err).Int("product_id", productID).Msg("price cache read failed")
		}
		return 0, false
	}
	return price, true
}

func (p *PriceCache) SetPrice(ctx context.Context, productID int, price float64) {
	if err := p.client.Set(ctx, p.key(productID), price, priceTTL).Err(); err != nil {
		p.logger.Warn().Err(err).Int("product_id", productID).Msg("price cache write failed")
	}
}

func (p *PriceCache) Invalidate(ctx context.Context, productID int) {
	if err := p.client.Del(ctx, p.key(productID)).Err(); err != nil {
		p.logger.Warn().Err(err).Int("product_id", productID).Msg("price cache invalidate failed")
	}
}

func (p *PriceCache) key(productID int) string {
	return fmt.Sprintf("price:%d", productID)
}
