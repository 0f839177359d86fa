package domain

import "context"

// SnowProvider fetches modeled snowfall totals for one coordinate pair.
type SnowProvider interface {
	FetchSnow(ctx context.Context, lat, lon float64) (SnowTotals, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
