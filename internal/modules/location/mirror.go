// README: Redis GEO mirror of all live positions, one key per kind.
package location

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lodhi/internal/types"
)

const geoKeyPrefix = "location:%s"

// Mirror keeps a Redis GEO set per kind in sync with the in-memory
// positions so radius queries stay cheap.
type Mirror struct {
	redis *redis.Client
}

func NewMirror(redis *redis.Client) *Mirror {
	return &Mirror{redis: redis}
}

func geoKey(kind Kind) string {
	return fmt.Sprintf(geoKeyPrefix, kind)
}

func (m *Mirror) Publish(ctx context.Context, kind Kind, positions map[types.ID]types.Point) error {
	if len(positions) == 0 {
		return nil
	}
	locs := make([]*redis.GeoLocation, 0, len(positions))
	for id, p := range positions {
		locs = append(locs, &redis.GeoLocation{
			Name:      string(id),
			Longitude: p.Lng,
			Latitude:  p.Lat,
		})
	}
	return m.redis.GeoAdd(ctx, geoKey(kind), locs...).Err()
}

// Nearby returns the IDs of tracked records within radiusKm of p,
// closest first.
func (m *Mirror) Nearby(ctx context.Context, kind Kind, p types.Point, radiusKm float64) ([]types.ID, error) {
	results, err := m.redis.GeoSearch(ctx, geoKey(kind), &redis.GeoSearchQuery{
		Longitude:  p.Lng,
		Latitude:   p.Lat,
		Radius:     radiusKm,
		RadiusUnit: "km",
		Sort:       "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]types.ID, len(results))
	for i, r := range results {
		ids[i] = types.ID(r)
	}
	return ids, nil
}
