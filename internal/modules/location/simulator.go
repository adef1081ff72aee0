// README: Background simulator: jitters every tracked position on a fixed tick.
package location

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"lodhi/internal/config"
	"lodhi/internal/types"
)

// Simulator nudges every actively tracked position by up to
// ±JitterDegrees per axis each tick, then mirrors the results to Redis
// when a mirror is configured.
type Simulator struct {
	feeds  map[Kind]Feed
	mirror *Mirror
	tick   time.Duration
	jitter float64
	log    *zap.Logger
}

func NewSimulator(cfg config.SimulatorConfig, log *zap.Logger, mirror *Mirror, feeds map[Kind]Feed) *Simulator {
	tick := time.Duration(cfg.TickSeconds) * time.Second
	if tick <= 0 {
		tick = 3 * time.Second
	}
	return &Simulator{
		feeds:  feeds,
		mirror: mirror,
		tick:   tick,
		jitter: cfg.JitterDegrees,
		log:    log,
	}
}

func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.step(ctx)
		}
	}
}

func (s *Simulator) step(ctx context.Context) {
	for kind, feed := range s.feeds {
		positions := feed.Jitter(s.perturb)
		if len(positions) == 0 {
			continue
		}
		if s.mirror != nil {
			if err := s.mirror.Publish(ctx, kind, positions); err != nil {
				s.log.Warn("geo mirror publish failed",
					zap.String("kind", string(kind)),
					zap.Error(err))
			}
		}
	}
}

func (s *Simulator) perturb(p types.Point) types.Point {
	return types.Point{
		Lat: p.Lat + (rand.Float64()-0.5)*2*s.jitter,
		Lng: p.Lng + (rand.Float64()-0.5)*2*s.jitter,
	}
}
