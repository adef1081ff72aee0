// README: Location service: external position updates fanned out to the owning store.
package location

import (
	"context"
	"errors"

	"lodhi/internal/types"
)

var (
	ErrUnknownKind = errors.New("unknown location kind")
	ErrNoMirror    = errors.New("location mirror not configured")
)

// Service handles positions reported from outside the simulator (a
// partner's device, for instance). The owning store decides whether
// tracking is active; inactive records reject the update.
type Service struct {
	appliers map[Kind]Applier
	mirror   *Mirror
}

func NewService(appliers map[Kind]Applier, mirror *Mirror) *Service {
	return &Service{appliers: appliers, mirror: mirror}
}

func (s *Service) Update(ctx context.Context, kind Kind, id types.ID, pos types.Point) error {
	apply, ok := s.appliers[kind]
	if !ok {
		return ErrUnknownKind
	}
	if err := apply(id, pos); err != nil {
		return err
	}
	if s.mirror != nil {
		return s.mirror.Publish(ctx, kind, map[types.ID]types.Point{id: pos})
	}
	return nil
}

// Nearby lists tracked records of one kind within radiusKm of p,
// closest first.
func (s *Service) Nearby(ctx context.Context, kind Kind, p types.Point, radiusKm float64) ([]types.ID, error) {
	if _, ok := s.appliers[kind]; !ok {
		return nil, ErrUnknownKind
	}
	if s.mirror == nil {
		return nil, ErrNoMirror
	}
	return s.mirror.Nearby(ctx, kind, p, radiusKm)
}
