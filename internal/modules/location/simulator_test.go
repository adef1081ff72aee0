package location

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"lodhi/internal/config"
	"lodhi/internal/types"
)

// mapFeed is a Feed over a plain position map; every entry counts as
// actively tracked.
type mapFeed map[types.ID]types.Point

func (f mapFeed) Jitter(perturb func(types.Point) types.Point) map[types.ID]types.Point {
	out := make(map[types.ID]types.Point, len(f))
	for id, p := range f {
		moved := perturb(p)
		f[id] = moved
		out[id] = moved
	}
	return out
}

func TestSimulatorStepStaysWithinJitterBound(t *testing.T) {
	start := types.Point{Lat: 26.2183, Lng: 78.1828}
	feed := mapFeed{"req3": start}
	sim := NewSimulator(
		config.SimulatorConfig{TickSeconds: 3, JitterDegrees: 0.0005},
		zap.NewNop(), nil,
		map[Kind]Feed{KindServiceRequest: feed},
	)

	for i := 0; i < 50; i++ {
		before := feed["req3"]
		sim.step(context.Background())
		after := feed["req3"]
		if d := math.Abs(after.Lat - before.Lat); d > 0.0005 {
			t.Fatalf("lat moved %v in one tick, bound is 0.0005", d)
		}
		if d := math.Abs(after.Lng - before.Lng); d > 0.0005 {
			t.Fatalf("lng moved %v in one tick, bound is 0.0005", d)
		}
	}
}

func TestSimulatorDefaultsTick(t *testing.T) {
	sim := NewSimulator(config.SimulatorConfig{}, zap.NewNop(), nil, nil)
	if sim.tick <= 0 {
		t.Errorf("tick = %v, want positive default", sim.tick)
	}
}

func TestServiceUpdateDispatchesByKind(t *testing.T) {
	var got struct {
		id  types.ID
		pos types.Point
	}
	svc := NewService(map[Kind]Applier{
		KindOrder: func(id types.ID, pos types.Point) error {
			got.id, got.pos = id, pos
			return nil
		},
	}, nil)

	pos := types.Point{Lat: 26.21, Lng: 78.17}
	if err := svc.Update(context.Background(), KindOrder, "ORD-1", pos); err != nil {
		t.Fatal(err)
	}
	if got.id != "ORD-1" || got.pos != pos {
		t.Errorf("applied = %+v, want ORD-1 at %v", got, pos)
	}

	if err := svc.Update(context.Background(), Kind("blimp"), "x", pos); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestNearbyRequiresMirrorAndKnownKind(t *testing.T) {
	svc := NewService(map[Kind]Applier{
		KindOrder: func(types.ID, types.Point) error { return nil },
	}, nil)

	if _, err := svc.Nearby(context.Background(), Kind("blimp"), types.Point{}, 5); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	if _, err := svc.Nearby(context.Background(), KindOrder, types.Point{}, 5); !errors.Is(err, ErrNoMirror) {
		t.Errorf("err = %v, want ErrNoMirror", err)
	}
}

func TestServiceUpdatePropagatesStoreRejection(t *testing.T) {
	rejected := errors.New("tracking off")
	svc := NewService(map[Kind]Applier{
		KindOrder: func(types.ID, types.Point) error { return rejected },
	}, nil)

	err := svc.Update(context.Background(), KindOrder, "ORD-1", types.Point{})
	if !errors.Is(err, rejected) {
		t.Errorf("err = %v, want the store's rejection", err)
	}
}
