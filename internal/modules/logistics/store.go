// README: In-memory logistics store: one generic collection instantiated per job kind.
package logistics

import (
	"errors"
	"sync"

	"lodhi/internal/types"
)

var ErrJobNotFound = errors.New("logistics job not found")

// Collection holds one kind of job. Newest jobs list first, matching
// how partners triage incoming work.
type Collection[D Detail] struct {
	mu    sync.RWMutex
	jobs  map[types.ID]*Job[D]
	order []types.ID
}

func newCollection[D Detail]() *Collection[D] {
	return &Collection[D]{jobs: make(map[types.ID]*Job[D])}
}

func (c *Collection[D]) Create(j *Job[D]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.jobs[j.ID]; !ok {
		c.order = append([]types.ID{j.ID}, c.order...)
	}
	c.jobs[j.ID] = j.Clone()
}

func (c *Collection[D]) Get(id types.ID) (*Job[D], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	j, ok := c.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return j.Clone(), nil
}

func (c *Collection[D]) List() []*Job[D] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Job[D], 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.jobs[id].Clone())
	}
	return out
}

// Update clones the job, applies mutate, and republishes the clone so
// readers never observe a half-applied change.
func (c *Collection[D]) Update(id types.ID, mutate func(*Job[D]) error) (*Job[D], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	next := cur.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	c.jobs[id] = next
	return next.Clone(), nil
}

// Jitter perturbs every en-route job with a live position and returns
// the updated positions keyed by job ID.
func (c *Collection[D]) Jitter(perturb func(types.Point) types.Point) map[types.ID]types.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[types.ID]types.Point)
	for id, j := range c.jobs {
		if j.Status != StatusEnRoute || j.LiveLocation == nil {
			continue
		}
		next := j.Clone()
		moved := perturb(*next.LiveLocation)
		next.LiveLocation = &moved
		c.jobs[id] = next
		out[id] = moved
	}
	return out
}

// Store bundles both job collections.
type Store struct {
	ShopDeliveries *Collection[ShopDelivery]
	Moves          *Collection[PackersMovers]
}

func NewStore() *Store {
	return &Store{
		ShopDeliveries: newCollection[ShopDelivery](),
		Moves:          newCollection[PackersMovers](),
	}
}
