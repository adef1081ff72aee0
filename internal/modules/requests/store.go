// README: In-memory request store with atomic whole-record updates and the live-location feed.
package requests

import (
	"sync"

	"lodhi/internal/types"
)

type Store struct {
	mu       sync.RWMutex
	requests map[types.ID]*Request
	order    []types.ID
}

func NewStore() *Store {
	return &Store{requests: make(map[types.ID]*Request)}
}

func (s *Store) Create(r *Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	s.requests[r.ID] = r.Clone()
}

func (s *Store) Get(id types.ID) (*Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.Clone(), nil
}

func (s *Store) List() []*Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Request, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.requests[id].Clone())
	}
	return out
}

func (s *Store) Update(id types.ID, mutate func(*Request) error) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := cur.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.requests[id] = next
	return next.Clone(), nil
}

// CompletedCount reports how many of the customer's requests have
// finished; the referral rule adds this to delivered orders.
func (s *Store) CompletedCount(customerID types.ID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.requests {
		if r.CustomerID == customerID && r.Status == StatusCompleted {
			n++
		}
	}
	return n
}

// Jitter perturbs every actively shared coordinate and returns the
// resulting positions keyed by request ID.
func (s *Store) Jitter(perturb func(types.Point) types.Point) map[types.ID]types.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[types.ID]types.Point)
	for _, id := range s.order {
		r := s.requests[id]
		if !r.LocationSharingActive || r.LiveLocation == nil {
			continue
		}
		next := r.Clone()
		p := perturb(*next.LiveLocation)
		next.LiveLocation = &p
		s.requests[id] = next
		out[id] = p
	}
	return out
}
