// README: In-memory user store; every mutation replaces a whole record under the lock.
package identity

import (
	"sync"

	"lodhi/internal/types"
)

type Store struct {
	mu    sync.RWMutex
	users map[types.ID]*User
	order []types.ID
}

func NewStore() *Store {
	return &Store{users: make(map[types.ID]*User)}
}

func (s *Store) Create(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		s.order = append(s.order, u.ID)
	}
	s.users[u.ID] = u.Clone()
}

func (s *Store) Get(id types.ID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u.Clone(), nil
}

func (s *Store) GetByMobile(mobile string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		u := s.users[id]
		if u.MobileNumber == mobile {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// GetByReferralCode resolves a referrer from the code a customer signed
// up with.
func (s *Store) GetByReferralCode(code string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		u := s.users[id]
		if u.Customer != nil && u.Customer.ReferralCode == code {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) List() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id].Clone())
	}
	return out
}

// Update applies mutate to a private clone and republishes it as one
// atomic replacement. If mutate errors, the stored record is untouched.
func (s *Store) Update(id types.ID, mutate func(*User) error) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := cur.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.users[id] = next
	return next.Clone(), nil
}
