// README: In-memory platform store; every collection hands out copies.
package platform

import (
	"errors"
	"sync"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

var (
	ErrUnknownCategory = errors.New("no price entry for category")
	ErrBadRequest      = errors.New("bad request")
)

type Store struct {
	mu         sync.RWMutex
	prices     []PriceEntry
	offers     []Offer
	messages   []SupportMessage
	videos     []TrainingVideo
	incentives []IncentiveProgram
	expenses   []identity.Expense
	targets    []ExpenseTarget
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Prices() []PriceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]PriceEntry(nil), s.prices...)
}

func (s *Store) SetPrices(entries []PriceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices = append([]PriceEntry(nil), entries...)
}

// UpdatePrice rewrites an existing entry; unknown categories are an
// error rather than an implicit insert.
func (s *Store) UpdatePrice(category types.ServiceCategory, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.prices {
		if s.prices[i].Category == category {
			s.prices[i].Price = price
			return nil
		}
	}
	return ErrUnknownCategory
}

func (s *Store) Offers() []Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Offer(nil), s.offers...)
}

func (s *Store) UpsertOffer(o Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.offers {
		if s.offers[i].ID == o.ID {
			s.offers[i] = o
			return
		}
	}
	s.offers = append(s.offers, o)
}

func (s *Store) SupportMessages() []SupportMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SupportMessage(nil), s.messages...)
}

func (s *Store) AppendSupportMessage(m SupportMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// Videos lists training videos newest first.
func (s *Store) Videos() []TrainingVideo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]TrainingVideo(nil), s.videos...)
}

func (s *Store) PrependVideo(v TrainingVideo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append([]TrainingVideo{v}, s.videos...)
}

func (s *Store) Incentives() []IncentiveProgram {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]IncentiveProgram(nil), s.incentives...)
}

func (s *Store) UpsertIncentive(p IncentiveProgram) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.incentives {
		if s.incentives[i].ID == p.ID {
			s.incentives[i] = p
			return
		}
	}
	s.incentives = append(s.incentives, p)
}

func (s *Store) Expenses() []identity.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]identity.Expense(nil), s.expenses...)
}

func (s *Store) AppendExpense(e identity.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

func (s *Store) Targets() []ExpenseTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ExpenseTarget(nil), s.targets...)
}

func (s *Store) UpsertTarget(t ExpenseTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.targets {
		if s.targets[i].Category == t.Category {
			s.targets[i] = t
			return
		}
	}
	s.targets = append(s.targets, t)
}
