// README: In-memory marketplace store: shops, products, orders.
package market

import (
	"sync"

	"lodhi/internal/types"
)

type Store struct {
	mu         sync.RWMutex
	shops      map[types.ID]*Shop
	shopOrder  []types.ID
	products   map[types.ID]*Product
	prodOrder  []types.ID
	orders     map[types.ID]*Order
	orderOrder []types.ID
}

func NewStore() *Store {
	return &Store{
		shops:    make(map[types.ID]*Shop),
		products: make(map[types.ID]*Product),
		orders:   make(map[types.ID]*Order),
	}
}

func (s *Store) CreateShop(sh *Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shops[sh.ID]; !ok {
		s.shopOrder = append(s.shopOrder, sh.ID)
	}
	s.shops[sh.ID] = sh.Clone()
}

// removeShop undoes a registration whose paired user update failed.
func (s *Store) removeShop(id types.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shops[id]; !ok {
		return
	}
	delete(s.shops, id)
	for i, sid := range s.shopOrder {
		if sid == id {
			s.shopOrder = append(s.shopOrder[:i], s.shopOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) GetShop(id types.ID) (*Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.shops[id]
	if !ok {
		return nil, ErrShopNotFound
	}
	return sh.Clone(), nil
}

func (s *Store) ListShops() []*Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Shop, 0, len(s.shopOrder))
	for _, id := range s.shopOrder {
		out = append(out, s.shops[id].Clone())
	}
	return out
}

func (s *Store) UpdateShop(id types.ID, mutate func(*Shop) error) (*Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.shops[id]
	if !ok {
		return nil, ErrShopNotFound
	}
	next := cur.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.shops[id] = next
	return next.Clone(), nil
}

func (s *Store) UpsertProduct(p *Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		s.prodOrder = append(s.prodOrder, p.ID)
	}
	cp := *p
	s.products[p.ID] = &cp
}

func (s *Store) GetProduct(id types.ID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListProducts() []*Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Product, 0, len(s.prodOrder))
	for _, id := range s.prodOrder {
		cp := *s.products[id]
		out = append(out, &cp)
	}
	return out
}

func (s *Store) CreateOrder(o *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; !ok {
		s.orderOrder = append(s.orderOrder, o.ID)
	}
	s.orders[o.ID] = o.Clone()
}

func (s *Store) GetOrder(id types.ID) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (s *Store) ListOrders() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Order, 0, len(s.orderOrder))
	for _, id := range s.orderOrder {
		out = append(out, s.orders[id].Clone())
	}
	return out
}

func (s *Store) UpdateOrder(id types.ID, mutate func(*Order) error) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	next := cur.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.orders[id] = next
	return next.Clone(), nil
}

// DeliveredCount reports the customer's delivered orders for the
// referral rule.
func (s *Store) DeliveredCount(customerID types.ID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, o := range s.orders {
		if o.CustomerID == customerID && o.Status == OrderDelivered {
			n++
		}
	}
	return n
}

// Jitter perturbs every trackable delivery coordinate and returns the
// resulting positions keyed by order ID.
func (s *Store) Jitter(perturb func(types.Point) types.Point) map[types.ID]types.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[types.ID]types.Point)
	for _, id := range s.orderOrder {
		o := s.orders[id]
		if !o.DeliveryTrackable || o.LiveDeliveryLocation == nil {
			continue
		}
		next := o.Clone()
		p := perturb(*next.LiveDeliveryLocation)
		next.LiveDeliveryLocation = &p
		s.orders[id] = next
		out[id] = p
	}
	return out
}
