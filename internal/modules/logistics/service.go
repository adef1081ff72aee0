// README: Logistics service: request, assign, accept and advance delivery jobs of either kind.
package logistics

import (
	"errors"
	"time"

	"lodhi/internal/ids"
	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/market"
	"lodhi/internal/types"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidState = errors.New("invalid status transition")
	ErrNotPartner   = errors.New("acting user is not a delivery partner")
	ErrNotCustomer  = errors.New("acting user is not a customer")
	ErrNoShop       = errors.New("acting shopkeeper has no registered shop")
	ErrUnknownKind  = errors.New("unknown job kind")
	ErrNotTracking  = errors.New("job is not reporting a live location")
)

const (
	shopDeliveryFee  = 50.0
	packersMoversFee = 250.0
)

var trackingStart = types.Point{Lat: 26.2183, Lng: 78.1828}

type Users interface {
	Get(id types.ID) (*identity.User, error)
}

type Shops interface {
	GetShop(id types.ID) (*market.Shop, error)
}

type Service struct {
	store *Store
	users Users
	shops Shops
}

func NewService(store *Store, users Users, shops Shops) *Service {
	return &Service{store: store, users: users, shops: shops}
}

func (s *Service) Store() *Store { return s.store }

func (s *Service) ListShopDeliveries() []*Job[ShopDelivery] { return s.store.ShopDeliveries.List() }
func (s *Service) ListMoves() []*Job[PackersMovers]         { return s.store.Moves.List() }

type ShopDeliveryCommand struct {
	Destination types.Address
	ItemName    string
	ItemWeight  string
	Vehicle     identity.VehicleType
}

// RequestShopDelivery opens a parcel job for the actor's registered
// shop; the pickup address is always the shop's own.
func (s *Service) RequestShopDelivery(actorID types.ID, cmd ShopDeliveryCommand) (*Job[ShopDelivery], error) {
	actor, err := s.users.Get(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Shopkeeper == nil || actor.Shopkeeper.ShopID == "" {
		return nil, ErrNoShop
	}
	shop, err := s.shops.GetShop(actor.Shopkeeper.ShopID)
	if err != nil {
		return nil, err
	}
	j := &Job[ShopDelivery]{
		ID:          types.ID(ids.Delivery()),
		Status:      StatusRequested,
		Pickup:      shop.Address,
		Destination: cmd.Destination,
		ItemWeight:  cmd.ItemWeight,
		Vehicle:     cmd.Vehicle,
		Fee:         shopDeliveryFee,
		CreatedAt:   time.Now(),
		Detail: ShopDelivery{
			ShopID:   shop.ID,
			ShopName: shop.Name,
			ItemName: cmd.ItemName,
		},
	}
	s.store.ShopDeliveries.Create(j)
	return j.Clone(), nil
}

type PackersMoversCommand struct {
	Pickup      types.Address
	Destination types.Address
	ItemDetails string
	ItemWeight  string
	Vehicle     identity.VehicleType
}

// RequestPackersMovers opens a household move for the acting customer.
func (s *Service) RequestPackersMovers(actorID types.ID, cmd PackersMoversCommand) (*Job[PackersMovers], error) {
	actor, err := s.users.Get(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Customer == nil {
		return nil, ErrNotCustomer
	}
	j := &Job[PackersMovers]{
		ID:          types.ID(ids.PackersMovers()),
		Status:      StatusRequested,
		Pickup:      cmd.Pickup,
		Destination: cmd.Destination,
		ItemWeight:  cmd.ItemWeight,
		Vehicle:     cmd.Vehicle,
		Fee:         packersMoversFee,
		CreatedAt:   time.Now(),
		Detail: PackersMovers{
			CustomerID:   actor.ID,
			CustomerName: actor.Name,
			MobileNumber: actor.MobileNumber,
			ItemDetails:  cmd.ItemDetails,
		},
	}
	s.store.Moves.Create(j)
	return j.Clone(), nil
}

// assign attaches a partner while the job is still open.
func assign[D Detail](c *Collection[D], jobID types.ID, partner *identity.User) error {
	_, err := c.Update(jobID, func(j *Job[D]) error {
		if j.Status != StatusRequested && j.Status != StatusAssigned {
			return ErrInvalidState
		}
		j.PartnerID = partner.ID
		j.PartnerName = partner.Name
		j.Status = StatusAssigned
		return nil
	})
	return err
}

func advance[D Detail](c *Collection[D], jobID types.ID, to Status) error {
	_, err := c.Update(jobID, func(j *Job[D]) error {
		if !CanTransition(j.Status, to) {
			return ErrInvalidState
		}
		j.Status = to
		switch to {
		case StatusEnRoute:
			start := trackingStart
			j.LiveLocation = &start
		case StatusDelivered, StatusCancelled:
			j.LiveLocation = nil
		}
		return nil
	})
	return err
}

func setLocation[D Detail](c *Collection[D], jobID types.ID, pos types.Point) error {
	_, err := c.Update(jobID, func(j *Job[D]) error {
		if j.Status != StatusEnRoute || j.LiveLocation == nil {
			return ErrNotTracking
		}
		j.LiveLocation = &pos
		return nil
	})
	return err
}

func (s *Service) partner(id types.ID) (*identity.User, error) {
	u, err := s.users.Get(id)
	if err != nil {
		return nil, err
	}
	if u.Role != identity.RoleDeliveryPartner {
		return nil, ErrNotPartner
	}
	return u, nil
}

// AssignPartner hands a job of either kind to a delivery partner.
func (s *Service) AssignPartner(kind Kind, jobID, partnerID types.ID) error {
	partner, err := s.partner(partnerID)
	if err != nil {
		return err
	}
	switch kind {
	case KindShopDelivery:
		return assign(s.store.ShopDeliveries, jobID, partner)
	case KindPackersMovers:
		return assign(s.store.Moves, jobID, partner)
	default:
		return ErrUnknownKind
	}
}

// Accept lets a delivery partner claim an open job for themselves.
func (s *Service) Accept(kind Kind, jobID, actorID types.ID) error {
	return s.AssignPartner(kind, jobID, actorID)
}

// UpdateStatus advances the lifecycle; en-route jobs start reporting a
// live position from the fixed city-center coordinate.
func (s *Service) UpdateStatus(kind Kind, jobID types.ID, to Status) error {
	switch kind {
	case KindShopDelivery:
		return advance(s.store.ShopDeliveries, jobID, to)
	case KindPackersMovers:
		return advance(s.store.Moves, jobID, to)
	default:
		return ErrUnknownKind
	}
}

// SetLiveLocation applies an externally reported position while the job
// is en route.
func (s *Service) SetLiveLocation(kind Kind, jobID types.ID, pos types.Point) error {
	switch kind {
	case KindShopDelivery:
		return setLocation(s.store.ShopDeliveries, jobID, pos)
	case KindPackersMovers:
		return setLocation(s.store.Moves, jobID, pos)
	default:
		return ErrUnknownKind
	}
}
