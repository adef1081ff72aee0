// README: Marketplace service: shop registration, purchases, bills, delivery projection, ratings.
package market

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"lodhi/internal/ids"
	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrBadRequest      = errors.New("bad request")
	ErrInvalidState    = errors.New("invalid status transition")
	ErrNotShopkeeper   = errors.New("acting user is not a shopkeeper")
	ErrNoDelivery      = errors.New("order has no delivery")
	ErrNotPartner      = errors.New("acting user is not a delivery partner")
	ErrNotCustomer     = errors.New("acting user is not a customer")
	ErrTrackingOff     = errors.New("delivery tracking is not active")
)

const (
	gstRate = 0.18
	// advanceDiscount is the flat incentive for paying up front.
	advanceDiscount = 40.0
)

var trackingStart = types.Point{Lat: 26.2183, Lng: 78.1828}

// Users lets the marketplace resolve actors and update the records it
// co-owns a change with (shopkeeper registration, partner ratings).
type Users interface {
	Get(id types.ID) (*identity.User, error)
	Update(id types.ID, mutate func(*identity.User) error) (*identity.User, error)
}

// Referrals is notified after a delivery has been recorded.
type Referrals interface {
	CheckAndAward(customerID types.ID) error
}

type Service struct {
	store     *Store
	users     Users
	referrals Referrals
	log       *zap.Logger
}

func NewService(store *Store, users Users, referrals Referrals, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, users: users, referrals: referrals, log: log}
}

func (s *Service) Store() *Store { return s.store }

func (s *Service) GetShop(id types.ID) (*Shop, error)       { return s.store.GetShop(id) }
func (s *Service) ListShops() []*Shop                       { return s.store.ListShops() }
func (s *Service) GetProduct(id types.ID) (*Product, error) { return s.store.GetProduct(id) }
func (s *Service) ListProducts() []*Product                 { return s.store.ListProducts() }
func (s *Service) GetOrder(id types.ID) (*Order, error)     { return s.store.GetOrder(id) }
func (s *Service) ListOrders() []*Order                     { return s.store.ListOrders() }

type RegisterShopCommand struct {
	Name            string
	Location        string
	Address         types.Address
	IsGSTRegistered bool
	GSTNumber       string
}

// RegisterShop creates the shop and flips the owner's registration flag
// as one unit; a half-applied state never survives the call.
func (s *Service) RegisterShop(ownerID types.ID, cmd RegisterShopCommand) (*Shop, error) {
	if cmd.Name == "" {
		return nil, ErrBadRequest
	}
	owner, err := s.users.Get(ownerID)
	if err != nil {
		return nil, err
	}
	if owner.Role != identity.RoleShopkeeper || owner.Shopkeeper == nil {
		return nil, ErrNotShopkeeper
	}
	sh := &Shop{
		ID:              types.ID("shop_" + ids.Entity()),
		OwnerID:         owner.ID,
		Name:            cmd.Name,
		Location:        cmd.Location,
		Address:         cmd.Address,
		IsGSTRegistered: cmd.IsGSTRegistered,
		GSTNumber:       cmd.GSTNumber,
		Performance:     ShopPerformance{RecentFeedback: []string{}},
	}
	s.store.CreateShop(sh)
	if _, err := s.users.Update(ownerID, func(u *identity.User) error {
		if u.Shopkeeper == nil {
			return ErrNotShopkeeper
		}
		u.Shopkeeper.HasRegisteredShop = true
		u.Shopkeeper.ShopID = sh.ID
		return nil
	}); err != nil {
		s.store.removeShop(sh.ID)
		return nil, err
	}
	return sh.Clone(), nil
}

func (s *Service) VerifyShop(shopID types.ID, verified bool) error {
	_, err := s.store.UpdateShop(shopID, func(sh *Shop) error {
		sh.IsVerified = verified
		return nil
	})
	return err
}

// UpsertProduct adds or replaces a product, denormalizing the shop name
// onto it the way every read path expects.
func (s *Service) UpsertProduct(p Product) (*Product, error) {
	sh, err := s.store.GetShop(p.ShopID)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = types.ID("prod_" + ids.Entity())
	}
	p.ShopName = sh.Name
	s.store.UpsertProduct(&p)
	return &p, nil
}

type BuyCommand struct {
	ProductID      types.ID
	BillingAddress types.Address
	PaymentMode    PaymentMode
}

// Buy prices the product (percentage discount, then the flat advance
// discount) and creates an order holding purchase-time copies of the
// product and shop.
func (s *Service) Buy(customerID types.ID, cmd BuyCommand) (*Order, error) {
	customer, err := s.users.Get(customerID)
	if err != nil {
		return nil, err
	}
	if customer.Customer == nil {
		return nil, ErrNotCustomer
	}
	product, err := s.store.GetProduct(cmd.ProductID)
	if err != nil {
		return nil, err
	}
	shop, err := s.store.GetShop(product.ShopID)
	if err != nil {
		return nil, err
	}

	base := product.Price * (1 - product.Discount/100)
	var flat float64
	if cmd.PaymentMode == PaymentAdvance {
		flat = advanceDiscount
	}
	status := PaymentPending
	if cmd.PaymentMode == PaymentAdvance {
		status = PaymentPaid
	}

	o := &Order{
		ID:             types.ID(ids.Order()),
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		Product:        *product,
		Shop:           *shop.Clone(),
		Status:         OrderPlaced,
		OrderDate:      time.Now(),
		BillingAddress: cmd.BillingAddress,
		TotalAmount:    base - flat,
		Payment: OrderPayment{
			Mode:            cmd.PaymentMode,
			Status:          status,
			DiscountApplied: flat,
		},
	}
	s.store.CreateOrder(o)
	return o.Clone(), nil
}

// GenerateBill derives both tax views from the order total. Recomputing
// overwrites the previous bill wholesale.
func (s *Service) GenerateBill(orderID types.ID) error {
	_, err := s.store.UpdateOrder(orderID, func(o *Order) error {
		subtotal := o.TotalAmount
		o.Bill = &OrderBill{
			WithGST: TaxBreakdown{
				Subtotal: subtotal,
				GST:      subtotal * gstRate,
				Total:    subtotal * (1 + gstRate),
			},
			WithoutGST: TaxBreakdown{
				Subtotal: subtotal,
				GST:      0,
				Total:    subtotal,
			},
		}
		return nil
	})
	return err
}

// UpdateStatus moves the order along the lifecycle table and runs
// referral eligibility once a delivery lands.
func (s *Service) UpdateStatus(orderID types.ID, to OrderStatus) error {
	updated, err := s.store.UpdateOrder(orderID, func(o *Order) error {
		if !CanTransition(o.Status, to) {
			return ErrInvalidState
		}
		o.Status = to
		return nil
	})
	if err != nil {
		return err
	}
	if to == OrderDelivered && s.referrals != nil {
		if err := s.referrals.CheckAndAward(updated.CustomerID); err != nil {
			s.log.Warn("referral evaluation failed",
				zap.String("customerId", string(updated.CustomerID)),
				zap.Error(err))
		}
	}
	return nil
}

// AssignDeliveryPartner attaches a partner to the order's delivery.
func (s *Service) AssignDeliveryPartner(orderID, partnerID types.ID) error {
	partner, err := s.users.Get(partnerID)
	if err != nil {
		return err
	}
	if partner.Role != identity.RoleDeliveryPartner {
		return ErrNotPartner
	}
	_, err = s.store.UpdateOrder(orderID, func(o *Order) error {
		var fee float64
		if o.Delivery != nil {
			fee = o.Delivery.Fee
		}
		o.Delivery = &OrderDelivery{
			PartnerID:   partner.ID,
			PartnerName: partner.Name,
			Status:      DeliveryAssigned,
			Fee:         fee,
		}
		return nil
	})
	return err
}

// UpdateDeliveryStatus advances the delivery leg and projects terminal
// legs onto the order itself: Delivered ⇒ order Delivered, En Route ⇒
// Out for Delivery, anything else leaves the order status alone.
func (s *Service) UpdateDeliveryStatus(orderID types.ID, status DeliveryStatus) error {
	updated, err := s.store.UpdateOrder(orderID, func(o *Order) error {
		if o.Delivery == nil {
			return ErrNoDelivery
		}
		o.Delivery.Status = status
		switch status {
		case DeliveryDelivered:
			o.Status = OrderDelivered
		case DeliveryEnRoute:
			o.Status = OrderOutForDelivery
		}
		return nil
	})
	if err != nil {
		return err
	}
	if status == DeliveryDelivered && s.referrals != nil {
		if err := s.referrals.CheckAndAward(updated.CustomerID); err != nil {
			s.log.Warn("referral evaluation failed",
				zap.String("customerId", string(updated.CustomerID)),
				zap.Error(err))
		}
	}
	return nil
}

// RateExperience folds the customer's scores into the shop's (and, when
// one is attached, the delivery partner's) running averages, prepends
// the comment to each feedback list, and marks the order rated. All
// parties are validated before anything is written so the updates land
// together.
func (s *Service) RateExperience(orderID types.ID, shopRating, partnerRating float64, comment string) error {
	o, err := s.store.GetOrder(orderID)
	if err != nil {
		return err
	}
	if _, err := s.store.GetShop(o.Shop.ID); err != nil {
		return err
	}
	var partnerID types.ID
	if o.Delivery != nil && o.Delivery.PartnerID != "" {
		partnerID = o.Delivery.PartnerID
		if _, err := s.users.Get(partnerID); err != nil {
			return err
		}
	}

	if _, err := s.store.UpdateShop(o.Shop.ID, func(sh *Shop) error {
		sh.Performance.CustomerRating = sh.Performance.CustomerRating.Add(shopRating)
		sh.Performance.RecentFeedback = types.PrependFeedback(sh.Performance.RecentFeedback, comment)
		return nil
	}); err != nil {
		return err
	}
	if partnerID != "" {
		if _, err := s.users.Update(partnerID, func(u *identity.User) error {
			if u.DeliveryPartner == nil {
				return ErrNotPartner
			}
			u.DeliveryPartner.Performance.CustomerRating = u.DeliveryPartner.Performance.CustomerRating.Add(partnerRating)
			u.DeliveryPartner.Performance.RecentFeedback = types.PrependFeedback(u.DeliveryPartner.Performance.RecentFeedback, comment)
			return nil
		}); err != nil {
			return err
		}
	}
	_, err = s.store.UpdateOrder(orderID, func(o *Order) error {
		o.IsExperienceRated = true
		return nil
	})
	return err
}

// RateShopByPartner feeds the partner-side running average only.
func (s *Service) RateShopByPartner(orderID types.ID, rating float64) error {
	o, err := s.store.GetOrder(orderID)
	if err != nil {
		return err
	}
	if _, err := s.store.UpdateShop(o.Shop.ID, func(sh *Shop) error {
		sh.Performance.PartnerRating = sh.Performance.PartnerRating.Add(rating)
		return nil
	}); err != nil {
		return err
	}
	_, err = s.store.UpdateOrder(orderID, func(o *Order) error {
		o.IsShopRatedByPartner = true
		return nil
	})
	return err
}

// ToggleDeliveryTracking seeds the start coordinate when enabling and
// clears it when disabling.
func (s *Service) ToggleDeliveryTracking(orderID types.ID, active bool) error {
	_, err := s.store.UpdateOrder(orderID, func(o *Order) error {
		o.DeliveryTrackable = active
		if active {
			start := trackingStart
			o.LiveDeliveryLocation = &start
		} else {
			o.LiveDeliveryLocation = nil
		}
		return nil
	})
	return err
}

// SetLiveDeliveryLocation applies an externally reported position while
// tracking is on.
func (s *Service) SetLiveDeliveryLocation(orderID types.ID, pos types.Point) error {
	_, err := s.store.UpdateOrder(orderID, func(o *Order) error {
		if !o.DeliveryTrackable {
			return ErrTrackingOff
		}
		o.LiveDeliveryLocation = &pos
		return nil
	})
	return err
}
