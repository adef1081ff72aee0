// README: Marketplace aggregates: shops, products, orders with purchase-time snapshots.
package market

import (
	"time"

	"lodhi/internal/types"
)

type OrderStatus string

const (
	OrderPlaced         OrderStatus = "Placed"
	OrderShipped        OrderStatus = "Shipped"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

// AllowedTransitions encodes the order state flow.
var AllowedTransitions = map[OrderStatus][]OrderStatus{
	OrderPlaced:         {OrderShipped, OrderCancelled},
	OrderShipped:        {OrderOutForDelivery, OrderDelivered, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered, OrderCancelled},
}

func CanTransition(from, to OrderStatus) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type PaymentMode string

const (
	PaymentCOD     PaymentMode = "Cash on Delivery"
	PaymentDigital PaymentMode = "Digital Payment"
	PaymentAdvance PaymentMode = "Advance Payment"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

type DeliveryStatus string

const (
	DeliveryAwaitingAssignment DeliveryStatus = "Awaiting Assignment"
	DeliveryAssigned           DeliveryStatus = "Assigned"
	DeliveryPickingUp          DeliveryStatus = "Picking Up"
	DeliveryEnRoute            DeliveryStatus = "En Route"
	DeliveryDelivered          DeliveryStatus = "Delivered"
)

type ProductQuality string

const (
	QualityBasic    ProductQuality = "Basic"
	QualityStandard ProductQuality = "Standard"
	QualityPremium  ProductQuality = "Premium"
)

type Warranty struct {
	Duration string `json:"duration"`
	Type     string `json:"type"` // Replacement | Repair
	Mode     string `json:"mode"` // Online | Offline
}

type Product struct {
	ID              types.ID              `json:"id"`
	ShopID          types.ID              `json:"shopId"`
	ShopName        string                `json:"shopName"`
	Name            string                `json:"name"`
	Category        types.ServiceCategory `json:"category"`
	Price           float64               `json:"price"`
	Description     string                `json:"description"`
	Warranty        Warranty              `json:"warranty"`
	Discount        float64               `json:"discount,omitempty"` // percentage
	HasHomeDelivery bool                  `json:"hasHomeDelivery"`
	Quality         ProductQuality        `json:"quality"`
	ImageURL        string                `json:"imageUrl"`
	Stock           int                   `json:"stock"`
}

// ShopPerformance keeps two independent running averages: one fed by
// customers, one by delivery partners.
type ShopPerformance struct {
	CustomerRating types.Rating `json:"customerRating"`
	PartnerRating  types.Rating `json:"partnerRating"`
	ItemReturnRate float64      `json:"itemReturnRate"`
	RecentFeedback []string     `json:"recentFeedback"`
}

type Shop struct {
	ID              types.ID        `json:"id"`
	OwnerID         types.ID        `json:"ownerId"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Address         types.Address   `json:"address"`
	Rating          float64         `json:"rating"`
	RatingCount     int             `json:"ratingCount"`
	IsVerified      bool            `json:"isVerified"`
	IsGSTRegistered bool            `json:"isGstRegistered"`
	GSTNumber       string          `json:"gstNumber,omitempty"`
	Performance     ShopPerformance `json:"performance"`
}

func (s *Shop) Clone() *Shop {
	if s == nil {
		return nil
	}
	c := *s
	c.Performance.RecentFeedback = append([]string(nil), s.Performance.RecentFeedback...)
	return &c
}

type OrderPayment struct {
	Mode            PaymentMode   `json:"mode"`
	Status          PaymentStatus `json:"status"`
	DiscountApplied float64       `json:"discountApplied,omitempty"`
}

type TaxBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// OrderBill is derived from TotalAmount; regenerating overwrites it.
type OrderBill struct {
	WithGST    TaxBreakdown `json:"withGst"`
	WithoutGST TaxBreakdown `json:"withoutGst"`
}

type OrderDelivery struct {
	PartnerID   types.ID       `json:"partnerId"`
	PartnerName string         `json:"partnerName"`
	Status      DeliveryStatus `json:"status"`
	Fee         float64        `json:"fee"`
}

// Order embeds copies of the product and shop as they were at purchase
// time; later edits to the live records never reach a placed order.
type Order struct {
	ID                   types.ID       `json:"id"`
	CustomerID           types.ID       `json:"customerId"`
	CustomerName         string         `json:"customerName"`
	Product              Product        `json:"product"`
	Shop                 Shop           `json:"shop"`
	Status               OrderStatus    `json:"status"`
	OrderDate            time.Time      `json:"orderDate"`
	BillingAddress       types.Address  `json:"billingAddress"`
	TotalAmount          float64        `json:"totalAmount"`
	Payment              OrderPayment   `json:"payment"`
	Bill                 *OrderBill     `json:"bill,omitempty"`
	Delivery             *OrderDelivery `json:"delivery,omitempty"`
	IsExperienceRated    bool           `json:"isExperienceRated"`
	IsShopRatedByPartner bool           `json:"isShopRatedByPartner"`

	DeliveryTrackable    bool         `json:"isDeliveryTrackable"`
	LiveDeliveryLocation *types.Point `json:"liveDeliveryLocation,omitempty"`
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.Shop.Performance.RecentFeedback = append([]string(nil), o.Shop.Performance.RecentFeedback...)
	if o.Bill != nil {
		b := *o.Bill
		c.Bill = &b
	}
	if o.Delivery != nil {
		d := *o.Delivery
		c.Delivery = &d
	}
	if o.LiveDeliveryLocation != nil {
		p := *o.LiveDeliveryLocation
		c.LiveDeliveryLocation = &p
	}
	return &c
}
