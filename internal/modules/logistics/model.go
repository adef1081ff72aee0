// README: Logistics job model: one generic lifecycle over shop deliveries and packers & movers.
package logistics

import (
	"time"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

type Status string

const (
	StatusRequested Status = "Requested"
	StatusAssigned  Status = "Assigned"
	StatusPickingUp Status = "Picking Up"
	StatusEnRoute   Status = "En Route"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// AllowedTransitions is the job lifecycle. Terminal states have no
// outgoing edges.
var AllowedTransitions = map[Status][]Status{
	StatusRequested: {StatusAssigned, StatusCancelled},
	StatusAssigned:  {StatusPickingUp, StatusEnRoute, StatusCancelled},
	StatusPickingUp: {StatusEnRoute, StatusCancelled},
	StatusEnRoute:   {StatusDelivered, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Kind selects which job collection an operation targets.
type Kind string

const (
	KindShopDelivery  Kind = "shop"
	KindPackersMovers Kind = "packersMovers"
)

// ShopDelivery is the payload of a shop-to-customer parcel run.
type ShopDelivery struct {
	ShopID   types.ID
	ShopName string
	ItemName string
}

// PackersMovers is the payload of a household move.
type PackersMovers struct {
	CustomerID   types.ID
	CustomerName string
	MobileNumber string
	ItemDetails  string
}

// Detail is the set of payloads a Job can carry.
type Detail interface {
	ShopDelivery | PackersMovers
}

// Job is the shared lifecycle record; everything kind-specific lives in
// Detail.
type Job[D Detail] struct {
	ID           types.ID
	Status       Status
	Pickup       types.Address
	Destination  types.Address
	ItemWeight   string
	Vehicle      identity.VehicleType
	Fee          float64
	PartnerID    types.ID
	PartnerName  string
	CreatedAt    time.Time
	LiveLocation *types.Point
	Detail       D
}

func (j *Job[D]) Clone() *Job[D] {
	out := *j
	if j.LiveLocation != nil {
		loc := *j.LiveLocation
		out.LiveLocation = &loc
	}
	return &out
}
