// README: Service request aggregate, status lifecycle, complaint and bill sub-records.
package requests

import (
	"time"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

type Status string

const (
	StatusRequested      Status = "Requested"
	StatusAssigned       Status = "Technician Assigned"
	StatusEnRoute        Status = "En Route"
	StatusWorkInProgress Status = "Work in Progress"
	StatusPendingPayment Status = "Pending Payment"
	StatusCompleted      Status = "Completed"
	StatusCancelled      Status = "Cancelled"
)

type ServiceType string

const (
	TypeInstallation ServiceType = "Installation"
	TypeRepair       ServiceType = "Repair"
)

// AllowedTransitions encodes the request state flow.
var AllowedTransitions = map[Status][]Status{
	StatusRequested:      {StatusAssigned, StatusCancelled},
	StatusAssigned:       {StatusEnRoute, StatusWorkInProgress, StatusCancelled},
	StatusEnRoute:        {StatusWorkInProgress, StatusCancelled},
	StatusWorkInProgress: {StatusPendingPayment, StatusCancelled},
	StatusPendingPayment: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Complaint escalates along the admin sub-role ladder, starting at
// Receptionist. Resolution is one-way: no operation clears IsResolved.
type Complaint struct {
	ID               string             `json:"id"`
	Text             string             `json:"text"`
	IsResolved       bool               `json:"isResolved"`
	ResolutionRemark string             `json:"resolutionRemark,omitempty"`
	EscalationLevel  identity.AdminRole `json:"escalationLevel"`
	AISuggestion     string             `json:"aiSuggestion,omitempty"`
}

// Bill is immutable once paid; IsPaid flips false→true exactly once.
type Bill struct {
	ItemCharge    float64 `json:"itemCharge"`
	ServiceCharge float64 `json:"serviceCharge"`
	Discount      float64 `json:"discount"`
	OfferDiscount float64 `json:"offerDiscount,omitempty"`
	GST           float64 `json:"gst"`
	TotalAmount   float64 `json:"totalAmount"`
	IsPaid        bool    `json:"isPaid"`
}

type ChatMessage struct {
	SenderID  types.ID  `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type Request struct {
	ID             types.ID              `json:"id"`
	JobID          string                `json:"jobId"`
	CustomerID     types.ID              `json:"customerId"`
	CustomerName   string                `json:"customerName"`
	Description    string                `json:"description"`
	Category       types.ServiceCategory `json:"category"`
	ServiceType    ServiceType           `json:"serviceType"`
	Status         Status                `json:"status"`
	Location       string                `json:"location"`
	Address        types.Address         `json:"address"`
	MobileNumber   string                `json:"mobileNumber"`
	TechnicianID   types.ID              `json:"technicianId,omitempty"`
	TechnicianName string                `json:"technicianName,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	Rating         float64               `json:"rating,omitempty"`
	Feedback       string                `json:"feedback,omitempty"`
	ChatHistory    []ChatMessage         `json:"chatHistory,omitempty"`
	Complaint      *Complaint            `json:"complaint,omitempty"`
	Bill           *Bill                 `json:"bill,omitempty"`

	LocationSharingActive bool         `json:"isLocationSharingActive"`
	LiveLocation          *types.Point `json:"liveLocation,omitempty"`
}

func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	c := *r
	c.ChatHistory = append([]ChatMessage(nil), r.ChatHistory...)
	if r.Complaint != nil {
		cp := *r.Complaint
		c.Complaint = &cp
	}
	if r.Bill != nil {
		b := *r.Bill
		c.Bill = &b
	}
	if r.LiveLocation != nil {
		p := *r.LiveLocation
		c.LiveLocation = &p
	}
	return &c
}
