// README: Request service implements the mutation commands over the request store.
package requests

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"lodhi/internal/ids"
	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

var (
	ErrNotFound         = errors.New("service request not found")
	ErrBadRequest       = errors.New("bad request")
	ErrInvalidState     = errors.New("invalid status transition")
	ErrNoBill           = errors.New("request has no bill")
	ErrNoComplaint      = errors.New("request has no complaint")
	ErrTrackingInactive = errors.New("location sharing is not active")
	ErrNoSuggester      = errors.New("suggestion provider not configured")
	ErrNotCustomer      = errors.New("acting user is not a customer")
	ErrNotTechnician    = errors.New("acting user is not a technician")
)

const gstRate = 0.18

// trackingStart seeds live sharing at the city centre until the first
// real position arrives.
var trackingStart = types.Point{Lat: 26.2183, Lng: 78.1828}

// UserDirectory resolves acting users without importing their store's
// mutation surface.
type UserDirectory interface {
	Get(id types.ID) (*identity.User, error)
}

// Referrals is notified after a completion has been recorded.
type Referrals interface {
	CheckAndAward(customerID types.ID) error
}

// Suggester drafts a resolution hint for a complaint.
type Suggester interface {
	SuggestFix(ctx context.Context, complaint, description string, category types.ServiceCategory) (string, error)
}

type Service struct {
	store     *Store
	users     UserDirectory
	referrals Referrals
	suggester Suggester
	log       *zap.Logger
}

func NewService(store *Store, users UserDirectory, referrals Referrals, suggester Suggester, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, users: users, referrals: referrals, suggester: suggester, log: log}
}

func (s *Service) Store() *Store { return s.store }

func (s *Service) Get(id types.ID) (*Request, error) { return s.store.Get(id) }

func (s *Service) List() []*Request { return s.store.List() }

type CreateCommand struct {
	CustomerID   types.ID
	Description  string
	Category     types.ServiceCategory
	ServiceType  ServiceType
	Location     string
	Address      types.Address
	MobileNumber string
}

func (s *Service) Create(cmd CreateCommand) (*Request, error) {
	if cmd.CustomerID == "" || cmd.Category == "" {
		return nil, ErrBadRequest
	}
	customer, err := s.users.Get(cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.Customer == nil {
		return nil, ErrNotCustomer
	}
	mobile := cmd.MobileNumber
	if mobile == "" {
		mobile = customer.MobileNumber
	}
	r := &Request{
		ID:           types.ID("req_" + ids.Entity()),
		JobID:        ids.Job(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Description:  cmd.Description,
		Category:     cmd.Category,
		ServiceType:  cmd.ServiceType,
		Status:       StatusRequested,
		Location:     cmd.Location,
		Address:      cmd.Address,
		MobileNumber: mobile,
		CreatedAt:    time.Now(),
	}
	s.store.Create(r)
	return r.Clone(), nil
}

// AssignTechnician books the technician onto the request and marks it
// accepted.
func (s *Service) AssignTechnician(requestID, technicianID types.ID) error {
	tech, err := s.users.Get(technicianID)
	if err != nil {
		return err
	}
	if tech.Technician == nil {
		return ErrNotTechnician
	}
	_, err = s.store.Update(requestID, func(r *Request) error {
		r.TechnicianID = tech.ID
		r.TechnicianName = tech.Name
		r.Status = StatusAssigned
		return nil
	})
	return err
}

// UpdateStatus moves the request along the lifecycle table.
func (s *Service) UpdateStatus(requestID types.ID, to Status) error {
	_, err := s.store.Update(requestID, func(r *Request) error {
		if !CanTransition(r.Status, to) {
			return ErrInvalidState
		}
		r.Status = to
		return nil
	})
	return err
}

type IssueBillCommand struct {
	ItemCharge    float64
	ServiceCharge float64
	Discount      float64
	OfferDiscount float64
}

// IssueBill computes GST on the discounted charges and attaches the
// bill. Re-issuing overwrites an unpaid bill; a paid bill is final.
func (s *Service) IssueBill(requestID types.ID, cmd IssueBillCommand) error {
	_, err := s.store.Update(requestID, func(r *Request) error {
		if r.Bill != nil && r.Bill.IsPaid {
			return ErrInvalidState
		}
		taxable := cmd.ItemCharge + cmd.ServiceCharge - cmd.Discount - cmd.OfferDiscount
		r.Bill = &Bill{
			ItemCharge:    cmd.ItemCharge,
			ServiceCharge: cmd.ServiceCharge,
			Discount:      cmd.Discount,
			OfferDiscount: cmd.OfferDiscount,
			GST:           taxable * gstRate,
			TotalAmount:   taxable * (1 + gstRate),
			IsPaid:        false,
		}
		if CanTransition(r.Status, StatusPendingPayment) {
			r.Status = StatusPendingPayment
		}
		return nil
	})
	return err
}

// CompletePayment marks the bill paid and the request completed, then
// runs referral eligibility for the customer. Requires a bill.
func (s *Service) CompletePayment(requestID types.ID) error {
	updated, err := s.store.Update(requestID, func(r *Request) error {
		if r.Bill == nil {
			return ErrNoBill
		}
		r.Bill.IsPaid = true
		r.Status = StatusCompleted
		return nil
	})
	if err != nil {
		return err
	}
	if s.referrals != nil {
		if err := s.referrals.CheckAndAward(updated.CustomerID); err != nil {
			s.log.Warn("referral evaluation failed",
				zap.String("customerId", string(updated.CustomerID)),
				zap.Error(err))
		}
	}
	return nil
}

// FileComplaint attaches a fresh unresolved complaint at the lowest
// escalation tier, replacing any prior complaint.
func (s *Service) FileComplaint(requestID types.ID, text string) error {
	if text == "" {
		return ErrBadRequest
	}
	_, err := s.store.Update(requestID, func(r *Request) error {
		r.Complaint = &Complaint{
			ID:              ids.Complaint(),
			Text:            text,
			IsResolved:      false,
			EscalationLevel: identity.AdminReceptionist,
		}
		return nil
	})
	return err
}

func (s *Service) ResolveComplaint(requestID types.ID, remark string) error {
	_, err := s.store.Update(requestID, func(r *Request) error {
		if r.Complaint == nil {
			return ErrNoComplaint
		}
		r.Complaint.IsResolved = true
		r.Complaint.ResolutionRemark = remark
		return nil
	})
	return err
}

func (s *Service) EscalateComplaint(requestID types.ID, level identity.AdminRole) error {
	_, err := s.store.Update(requestID, func(r *Request) error {
		if r.Complaint == nil {
			return ErrNoComplaint
		}
		r.Complaint.EscalationLevel = level
		return nil
	})
	return err
}

// SuggestComplaintFix asks the AI provider for a triage hint and stores
// it on the complaint.
func (s *Service) SuggestComplaintFix(ctx context.Context, requestID types.ID) (string, error) {
	if s.suggester == nil {
		return "", ErrNoSuggester
	}
	r, err := s.store.Get(requestID)
	if err != nil {
		return "", err
	}
	if r.Complaint == nil {
		return "", ErrNoComplaint
	}
	hint, err := s.suggester.SuggestFix(ctx, r.Complaint.Text, r.Description, r.Category)
	if err != nil {
		return "", err
	}
	_, err = s.store.Update(requestID, func(r *Request) error {
		if r.Complaint == nil {
			return ErrNoComplaint
		}
		r.Complaint.AISuggestion = hint
		return nil
	})
	return hint, err
}

// Rate records the customer's score once the work is done.
func (s *Service) Rate(requestID types.ID, rating float64, feedback string) error {
	_, err := s.store.Update(requestID, func(r *Request) error {
		if r.Status != StatusCompleted {
			return ErrInvalidState
		}
		r.Rating = rating
		r.Feedback = feedback
		return nil
	})
	return err
}

func (s *Service) SendMessage(requestID, senderID types.ID, text string) error {
	if text == "" {
		return ErrBadRequest
	}
	_, err := s.store.Update(requestID, func(r *Request) error {
		r.ChatHistory = append(r.ChatHistory, ChatMessage{
			SenderID:  senderID,
			Text:      text,
			Timestamp: time.Now(),
		})
		return nil
	})
	return err
}

// ToggleLocationSharing seeds the start coordinate when enabling and
// clears it when disabling.
func (s *Service) ToggleLocationSharing(requestID types.ID, active bool) error {
	_, err := s.store.Update(requestID, func(r *Request) error {
		r.LocationSharingActive = active
		if active {
			start := trackingStart
			r.LiveLocation = &start
		} else {
			r.LiveLocation = nil
		}
		return nil
	})
	return err
}

// SetLiveLocation applies an externally reported position while sharing
// is on.
func (s *Service) SetLiveLocation(requestID types.ID, pos types.Point) error {
	_, err := s.store.Update(requestID, func(r *Request) error {
		if !r.LocationSharingActive {
			return ErrTrackingInactive
		}
		r.LiveLocation = &pos
		return nil
	})
	return err
}
