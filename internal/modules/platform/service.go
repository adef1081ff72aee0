// README: Platform service: commands over the shared configuration collections.
package platform

import (
	"fmt"
	"time"

	"lodhi/internal/ids"
	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

type Users interface {
	Get(id types.ID) (*identity.User, error)
}

type Service struct {
	store *Store
	users Users
}

func NewService(store *Store, users Users) *Service {
	return &Service{store: store, users: users}
}

func (s *Service) Store() *Store { return s.store }

func (s *Service) Prices() []PriceEntry              { return s.store.Prices() }
func (s *Service) Offers() []Offer                   { return s.store.Offers() }
func (s *Service) Videos() []TrainingVideo           { return s.store.Videos() }
func (s *Service) SupportMessages() []SupportMessage { return s.store.SupportMessages() }
func (s *Service) Incentives() []IncentiveProgram    { return s.store.Incentives() }
func (s *Service) Expenses() []identity.Expense      { return s.store.Expenses() }
func (s *Service) Targets() []ExpenseTarget          { return s.store.Targets() }

func (s *Service) UpdatePrice(category types.ServiceCategory, price float64) error {
	if price < 0 {
		return ErrBadRequest
	}
	return s.store.UpdatePrice(category, price)
}

func (s *Service) UpsertOffer(o Offer) (Offer, error) {
	if o.Title == "" {
		return Offer{}, ErrBadRequest
	}
	if o.ID == "" {
		o.ID = types.ID("offer_" + ids.Entity())
	}
	s.store.UpsertOffer(o)
	return o, nil
}

func (s *Service) AddVideo(v TrainingVideo) (TrainingVideo, error) {
	if v.Title == "" || v.VideoURL == "" {
		return TrainingVideo{}, ErrBadRequest
	}
	v.ID = types.ID(fmt.Sprintf("vid_%d", time.Now().UnixMilli()))
	s.store.PrependVideo(v)
	return v, nil
}

// SendSupportMessage appends to the shared support thread. Admin
// senders are labelled so the thread reads unambiguously.
func (s *Service) SendSupportMessage(senderID types.ID, text string) (SupportMessage, error) {
	if text == "" {
		return SupportMessage{}, ErrBadRequest
	}
	sender, err := s.users.Get(senderID)
	if err != nil {
		return SupportMessage{}, err
	}
	name := sender.Name
	if sender.Role == identity.RoleAdmin {
		name = sender.Name + " (Admin)"
	}
	m := SupportMessage{
		ID:         types.ID(fmt.Sprintf("msg_%d", time.Now().UnixMilli())),
		SenderID:   sender.ID,
		SenderName: name,
		Text:       text,
		Timestamp:  time.Now(),
	}
	s.store.AppendSupportMessage(m)
	return m, nil
}

func (s *Service) UpsertIncentive(p IncentiveProgram) (IncentiveProgram, error) {
	if p.Name == "" {
		return IncentiveProgram{}, ErrBadRequest
	}
	if p.ID == "" {
		p.ID = types.ID("inc_" + ids.Entity())
	}
	s.store.UpsertIncentive(p)
	return p, nil
}

func (s *Service) AddExpense(e identity.Expense) (identity.Expense, error) {
	if e.Amount <= 0 {
		return identity.Expense{}, ErrBadRequest
	}
	e.ID = "exp_" + ids.Entity()
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	s.store.AppendExpense(e)
	return e, nil
}

func (s *Service) UpsertTarget(t ExpenseTarget) {
	s.store.UpsertTarget(t)
}
