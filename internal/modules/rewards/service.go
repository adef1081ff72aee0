// README: Referral rewards: award the referrer once, on the referred customer's first completion.
package rewards

import (
	"fmt"
	"time"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

const (
	referralPoints = 1000
	referralBonus  = 1000.0
)

type Users interface {
	Get(id types.ID) (*identity.User, error)
	GetByReferralCode(code string) (*identity.User, error)
	Update(id types.ID, mutate func(*identity.User) error) (*identity.User, error)
}

// CompletionCount reports how many completed transactions a customer
// has in one collection. Method values from the request and order
// stores plug in here.
type CompletionCount func(customerID types.ID) int

type Service struct {
	users  Users
	counts []CompletionCount
}

func NewService(users Users, counts ...CompletionCount) *Service {
	return &Service{users: users, counts: counts}
}

// CheckAndAward runs after a completion has been recorded. It is a
// no-op unless this was the customer's first-ever completed
// transaction across all collections; in that case the referrer gets
// 1000 loyalty points and a 1000 wallet credit in one update, the
// customer is appended to their successful referrals, and the tier is
// recomputed. Calling it again for the same customer awards nothing.
func (s *Service) CheckAndAward(customerID types.ID) error {
	customer, err := s.users.Get(customerID)
	if err != nil {
		return err
	}
	if customer.Customer == nil || customer.Customer.ReferredBy == "" {
		return nil
	}
	total := 0
	for _, count := range s.counts {
		total += count(customerID)
	}
	// The completion that triggered this call is already recorded, so
	// anything past one means the customer had completed before.
	if total > 1 {
		return nil
	}
	referrer, err := s.users.GetByReferralCode(customer.Customer.ReferredBy)
	if err != nil {
		return nil
	}
	_, err = s.users.Update(referrer.ID, func(u *identity.User) error {
		if u.Customer == nil {
			return nil
		}
		u.Customer.Loyalty.Points += referralPoints
		u.Customer.Loyalty.Tier = identity.UpgradeTier(u.Customer.Loyalty.Tier, u.Customer.Loyalty.Points)

		if u.Wallet == nil {
			u.Wallet = &identity.Wallet{}
		}
		u.Wallet.Balance += referralBonus
		u.Wallet.Transactions = append(u.Wallet.Transactions, identity.Transaction{
			ID:          fmt.Sprintf("txn_ref_%d", time.Now().UnixMilli()),
			Date:        time.Now(),
			Amount:      referralBonus,
			Description: fmt.Sprintf("Referral bonus for %s", customer.Name),
			Source:      identity.SourceReferralBonus,
		})

		u.Customer.SuccessfulReferrals = append(u.Customer.SuccessfulReferrals, customer.ID)
		return nil
	})
	return err
}
