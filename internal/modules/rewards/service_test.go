package rewards

import (
	"strings"
	"testing"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

func seededUsers() *identity.Store {
	s := identity.NewStore()
	s.Create(&identity.User{
		ID: "cust1", Name: "Alice", Role: identity.RoleCustomer,
		Customer: &identity.CustomerProfile{
			Loyalty:      identity.Loyalty{Points: 2500, Tier: identity.TierSilver},
			ReferralCode: "LODHI-ALICE1",
		},
		Wallet: &identity.Wallet{Balance: 100},
	})
	s.Create(&identity.User{
		ID: "cust3", Name: "Jane", Role: identity.RoleCustomer,
		Customer: &identity.CustomerProfile{
			ReferralCode: "LODHI-JANE01",
			ReferredBy:   "LODHI-ALICE1",
		},
	})
	s.Create(&identity.User{
		ID: "cust2", Name: "Mark", Role: identity.RoleCustomer,
		Customer: &identity.CustomerProfile{ReferralCode: "LODHI-MARK01"},
	})
	return s
}

// fixedCount pretends the customer has n completed transactions.
func fixedCount(n int) CompletionCount {
	return func(types.ID) int { return n }
}

func TestFirstCompletionAwardsReferrer(t *testing.T) {
	users := seededUsers()
	svc := NewService(users, fixedCount(1))

	if err := svc.CheckAndAward("cust3"); err != nil {
		t.Fatal(err)
	}

	alice, _ := users.Get("cust1")
	if alice.Customer.Loyalty.Points != 3500 {
		t.Errorf("points = %d, want 3500", alice.Customer.Loyalty.Points)
	}
	if alice.Customer.Loyalty.Tier != identity.TierSilver {
		t.Errorf("tier = %s, want unchanged Silver below the gold threshold", alice.Customer.Loyalty.Tier)
	}
	if alice.Wallet.Balance != 1100 {
		t.Errorf("wallet = %v, want 1100", alice.Wallet.Balance)
	}
	if len(alice.Wallet.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(alice.Wallet.Transactions))
	}
	txn := alice.Wallet.Transactions[0]
	if txn.Source != identity.SourceReferralBonus || !strings.Contains(txn.Description, "Jane") {
		t.Errorf("txn = %+v, want referral bonus naming the referred customer", txn)
	}
	if len(alice.Customer.SuccessfulReferrals) != 1 || alice.Customer.SuccessfulReferrals[0] != "cust3" {
		t.Errorf("referrals = %v, want [cust3]", alice.Customer.SuccessfulReferrals)
	}
}

func TestAwardCrossesTierThreshold(t *testing.T) {
	users := seededUsers()
	if _, err := users.Update("cust1", func(u *identity.User) error {
		u.Customer.Loyalty.Points = 6800
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	svc := NewService(users, fixedCount(1))
	if err := svc.CheckAndAward("cust3"); err != nil {
		t.Fatal(err)
	}
	alice, _ := users.Get("cust1")
	if alice.Customer.Loyalty.Tier != identity.TierGold {
		t.Errorf("tier = %s, want Gold at 7800 points", alice.Customer.Loyalty.Tier)
	}
}

func TestRepeatCompletionAwardsNothing(t *testing.T) {
	users := seededUsers()
	svc := NewService(users, fixedCount(2))

	if err := svc.CheckAndAward("cust3"); err != nil {
		t.Fatal(err)
	}
	alice, _ := users.Get("cust1")
	if alice.Customer.Loyalty.Points != 2500 || alice.Wallet.Balance != 100 {
		t.Errorf("repeat completion changed referrer state: %+v", alice.Customer.Loyalty)
	}
}

func TestCountsAreSummedAcrossCollections(t *testing.T) {
	users := seededUsers()
	// One delivered order plus one completed request: not a first
	// completion any more.
	svc := NewService(users, fixedCount(1), fixedCount(1))

	if err := svc.CheckAndAward("cust3"); err != nil {
		t.Fatal(err)
	}
	alice, _ := users.Get("cust1")
	if alice.Customer.Loyalty.Points != 2500 {
		t.Errorf("points = %d, want untouched 2500", alice.Customer.Loyalty.Points)
	}
}

func TestNoReferrerIsNoOp(t *testing.T) {
	users := seededUsers()
	svc := NewService(users, fixedCount(1))

	if err := svc.CheckAndAward("cust2"); err != nil {
		t.Fatal(err)
	}
	alice, _ := users.Get("cust1")
	if alice.Customer.Loyalty.Points != 2500 {
		t.Errorf("unreferred completion changed state: %d", alice.Customer.Loyalty.Points)
	}
}

func TestDanglingReferralCodeIsNoOp(t *testing.T) {
	users := seededUsers()
	if _, err := users.Update("cust3", func(u *identity.User) error {
		u.Customer.ReferredBy = "LODHI-GHOST1"
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	svc := NewService(users, fixedCount(1))
	if err := svc.CheckAndAward("cust3"); err != nil {
		t.Errorf("dangling code should be swallowed, got %v", err)
	}
}
