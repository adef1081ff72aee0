package platform

import (
	"errors"
	"testing"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

func newTestService() *Service {
	users := identity.NewStore()
	users.Create(&identity.User{
		ID: "admin_ceo", Name: "Diana", Role: identity.RoleAdmin,
		Admin: &identity.AdminProfile{Role: identity.AdminCEO},
	})
	users.Create(&identity.User{
		ID: "tech1", Name: "Bob", Role: identity.RoleTechnician,
		Technician: &identity.TechnicianProfile{},
	})

	store := NewStore()
	store.SetPrices([]PriceEntry{
		{Category: types.CategoryPlumbing, Price: 399},
		{Category: types.CategoryACRepair, Price: 599},
	})
	return NewService(store, users)
}

func TestUpdatePrice(t *testing.T) {
	svc := newTestService()

	if err := svc.UpdatePrice(types.CategoryPlumbing, 449); err != nil {
		t.Fatal(err)
	}
	for _, e := range svc.Prices() {
		if e.Category == types.CategoryPlumbing && e.Price != 449 {
			t.Errorf("plumbing price = %v, want 449", e.Price)
		}
	}

	if err := svc.UpdatePrice(types.CategoryPlumbing, -1); !errors.Is(err, ErrBadRequest) {
		t.Errorf("negative price: err = %v, want ErrBadRequest", err)
	}
	if err := svc.UpdatePrice(types.CategoryPainting, 299); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unlisted category: err = %v, want ErrUnknownCategory", err)
	}
}

func TestUpsertOffer(t *testing.T) {
	svc := newTestService()

	o, err := svc.UpsertOffer(Offer{Title: "10% off", DiscountType: DiscountPercentage, DiscountValue: 10, IsActive: true})
	if err != nil {
		t.Fatal(err)
	}
	if o.ID == "" {
		t.Fatal("no id generated")
	}

	o.DiscountValue = 15
	if _, err := svc.UpsertOffer(o); err != nil {
		t.Fatal(err)
	}
	offers := svc.Offers()
	if len(offers) != 1 || offers[0].DiscountValue != 15 {
		t.Errorf("offers = %+v, want one updated in place", offers)
	}

	if _, err := svc.UpsertOffer(Offer{}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("untitled offer: err = %v, want ErrBadRequest", err)
	}
}

func TestAddVideoListsNewestFirst(t *testing.T) {
	svc := newTestService()

	if _, err := svc.AddVideo(TrainingVideo{Title: "P-Traps", VideoURL: "https://example.com/1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddVideo(TrainingVideo{Title: "3-Phase Wiring", VideoURL: "https://example.com/2"}); err != nil {
		t.Fatal(err)
	}
	vids := svc.Videos()
	if len(vids) != 2 || vids[0].Title != "3-Phase Wiring" {
		t.Errorf("videos = %+v, want newest first", vids)
	}

	if _, err := svc.AddVideo(TrainingVideo{Title: "No URL"}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("missing url: err = %v, want ErrBadRequest", err)
	}
}

func TestSendSupportMessageLabelsAdmins(t *testing.T) {
	svc := newTestService()

	m, err := svc.SendSupportMessage("admin_ceo", "Welcome to the channel!")
	if err != nil {
		t.Fatal(err)
	}
	if m.SenderName != "Diana (Admin)" {
		t.Errorf("sender = %q, want admin label", m.SenderName)
	}

	m, err = svc.SendSupportMessage("tech1", "Thanks!")
	if err != nil {
		t.Fatal(err)
	}
	if m.SenderName != "Bob" {
		t.Errorf("sender = %q, want plain name", m.SenderName)
	}

	if _, err := svc.SendSupportMessage("tech1", ""); !errors.Is(err, ErrBadRequest) {
		t.Errorf("empty message: err = %v, want ErrBadRequest", err)
	}
	if got := len(svc.SupportMessages()); got != 2 {
		t.Errorf("thread length = %d, want 2", got)
	}
}

func TestExpensesAndTargets(t *testing.T) {
	svc := newTestService()

	e, err := svc.AddExpense(identity.Expense{Category: identity.ExpenseMarketing, Amount: 5000, Description: "Campaign"})
	if err != nil {
		t.Fatal(err)
	}
	if e.ID == "" || e.Date.IsZero() {
		t.Errorf("expense = %+v, want generated id and date", e)
	}
	if _, err := svc.AddExpense(identity.Expense{Category: identity.ExpenseMarketing}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("zero amount: err = %v, want ErrBadRequest", err)
	}

	svc.UpsertTarget(ExpenseTarget{Category: identity.ExpenseMarketing, Target: 7000})
	svc.UpsertTarget(ExpenseTarget{Category: identity.ExpenseMarketing, Target: 8000})
	targets := svc.Targets()
	if len(targets) != 1 || targets[0].Target != 8000 {
		t.Errorf("targets = %+v, want one entry keyed by category", targets)
	}
}

func TestUpsertIncentive(t *testing.T) {
	svc := newTestService()

	p, err := svc.UpsertIncentive(IncentiveProgram{
		Name:            "Delivery Streak",
		TargetType:      TargetDeliveriesCompleted,
		TargetValue:     20,
		BonusAmount:     500,
		IsActive:        true,
		ApplicableRoles: []identity.Role{identity.RoleDeliveryPartner},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("no id generated")
	}
	if _, err := svc.UpsertIncentive(IncentiveProgram{}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("unnamed program: err = %v, want ErrBadRequest", err)
	}
}
