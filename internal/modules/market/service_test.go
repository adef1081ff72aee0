package market

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

type referralRecorder struct {
	calls []types.ID
}

func (r *referralRecorder) CheckAndAward(customerID types.ID) error {
	r.calls = append(r.calls, customerID)
	return nil
}

type fixture struct {
	svc   *Service
	users *identity.Store
	rec   *referralRecorder
}

func newFixture() *fixture {
	users := identity.NewStore()
	users.Create(&identity.User{
		ID: "cust1", Name: "Alice", Role: identity.RoleCustomer,
		Customer: &identity.CustomerProfile{ReferralCode: "LODHI-ALICE1"},
	})
	users.Create(&identity.User{
		ID: "shop_owner_1", Name: "Rajesh", Role: identity.RoleShopkeeper,
		Shopkeeper: &identity.ShopkeeperProfile{},
	})
	users.Create(&identity.User{
		ID: "delivery1", Name: "Karan", Role: identity.RoleDeliveryPartner,
		DeliveryPartner: &identity.DeliveryPartnerProfile{},
	})

	store := NewStore()
	store.CreateShop(&Shop{
		ID: "shop_2", OwnerID: "shop_owner_1", Name: "Bharat Electricals",
		Address: types.Address{Street: "55 Nai Sadak", City: "Gwalior"},
		Performance: ShopPerformance{
			CustomerRating: types.Rating{Average: 4, Count: 1},
			RecentFeedback: []string{"Old feedback."},
		},
	})
	store.UpsertProduct(&Product{
		ID: "prod_1", ShopID: "shop_2", ShopName: "Bharat Electricals",
		Name: "Supreme PVC Pipe", Category: types.CategoryPlumbing,
		Price: 250, Discount: 10,
	})
	store.UpsertProduct(&Product{
		ID: "prod_2", ShopID: "shop_2", ShopName: "Bharat Electricals",
		Name: "Anchor Wire", Category: types.CategoryElectrical,
		Price: 1800,
	})

	rec := &referralRecorder{}
	return &fixture{svc: NewService(store, users, rec, nil), users: users, rec: rec}
}

func (f *fixture) placeOrder(t *testing.T, mode PaymentMode) *Order {
	t.Helper()
	o, err := f.svc.Buy("cust1", BuyCommand{ProductID: "prod_1", PaymentMode: mode})
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestBuyPricing(t *testing.T) {
	cases := []struct {
		name       string
		productID  types.ID
		mode       PaymentMode
		wantTotal  float64
		wantStatus PaymentStatus
		wantFlat   float64
	}{
		{"cod pays percentage discount only", "prod_1", PaymentCOD, 225, PaymentPending, 0},
		{"digital is also pending", "prod_2", PaymentDigital, 1800, PaymentPending, 0},
		{"advance takes flat cut and is prepaid", "prod_1", PaymentAdvance, 185, PaymentPaid, 40},
		{"advance on undiscounted product", "prod_2", PaymentAdvance, 1760, PaymentPaid, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			o, err := f.svc.Buy("cust1", BuyCommand{ProductID: tc.productID, PaymentMode: tc.mode})
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(o.TotalAmount-tc.wantTotal) > 1e-9 {
				t.Errorf("total = %v, want %v", o.TotalAmount, tc.wantTotal)
			}
			if o.Payment.Status != tc.wantStatus {
				t.Errorf("payment status = %s, want %s", o.Payment.Status, tc.wantStatus)
			}
			if o.Payment.DiscountApplied != tc.wantFlat {
				t.Errorf("flat discount = %v, want %v", o.Payment.DiscountApplied, tc.wantFlat)
			}
			if o.Status != OrderPlaced {
				t.Errorf("order status = %s, want %s", o.Status, OrderPlaced)
			}
		})
	}
}

func TestBuyRequiresCustomerActor(t *testing.T) {
	f := newFixture()
	if _, err := f.svc.Buy("shop_owner_1", BuyCommand{ProductID: "prod_1", PaymentMode: PaymentCOD}); !errors.Is(err, ErrNotCustomer) {
		t.Errorf("shopkeeper buy: err = %v, want ErrNotCustomer", err)
	}
	if _, err := f.svc.Buy("delivery1", BuyCommand{ProductID: "prod_1", PaymentMode: PaymentCOD}); !errors.Is(err, ErrNotCustomer) {
		t.Errorf("partner buy: err = %v, want ErrNotCustomer", err)
	}
}

type failingReferrals struct{}

func (failingReferrals) CheckAndAward(types.ID) error { return errors.New("ledger offline") }

func TestDeliveryCompletionLogsReferralFailure(t *testing.T) {
	f := newFixture()
	core, logs := observer.New(zap.WarnLevel)
	svc := NewService(f.svc.Store(), f.users, failingReferrals{}, zap.New(core))

	o, err := svc.Buy("cust1", BuyCommand{ProductID: "prod_1", PaymentMode: PaymentCOD})
	if err != nil {
		t.Fatal(err)
	}
	for _, to := range []OrderStatus{OrderShipped, OrderOutForDelivery, OrderDelivered} {
		if err := svc.UpdateStatus(o.ID, to); err != nil {
			t.Fatalf("move to %s: %v", to, err)
		}
	}

	got, _ := svc.GetOrder(o.ID)
	if got.Status != OrderDelivered {
		t.Errorf("order status = %s, want %s", got.Status, OrderDelivered)
	}
	if n := logs.FilterMessage("referral evaluation failed").Len(); n != 1 {
		t.Errorf("warn log entries = %d, want 1", n)
	}
}

func TestBuySnapshotsProductAndShop(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD)

	// Later catalog edits must not reach into existing orders.
	if _, err := f.svc.UpsertProduct(Product{ID: "prod_1", ShopID: "shop_2", Name: "Renamed Pipe", Price: 999}); err != nil {
		t.Fatal(err)
	}
	got, _ := f.svc.GetOrder(o.ID)
	if got.Product.Name != "Supreme PVC Pipe" || got.Product.Price != 250 {
		t.Errorf("order product = %+v, want purchase-time copy", got.Product)
	}
}

func TestGenerateBill(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD) // total 225

	if err := f.svc.GenerateBill(o.ID); err != nil {
		t.Fatal(err)
	}
	got, _ := f.svc.GetOrder(o.ID)
	if got.Bill == nil {
		t.Fatal("no bill")
	}
	if math.Abs(got.Bill.WithGST.GST-40.5) > 1e-9 || math.Abs(got.Bill.WithGST.Total-265.5) > 1e-9 {
		t.Errorf("with gst = %+v, want gst 40.5 total 265.5", got.Bill.WithGST)
	}
	if got.Bill.WithoutGST.GST != 0 || got.Bill.WithoutGST.Total != 225 {
		t.Errorf("without gst = %+v, want flat 225", got.Bill.WithoutGST)
	}

	if err := f.svc.GenerateBill("ORD-missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("missing order: err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD)

	if err := f.svc.UpdateStatus(o.ID, OrderDelivered); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("placed→delivered: err = %v, want ErrInvalidState", err)
	}
	for _, step := range []OrderStatus{OrderShipped, OrderOutForDelivery, OrderDelivered} {
		if err := f.svc.UpdateStatus(o.ID, step); err != nil {
			t.Fatalf("→%s: %v", step, err)
		}
	}
	if len(f.rec.calls) != 1 || f.rec.calls[0] != "cust1" {
		t.Errorf("referral calls = %v, want one on delivery", f.rec.calls)
	}
}

func TestDeliveryProjection(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD)

	if err := f.svc.UpdateDeliveryStatus(o.ID, DeliveryEnRoute); !errors.Is(err, ErrNoDelivery) {
		t.Fatalf("delivery update without partner: err = %v, want ErrNoDelivery", err)
	}

	if err := f.svc.AssignDeliveryPartner(o.ID, "cust1"); !errors.Is(err, ErrNotPartner) {
		t.Fatalf("assigning a customer: err = %v, want ErrNotPartner", err)
	}
	if err := f.svc.AssignDeliveryPartner(o.ID, "delivery1"); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.UpdateDeliveryStatus(o.ID, DeliveryPickingUp); err != nil {
		t.Fatal(err)
	}
	got, _ := f.svc.GetOrder(o.ID)
	if got.Status != OrderPlaced {
		t.Errorf("picking up must not touch order status, got %s", got.Status)
	}

	if err := f.svc.UpdateDeliveryStatus(o.ID, DeliveryEnRoute); err != nil {
		t.Fatal(err)
	}
	got, _ = f.svc.GetOrder(o.ID)
	if got.Status != OrderOutForDelivery {
		t.Errorf("en route should project out-for-delivery, got %s", got.Status)
	}

	if err := f.svc.UpdateDeliveryStatus(o.ID, DeliveryDelivered); err != nil {
		t.Fatal(err)
	}
	got, _ = f.svc.GetOrder(o.ID)
	if got.Status != OrderDelivered {
		t.Errorf("delivered should project delivered, got %s", got.Status)
	}
	if len(f.rec.calls) != 1 {
		t.Errorf("referral calls = %v, want one", f.rec.calls)
	}
}

func TestRateExperience(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD)
	if err := f.svc.AssignDeliveryPartner(o.ID, "delivery1"); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.RateExperience(o.ID, 5, 4, "Quick and careful."); err != nil {
		t.Fatal(err)
	}

	sh, _ := f.svc.GetShop("shop_2")
	if sh.Performance.CustomerRating.Count != 2 || math.Abs(sh.Performance.CustomerRating.Average-4.5) > 1e-9 {
		t.Errorf("shop rating = %+v, want avg 4.5 over 2", sh.Performance.CustomerRating)
	}
	if sh.Performance.RecentFeedback[0] != "Quick and careful." {
		t.Errorf("feedback = %v, want newest first", sh.Performance.RecentFeedback)
	}

	partner, _ := f.users.Get("delivery1")
	if partner.DeliveryPartner.Performance.CustomerRating.Count != 1 {
		t.Errorf("partner rating = %+v, want one score", partner.DeliveryPartner.Performance.CustomerRating)
	}

	got, _ := f.svc.GetOrder(o.ID)
	if !got.IsExperienceRated {
		t.Error("order not marked rated")
	}
}

func TestRateShopByPartner(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD)

	if err := f.svc.RateShopByPartner(o.ID, 4); err != nil {
		t.Fatal(err)
	}
	sh, _ := f.svc.GetShop("shop_2")
	if sh.Performance.PartnerRating.Count != 1 || sh.Performance.PartnerRating.Average != 4 {
		t.Errorf("partner-side rating = %+v", sh.Performance.PartnerRating)
	}
	if sh.Performance.CustomerRating.Count != 1 {
		t.Error("customer-side rating must stay untouched")
	}
	got, _ := f.svc.GetOrder(o.ID)
	if !got.IsShopRatedByPartner {
		t.Error("order not marked shop-rated")
	}
}

func TestDeliveryTracking(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD)

	pos := types.Point{Lat: 26.21, Lng: 78.19}
	if err := f.svc.SetLiveDeliveryLocation(o.ID, pos); !errors.Is(err, ErrTrackingOff) {
		t.Fatalf("location while untracked: err = %v, want ErrTrackingOff", err)
	}

	if err := f.svc.ToggleDeliveryTracking(o.ID, true); err != nil {
		t.Fatal(err)
	}
	got, _ := f.svc.GetOrder(o.ID)
	if got.LiveDeliveryLocation == nil || *got.LiveDeliveryLocation != trackingStart {
		t.Errorf("seeded location = %v, want %v", got.LiveDeliveryLocation, trackingStart)
	}

	if err := f.svc.SetLiveDeliveryLocation(o.ID, pos); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.ToggleDeliveryTracking(o.ID, false); err != nil {
		t.Fatal(err)
	}
	got, _ = f.svc.GetOrder(o.ID)
	if got.DeliveryTrackable || got.LiveDeliveryLocation != nil {
		t.Errorf("after toggle off: trackable %v location %v", got.DeliveryTrackable, got.LiveDeliveryLocation)
	}
}

func TestRegisterShop(t *testing.T) {
	f := newFixture()

	if _, err := f.svc.RegisterShop("cust1", RegisterShopCommand{Name: "Alice's Corner"}); !errors.Is(err, ErrNotShopkeeper) {
		t.Fatalf("customer registering: err = %v, want ErrNotShopkeeper", err)
	}
	if _, err := f.svc.RegisterShop("shop_owner_1", RegisterShopCommand{}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("empty name: err = %v, want ErrBadRequest", err)
	}

	sh, err := f.svc.RegisterShop("shop_owner_1", RegisterShopCommand{
		Name:            "Gupta Hardware",
		Location:        "Morar",
		IsGSTRegistered: true,
		GSTNumber:       "23ABCDE1234F1Z5",
	})
	if err != nil {
		t.Fatal(err)
	}

	owner, _ := f.users.Get("shop_owner_1")
	if !owner.Shopkeeper.HasRegisteredShop || owner.Shopkeeper.ShopID != sh.ID {
		t.Errorf("owner profile = %+v, want linked to %s", owner.Shopkeeper, sh.ID)
	}
	if _, err := f.svc.GetShop(sh.ID); err != nil {
		t.Errorf("shop not retrievable: %v", err)
	}
}

func TestVerifyShop(t *testing.T) {
	f := newFixture()
	if err := f.svc.VerifyShop("shop_2", true); err != nil {
		t.Fatal(err)
	}
	sh, _ := f.svc.GetShop("shop_2")
	if !sh.IsVerified {
		t.Error("shop not verified")
	}
}

func TestDeliveredCount(t *testing.T) {
	f := newFixture()
	o := f.placeOrder(t, PaymentCOD)
	f.placeOrder(t, PaymentCOD) // second, undelivered order must not count

	if got := f.svc.Store().DeliveredCount("cust1"); got != 0 {
		t.Fatalf("delivered count = %d, want 0", got)
	}
	if err := f.svc.AssignDeliveryPartner(o.ID, "delivery1"); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.UpdateDeliveryStatus(o.ID, DeliveryDelivered); err != nil {
		t.Fatal(err)
	}
	if got := f.svc.Store().DeliveredCount("cust1"); got != 1 {
		t.Errorf("delivered count = %d, want 1", got)
	}
}
