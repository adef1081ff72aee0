package logistics

import (
	"errors"
	"testing"

	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/market"
	"lodhi/internal/types"
)

func newFixture() *Service {
	users := identity.NewStore()
	users.Create(&identity.User{
		ID: "shop1", Name: "Ankit", Role: identity.RoleShopkeeper,
		Shopkeeper: &identity.ShopkeeperProfile{ShopID: "shop_3", HasRegisteredShop: true},
	})
	users.Create(&identity.User{
		ID: "shop2", Name: "Newcomer", Role: identity.RoleShopkeeper,
		Shopkeeper: &identity.ShopkeeperProfile{},
	})
	users.Create(&identity.User{
		ID: "cust1", Name: "Alice", Role: identity.RoleCustomer, MobileNumber: "9876543210",
		Customer: &identity.CustomerProfile{},
	})
	users.Create(&identity.User{
		ID: "delivery1", Name: "Karan", Role: identity.RoleDeliveryPartner,
		DeliveryPartner: &identity.DeliveryPartnerProfile{},
	})

	shops := market.NewStore()
	shops.CreateShop(&market.Shop{
		ID: "shop_3", OwnerID: "shop1", Name: "Modern Plumbing",
		Address: types.Address{Street: "7 Vinay Nagar", City: "Gwalior"},
	})
	return NewService(NewStore(), users, shops)
}

func TestRequestShopDelivery(t *testing.T) {
	svc := newFixture()

	j, err := svc.RequestShopDelivery("shop1", ShopDeliveryCommand{
		Destination: types.Address{Street: "123 Main St", City: "Gwalior"},
		ItemName:    "Faucet Tap",
		ItemWeight:  "2 kg",
		Vehicle:     identity.VehicleBike,
	})
	if err != nil {
		t.Fatal(err)
	}
	if j.Status != StatusRequested {
		t.Errorf("status = %s, want %s", j.Status, StatusRequested)
	}
	if j.Fee != shopDeliveryFee {
		t.Errorf("fee = %v, want %v", j.Fee, shopDeliveryFee)
	}
	if j.Pickup.Street != "7 Vinay Nagar" {
		t.Errorf("pickup = %+v, want the shop's own address", j.Pickup)
	}
	if j.Detail.ShopName != "Modern Plumbing" || j.Detail.ItemName != "Faucet Tap" {
		t.Errorf("detail = %+v", j.Detail)
	}

	if _, err := svc.RequestShopDelivery("shop2", ShopDeliveryCommand{}); !errors.Is(err, ErrNoShop) {
		t.Errorf("shopkeeper without a shop: err = %v, want ErrNoShop", err)
	}
	if _, err := svc.RequestShopDelivery("ghost", ShopDeliveryCommand{}); !errors.Is(err, identity.ErrNotFound) {
		t.Errorf("unknown actor: err = %v, want identity.ErrNotFound", err)
	}
}

func TestRequestPackersMovers(t *testing.T) {
	svc := newFixture()

	j, err := svc.RequestPackersMovers("cust1", PackersMoversCommand{
		Pickup:      types.Address{Street: "123 Main St", City: "Gwalior"},
		Destination: types.Address{Street: "456 River Ave", City: "Gwalior"},
		ItemDetails: "2 BHK household move",
		ItemWeight:  "400 kg",
		Vehicle:     identity.VehicleTruck,
	})
	if err != nil {
		t.Fatal(err)
	}
	if j.Fee != packersMoversFee {
		t.Errorf("fee = %v, want %v", j.Fee, packersMoversFee)
	}
	if j.Detail.CustomerName != "Alice" || j.Detail.MobileNumber != "9876543210" {
		t.Errorf("detail = %+v, want actor snapshot", j.Detail)
	}

	if _, err := svc.RequestPackersMovers("shop1", PackersMoversCommand{Vehicle: identity.VehicleTruck}); !errors.Is(err, ErrNotCustomer) {
		t.Errorf("shopkeeper actor: err = %v, want ErrNotCustomer", err)
	}
}

func TestLifecycle(t *testing.T) {
	svc := newFixture()
	j, err := svc.RequestShopDelivery("shop1", ShopDeliveryCommand{ItemName: "Pipe"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateStatus(KindShopDelivery, j.ID, StatusEnRoute); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("requested→en route: err = %v, want ErrInvalidState", err)
	}

	if err := svc.AssignPartner(KindShopDelivery, j.ID, "cust1"); !errors.Is(err, ErrNotPartner) {
		t.Fatalf("assigning a customer: err = %v, want ErrNotPartner", err)
	}
	if err := svc.Accept(KindShopDelivery, j.ID, "delivery1"); err != nil {
		t.Fatal(err)
	}
	got, _ := svc.Store().ShopDeliveries.Get(j.ID)
	if got.Status != StatusAssigned || got.PartnerName != "Karan" {
		t.Errorf("after accept: %s / %q", got.Status, got.PartnerName)
	}

	// Reassignment is allowed while the job has not moved yet.
	if err := svc.AssignPartner(KindShopDelivery, j.ID, "delivery1"); err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateStatus(KindShopDelivery, j.ID, StatusEnRoute); err != nil {
		t.Fatal(err)
	}
	got, _ = svc.Store().ShopDeliveries.Get(j.ID)
	if got.LiveLocation == nil || *got.LiveLocation != trackingStart {
		t.Errorf("en-route job should track from %v, got %v", trackingStart, got.LiveLocation)
	}

	if err := svc.AssignPartner(KindShopDelivery, j.ID, "delivery1"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("reassigning an en-route job: err = %v, want ErrInvalidState", err)
	}

	if err := svc.UpdateStatus(KindShopDelivery, j.ID, StatusDelivered); err != nil {
		t.Fatal(err)
	}
	got, _ = svc.Store().ShopDeliveries.Get(j.ID)
	if got.LiveLocation != nil {
		t.Error("delivered job must stop tracking")
	}
	if err := svc.UpdateStatus(KindShopDelivery, j.ID, StatusCancelled); !errors.Is(err, ErrInvalidState) {
		t.Errorf("cancelling a delivered job: err = %v, want ErrInvalidState", err)
	}
}

func TestSetLiveLocation(t *testing.T) {
	svc := newFixture()
	j, err := svc.RequestPackersMovers("cust1", PackersMoversCommand{ItemDetails: "Boxes"})
	if err != nil {
		t.Fatal(err)
	}

	pos := types.Point{Lat: 26.21, Lng: 78.17}
	if err := svc.SetLiveLocation(KindPackersMovers, j.ID, pos); !errors.Is(err, ErrNotTracking) {
		t.Fatalf("location before en route: err = %v, want ErrNotTracking", err)
	}

	if err := svc.AssignPartner(KindPackersMovers, j.ID, "delivery1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatus(KindPackersMovers, j.ID, StatusEnRoute); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetLiveLocation(KindPackersMovers, j.ID, pos); err != nil {
		t.Fatal(err)
	}
	got, _ := svc.Store().Moves.Get(j.ID)
	if *got.LiveLocation != pos {
		t.Errorf("location = %v, want %v", *got.LiveLocation, pos)
	}
}

func TestUnknownKind(t *testing.T) {
	svc := newFixture()
	if err := svc.UpdateStatus(Kind("bicycle"), "DEL-1", StatusAssigned); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	if err := svc.AssignPartner(Kind("bicycle"), "DEL-1", "delivery1"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestCollectionJitterMovesOnlyEnRouteJobs(t *testing.T) {
	svc := newFixture()
	moving, err := svc.RequestShopDelivery("shop1", ShopDeliveryCommand{ItemName: "Pipe"})
	if err != nil {
		t.Fatal(err)
	}
	idle, err := svc.RequestShopDelivery("shop1", ShopDeliveryCommand{ItemName: "Tap"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Accept(KindShopDelivery, moving.ID, "delivery1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatus(KindShopDelivery, moving.ID, StatusEnRoute); err != nil {
		t.Fatal(err)
	}

	out := svc.Store().ShopDeliveries.Jitter(func(p types.Point) types.Point {
		return types.Point{Lat: p.Lat + 0.0005, Lng: p.Lng - 0.0005}
	})
	if _, ok := out[moving.ID]; !ok {
		t.Error("en-route job not jittered")
	}
	if _, ok := out[idle.ID]; ok {
		t.Error("requested job jittered")
	}
	got, _ := svc.Store().ShopDeliveries.Get(moving.ID)
	if got.LiveLocation.Lat != trackingStart.Lat+0.0005 {
		t.Errorf("lat = %v, want %v", got.LiveLocation.Lat, trackingStart.Lat+0.0005)
	}

	// Newest job lists first.
	list := svc.ListShopDeliveries()
	if len(list) != 2 || list[0].ID != idle.ID {
		t.Errorf("list order = %v, want newest first", []types.ID{list[0].ID, list[1].ID})
	}
}
