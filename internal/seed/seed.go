// README: Demo data set: Gwalior users, shops, products, requests and platform config.
package seed

import (
	"time"

	"lodhi/internal/ids"
	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/logistics"
	"lodhi/internal/modules/market"
	"lodhi/internal/modules/platform"
	"lodhi/internal/modules/requests"
	"lodhi/internal/types"
)

// Data bundles freshly seeded stores for every module.
type Data struct {
	Users     *identity.Store
	Requests  *requests.Store
	Market    *market.Store
	Logistics *logistics.Store
	Platform  *platform.Store
}

func ago(d time.Duration) time.Time { return time.Now().Add(-d) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

// Stores builds the full demo data set in fresh in-memory stores.
func Stores() *Data {
	d := &Data{
		Users:     identity.NewStore(),
		Requests:  requests.NewStore(),
		Market:    market.NewStore(),
		Logistics: logistics.NewStore(),
		Platform:  platform.NewStore(),
	}
	seedUsers(d.Users)
	seedShopsAndProducts(d.Market)
	seedRequests(d.Requests)
	seedPlatform(d.Platform)
	return d
}

// seedUsers loads every demo account. Jane (cust3) is seeded as
// referred by Alice's generated code so the referral flow has a live
// pair to exercise.
func seedUsers(s *identity.Store) {
	aliceCode := ids.ReferralCode()

	customers := []*identity.User{
		{
			ID: "cust1", Name: "Alice Johnson", Email: "alice@example.com", Role: identity.RoleCustomer,
			Location: "DD Nagar", MobileNumber: "9876543210",
			Customer: &identity.CustomerProfile{
				Loyalty:             identity.Loyalty{Points: 2500, Tier: identity.TierSilver},
				ReferralCode:        aliceCode,
				SuccessfulReferrals: []types.ID{"cust3"},
				WhatsappConsent:     true,
			},
		},
		{
			ID: "cust2", Name: "Mark Twain", Email: "mark@example.com", Role: identity.RoleCustomer,
			Location: "Hazira", MobileNumber: "9876543211",
			Customer: &identity.CustomerProfile{
				Loyalty:      identity.Loyalty{Points: 500, Tier: identity.TierBronze},
				ReferralCode: ids.ReferralCode(),
			},
		},
		{
			ID: "cust3", Name: "Jane Austen", Email: "jane@example.com", Role: identity.RoleCustomer,
			Location: "Thatipur", MobileNumber: "9876543212",
			Customer: &identity.CustomerProfile{
				Loyalty:         identity.Loyalty{Points: 8000, Tier: identity.TierGold},
				ReferralCode:    ids.ReferralCode(),
				ReferredBy:      aliceCode,
				WhatsappConsent: true,
			},
		},
		{
			ID: "cust4", Name: "Ravi Kumar", Email: "ravi@example.com", Role: identity.RoleCustomer,
			Location: "Govindpuri", MobileNumber: "9876543213",
			Customer: &identity.CustomerProfile{
				Loyalty:         identity.Loyalty{Points: 1200, Tier: identity.TierBronze},
				ReferralCode:    ids.ReferralCode(),
				WhatsappConsent: true,
			},
		},
		{
			ID: "cust5", Name: "Aarav Singh", Email: "aarav@example.com", Role: identity.RoleCustomer,
			Location: "Lashkar", MobileNumber: "9876543214",
			Customer: &identity.CustomerProfile{
				Loyalty:      identity.Loyalty{Points: 0, Tier: identity.TierBronze},
				ReferralCode: ids.ReferralCode(),
			},
		},
	}

	technicians := []*identity.User{
		{
			ID: "tech1", Name: "Bob Smith", Email: "bob@example.com", Role: identity.RoleTechnician,
			Location: "DD Nagar", MobileNumber: "5550001111", WeeklyGoal: 15000,
			Wallet: &identity.Wallet{Balance: 12500},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryPlumbing, TechnicianID: ids.Technician(types.CategoryPlumbing),
				Available: true, Rating: 4.8,
				DateOfBirth: timePtr(day(1985, time.May, 20)), JoiningDate: timePtr(day(2022, time.January, 15)),
				PermanentAddress: types.Address{Street: "1A Smith Lane", City: "Gwalior", State: "MP", Zip: "474005"},
				CurrentAddress:   types.Address{Street: "123 Main St", City: "Gwalior", State: "MP", Zip: "474005"},
				Insurance:        &identity.InsuranceInfo{Provider: "InsureCo", PolicyNumber: "XYZ-12345", ExpiryDate: day(2025, time.October, 20)},
				PaymentHistory:   []identity.PaymentRecord{{RequestID: "req1", Amount: 1593, Date: ago(24 * time.Hour), Paid: true}},
			},
		},
		{
			ID: "tech2", Name: "Charlie Brown", Email: "charlie@example.com", Role: identity.RoleTechnician,
			Location: "Thatipur", MobileNumber: "5550002222", WeeklyGoal: 12000,
			Wallet: &identity.Wallet{Balance: 8500},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryElectrical, TechnicianID: ids.Technician(types.CategoryElectrical),
				Available: true, Rating: 4.5,
				DateOfBirth: timePtr(day(1990, time.November, 30)), JoiningDate: timePtr(day(2021, time.June, 1)),
				PermanentAddress: types.Address{Street: "2B Brown House", City: "Gwalior", State: "MP", Zip: "474011"},
				CurrentAddress:   types.Address{Street: "2B Brown House", City: "Gwalior", State: "MP", Zip: "474011"},
				Insurance:        &identity.InsuranceInfo{Provider: "SafeGuard", PolicyNumber: "ABC-67890", ExpiryDate: day(2024, time.December, 15)},
			},
		},
		{
			ID: "tech3", Name: "David Lee", Email: "david@example.com", Role: identity.RoleTechnician,
			Location: "Hazira", MobileNumber: "5550003333", WeeklyGoal: 18000,
			Wallet: &identity.Wallet{Balance: 15000},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryACRepair, TechnicianID: ids.Technician(types.CategoryACRepair),
				Available: true, Rating: 4.9,
				DateOfBirth:      timePtr(day(1988, time.February, 10)), JoiningDate: timePtr(day(2023, time.March, 20)),
				PermanentAddress: types.Address{Street: "3C Lee Estate", City: "Gwalior", State: "MP", Zip: "474003"},
				Insurance:        &identity.InsuranceInfo{Provider: "InsureCo", PolicyNumber: "XYZ-98765", ExpiryDate: day(2025, time.August, 1)},
			},
		},
		{
			ID: "tech4", Name: "Suresh Sharma", Email: "suresh.sharma@example.com", Role: identity.RoleTechnician,
			Location: "Govindpuri", MobileNumber: "5550004444", WeeklyGoal: 10000,
			Wallet: &identity.Wallet{},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryCarpentry, TechnicianID: ids.Technician(types.CategoryCarpentry),
				Available: true, Rating: 4.2,
				Insurance: &identity.InsuranceInfo{Provider: "SafeGuard", PolicyNumber: "ABC-11223", ExpiryDate: day(2025, time.January, 10)},
			},
		},
		{
			ID: "tech5", Name: "Ramesh Verma", Email: "ramesh.verma@example.com", Role: identity.RoleTechnician,
			Location: "Bada", MobileNumber: "5550005555", WeeklyGoal: 13000,
			Wallet: &identity.Wallet{},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryGeyserRepair, TechnicianID: ids.Technician(types.CategoryGeyserRepair),
				Available: true, Rating: 4.6,
				Insurance: &identity.InsuranceInfo{Provider: "InsureCo", PolicyNumber: "XYZ-33445", ExpiryDate: day(2024, time.November, 30)},
			},
		},
		{
			ID: "tech6", Name: "Heidi Turner", Email: "heidi@example.com", Role: identity.RoleTechnician,
			Location: "Hazira", MobileNumber: "5550006666", WeeklyGoal: 15000,
			Wallet: &identity.Wallet{},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryPlumbing, TechnicianID: ids.Technician(types.CategoryPlumbing),
				Available: false, Rating: 4.1,
				Insurance: &identity.InsuranceInfo{Provider: "SafeGuard", PolicyNumber: "ABC-55667", ExpiryDate: day(2025, time.May, 22)},
			},
		},
		{
			ID: "tech7", Name: "Ivan Rodriguez", Email: "ivan@example.com", Role: identity.RoleTechnician,
			Location: "DD Nagar", MobileNumber: "5550007777", WeeklyGoal: 16000,
			Wallet: &identity.Wallet{},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryElectrical, TechnicianID: ids.Technician(types.CategoryElectrical),
				Available: true, Rating: 4.7,
				Insurance: &identity.InsuranceInfo{Provider: "InsureCo", PolicyNumber: "XYZ-77889", ExpiryDate: day(2025, time.March, 14)},
			},
		},
		{
			ID: "tech8", Name: "Gopal Mehra", Email: "gopal.mehra@example.com", Role: identity.RoleTechnician,
			Location: "Phoolbagh", MobileNumber: "5550008888", WeeklyGoal: 20000,
			Wallet: &identity.Wallet{},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryTVRepair, TechnicianID: ids.Technician(types.CategoryTVRepair),
				Available: true, Rating: 4.8,
				Insurance: &identity.InsuranceInfo{Provider: "InsureCo", PolicyNumber: "XYZ-11223", ExpiryDate: day(2025, time.February, 15)},
			},
		},
		{
			ID: "tech9", Name: "Priya Singh", Email: "priya.singh@example.com", Role: identity.RoleTechnician,
			Location: "Lashkar", MobileNumber: "5550009999", WeeklyGoal: 11000,
			Wallet: &identity.Wallet{},
			Technician: &identity.TechnicianProfile{
				Specialty: types.CategoryPainting, TechnicianID: ids.Technician(types.CategoryPainting),
				Available: true, Rating: 4.9,
				Insurance: &identity.InsuranceInfo{Provider: "SafeGuard", PolicyNumber: "ABC-88990", ExpiryDate: day(2025, time.July, 18)},
			},
		},
	}

	admins := []*identity.User{
		{ID: "admin_ceo", Name: "Diana Prince", Email: "diana.ceo@example.com", Role: identity.RoleAdmin, MobileNumber: "555-ADMIN-01", BaseSalary: 120000, Wallet: &identity.Wallet{}, Admin: &identity.AdminProfile{Role: identity.AdminCEO}},
		{ID: "admin_manager", Name: "Bruce Wayne", Email: "bruce.manager@example.com", Role: identity.RoleAdmin, MobileNumber: "555-ADMIN-02", BaseSalary: 90000, Wallet: &identity.Wallet{}, Admin: &identity.AdminProfile{Role: identity.AdminManager}},
		{ID: "admin_tech", Name: "Clark Kent", Email: "clark.tech@example.com", Role: identity.RoleAdmin, MobileNumber: "555-ADMIN-03", BaseSalary: 60000, Wallet: &identity.Wallet{}, Admin: &identity.AdminProfile{Role: identity.AdminTech}},
		{ID: "admin_delivery", Name: "Barry Allen", Email: "barry.delivery@example.com", Role: identity.RoleAdmin, MobileNumber: "555-ADMIN-04", BaseSalary: 55000, Wallet: &identity.Wallet{}, Admin: &identity.AdminProfile{Role: identity.AdminDelivery}},
		{ID: "admin_market", Name: "Arthur Curry", Email: "arthur.market@example.com", Role: identity.RoleAdmin, MobileNumber: "555-ADMIN-05", BaseSalary: 55000, Wallet: &identity.Wallet{}, Admin: &identity.AdminProfile{Role: identity.AdminMarket}},
		{ID: "admin_receptionist", Name: "Lois Lane", Email: "lois.reception@example.com", Role: identity.RoleAdmin, MobileNumber: "555-ADMIN-06", BaseSalary: 40000, Wallet: &identity.Wallet{}, Admin: &identity.AdminProfile{Role: identity.AdminReceptionist}},
	}

	others := []*identity.User{
		{ID: "staff1", Name: "Alfred Pennyworth", Email: "alfred@example.com", Role: identity.RoleStaff, MobileNumber: "555-STAFF-01", BaseSalary: 45000, Wallet: &identity.Wallet{}, Staff: &identity.StaffProfile{}},
		{ID: "shop1", Name: "Ankit Sharma", Email: "ankit.sharma@example.com", Role: identity.RoleShopkeeper, MobileNumber: "7770001111", Shopkeeper: &identity.ShopkeeperProfile{ShopID: "shop_3", HasRegisteredShop: true}},
		{ID: "shop_owner_1", Name: "Rajesh Gupta", Email: "rajesh.gupta@example.com", Role: identity.RoleShopkeeper, MobileNumber: "7770002222", Shopkeeper: &identity.ShopkeeperProfile{ShopID: "shop_2", HasRegisteredShop: true}},
		{
			ID: "delivery1", Name: "Karan Yadav", Email: "karan@example.com", Role: identity.RoleDeliveryPartner,
			Location: "Lashkar", MobileNumber: "6660001111", WeeklyGoal: 5000,
			Wallet: &identity.Wallet{Balance: 250},
			DeliveryPartner: &identity.DeliveryPartnerProfile{
				Available: true, Rating: 4.9,
				LiveLocation: &types.Point{Lat: 26.20, Lng: 78.16},
				Vehicle: &identity.VehicleDetails{
					Type: identity.VehicleBike, Model: "Honda Activa", RegistrationNumber: "MP07 AB 1234",
					InsuranceExpiry: day(2025, time.May, 10),
					License:         &identity.DrivingLicense{Number: "MP0720220012345", ExpiryDate: day(2028, time.October, 15)},
				},
				Performance: identity.PartnerPerformance{
					CustomerRating: types.Rating{Average: 4.9, Count: 25},
					OnTimeRate:     98,
					RecentFeedback: []string{"Very fast delivery!", "Polite and helpful."},
				},
			},
		},
		{
			ID: "delivery2", Name: "Sunita Patil", Email: "sunita@example.com", Role: identity.RoleDeliveryPartner,
			Location: "Morar", MobileNumber: "6660002222", WeeklyGoal: 4500,
			Wallet: &identity.Wallet{Balance: 150},
			DeliveryPartner: &identity.DeliveryPartnerProfile{
				Available: true, Rating: 4.7,
				LiveLocation: &types.Point{Lat: 26.23, Lng: 78.24},
				Vehicle: &identity.VehicleDetails{
					Type: identity.VehicleVan, Model: "Maruti Eeco", RegistrationNumber: "MP07 XY 5678",
					InsuranceExpiry: day(2024, time.December, 20),
					License:         &identity.DrivingLicense{Number: "MP0720210054321", ExpiryDate: day(2027, time.March, 22)},
				},
				Performance: identity.PartnerPerformance{
					CustomerRating: types.Rating{Average: 4.7, Count: 30},
					OnTimeRate:     95,
					RecentFeedback: []string{"Good service."},
				},
			},
		},
	}

	for _, group := range [][]*identity.User{customers, technicians, admins, others} {
		for _, u := range group {
			s.Create(u)
		}
	}
}

func seedShopsAndProducts(s *market.Store) {
	shops := []*market.Shop{
		{
			ID: "shop_2", OwnerID: "shop_owner_1", Name: "Bharat Electricals", Location: "Lashkar",
			Address: types.Address{Street: "55 Nai Sadak", City: "Gwalior", State: "MP", Zip: "474001"},
			Rating:  4.8, RatingCount: 25, IsVerified: true, IsGSTRegistered: true, GSTNumber: "23ABCDE1234F1Z5",
			Performance: market.ShopPerformance{
				CustomerRating: types.Rating{Average: 4.8, Count: 25},
				PartnerRating:  types.Rating{Average: 4.5, Count: 10},
				ItemReturnRate: 2.5,
				RecentFeedback: []string{"Great product quality.", "Fast shipping."},
			},
		},
		{
			ID: "shop_3", OwnerID: "shop1", Name: "Modern Plumbing", Location: "DD Nagar",
			Address: types.Address{Street: "7 Vinay Nagar", City: "Gwalior", State: "MP", Zip: "474005"},
			Rating:  4.2, RatingCount: 10, IsVerified: true, IsGSTRegistered: false,
			Performance: market.ShopPerformance{
				CustomerRating: types.Rating{Average: 4.2, Count: 10},
				PartnerRating:  types.Rating{Average: 4.0, Count: 5},
				ItemReturnRate: 5.0,
				RecentFeedback: []string{"Okay, but could be better packaged."},
			},
		},
	}
	for _, sh := range shops {
		s.CreateShop(sh)
	}

	products := []*market.Product{
		{
			ID: "prod_1", ShopID: "shop_2", ShopName: "Bharat Electricals",
			Name: "Supreme PVC Pipe (1 inch)", Category: types.CategoryPlumbing, Price: 250,
			Description: "High-quality, durable PVC pipe suitable for all standard plumbing work.",
			Warranty:    market.Warranty{Duration: "5 Years", Type: "Replacement", Mode: "Offline"},
			Discount:    10, HasHomeDelivery: true, Quality: market.QualityPremium,
			ImageURL: "https://via.placeholder.com/300/0059d4/FFFFFF/?text=PVC+Pipe", Stock: 150,
		},
		{
			ID: "prod_2", ShopID: "shop_2", ShopName: "Bharat Electricals",
			Name: "Anchor 1.5mm Wire (90m)", Category: types.CategoryElectrical, Price: 1800,
			Description: "FR-LSH PVC Insulated Copper Wire for domestic use.",
			Warranty:    market.Warranty{Duration: "10 Years", Type: "Repair", Mode: "Online"},
			HasHomeDelivery: true, Quality: market.QualityPremium,
			ImageURL: "https://via.placeholder.com/300/f77f00/FFFFFF/?text=Wire+Coil", Stock: 50,
		},
		{
			ID: "prod_3", ShopID: "shop_3", ShopName: "Modern Plumbing",
			Name: "Standard Faucet Tap", Category: types.CategoryPlumbing, Price: 450,
			Description: "Basic and functional faucet for kitchens and bathrooms.",
			Warranty:    market.Warranty{Duration: "1 Year", Type: "Replacement", Mode: "Offline"},
			HasHomeDelivery: false, Quality: market.QualityStandard,
			ImageURL: "https://via.placeholder.com/300/cccccc/000000/?text=Faucet", Stock: 80,
		},
		{
			ID: "prod_4", ShopID: "shop_2", ShopName: "Bharat Electricals",
			Name: "Legrand Myrius 16A Switch", Category: types.CategoryElectrical, Price: 120,
			Description: "Elegant and durable switch for modern homes.",
			Warranty:    market.Warranty{Duration: "3 Years", Type: "Replacement", Mode: "Online"},
			Discount:    5, HasHomeDelivery: true, Quality: market.QualityPremium,
			ImageURL: "https://via.placeholder.com/300/3b82f6/FFFFFF/?text=Switch", Stock: 200,
		},
	}
	for _, p := range products {
		s.UpsertProduct(p)
	}
}

func seedRequests(s *requests.Store) {
	list := []*requests.Request{
		{
			ID: "req1", JobID: ids.Job(), CustomerID: "cust1", CustomerName: "Alice Johnson",
			ServiceType: requests.TypeRepair, Description: "Leaky faucet under the kitchen sink.",
			Category: types.CategoryPlumbing, Status: requests.StatusCompleted,
			Location: "DD Nagar", Address: types.Address{Street: "123 Main St", City: "Gwalior", State: "MP", Zip: "474005"},
			MobileNumber: "555-1234", TechnicianID: "tech1", TechnicianName: "Bob Smith",
			CreatedAt: ago(48 * time.Hour), Rating: 5, Feedback: "Bob was amazing! Fast and professional.",
			Bill: &requests.Bill{ItemCharge: 1200, ServiceCharge: 300, Discount: 100, OfferDiscount: 50, GST: 243, TotalAmount: 1593, IsPaid: true},
		},
		{
			ID: "req2", JobID: ids.Job(), CustomerID: "cust1", CustomerName: "Alice Johnson",
			ServiceType: requests.TypeRepair, Description: "Main ceiling light is flickering.",
			Category: types.CategoryElectrical, Status: requests.StatusPendingPayment,
			Location: "DD Nagar", Address: types.Address{Street: "123 Main St", City: "Gwalior", State: "MP", Zip: "474005"},
			MobileNumber: "555-1234", TechnicianID: "tech2", TechnicianName: "Charlie Brown",
			CreatedAt: ago(24 * time.Hour),
			Bill:      &requests.Bill{ItemCharge: 2000, ServiceCharge: 500, GST: 450, TotalAmount: 2950},
			Complaint: &requests.Complaint{ID: ids.Complaint(), Text: "Technician left some scuff marks on the wall.", EscalationLevel: identity.AdminReceptionist},
			ChatHistory: []requests.ChatMessage{
				{SenderID: "cust1", Text: "Hey, are you on your way?", Timestamp: ago(65 * time.Minute)},
				{SenderID: "tech2", Text: "Yes, I should be there in about 15 minutes. Heavy traffic today!", Timestamp: ago(62 * time.Minute)},
			},
		},
		{
			ID: "req3", JobID: ids.Job(), CustomerID: "cust2", CustomerName: "Mark Twain",
			ServiceType: requests.TypeRepair, Description: "Split AC is not cooling the room.",
			Category: types.CategoryACRepair, Status: requests.StatusEnRoute,
			Location: "Hazira", Address: types.Address{Street: "456 River Ave", City: "Gwalior", State: "MP", Zip: "474003"},
			MobileNumber: "555-5678", TechnicianID: "tech3", TechnicianName: "David Lee",
			CreatedAt:             ago(time.Hour),
			LocationSharingActive: true, LiveLocation: &types.Point{Lat: 26.2183, Lng: 78.1828},
		},
		{
			ID: "req4", JobID: ids.Job(), CustomerID: "cust2", CustomerName: "Mark Twain",
			ServiceType: requests.TypeRepair, Description: "The toilet won't stop running.",
			Category: types.CategoryPlumbing, Status: requests.StatusRequested,
			Location: "Hazira", Address: types.Address{Street: "456 River Ave", City: "Gwalior", State: "MP", Zip: "474003"},
			MobileNumber: "555-5678", CreatedAt: time.Now(),
		},
		{
			ID: "req5", JobID: ids.Job(), CustomerID: "cust3", CustomerName: "Jane Austen",
			ServiceType: requests.TypeInstallation, Description: "Need a new wooden bookshelf assembled.",
			Category: types.CategoryCarpentry, Status: requests.StatusRequested,
			Location: "Thatipur", Address: types.Address{Street: "789 Literary Ln", City: "Gwalior", State: "MP", Zip: "474011"},
			MobileNumber: "555-9012", CreatedAt: ago(3 * time.Hour),
		},
		{
			ID: "req6", JobID: ids.Job(), CustomerID: "cust1", CustomerName: "Alice Johnson",
			ServiceType: requests.TypeInstallation, Description: "Install new outdoor security camera.",
			Category: types.CategoryElectrical, Status: requests.StatusWorkInProgress,
			Location: "DD Nagar", Address: types.Address{Street: "123 Main St", City: "Gwalior", State: "MP", Zip: "474005"},
			MobileNumber: "555-1234", TechnicianID: "tech2", TechnicianName: "Charlie Brown",
			CreatedAt: ago(5 * 24 * time.Hour),
			Bill:      &requests.Bill{ItemCharge: 3500, ServiceCharge: 1000, Discount: 500, OfferDiscount: 200, GST: 684, TotalAmount: 4484},
			Complaint: &requests.Complaint{ID: ids.Complaint(), Text: "Camera angle isn't right, needs adjustment.", EscalationLevel: identity.AdminTech},
		},
		{
			ID: "req7", JobID: ids.Job(), CustomerID: "cust4", CustomerName: "Ravi Kumar",
			ServiceType: requests.TypeRepair, Description: "Geyser is not heating water.",
			Category: types.CategoryGeyserRepair, Status: requests.StatusRequested,
			Location: "Govindpuri", Address: types.Address{Street: "B-Block, Govindpuri", City: "Gwalior", State: "MP", Zip: "474011"},
			MobileNumber: "555-1122", CreatedAt: time.Now(),
		},
		{
			ID: "req8", JobID: ids.Job(), CustomerID: "cust3", CustomerName: "Jane Austen",
			ServiceType: requests.TypeRepair, Description: "My Samsung TV screen is black, no picture.",
			Category: types.CategoryTVRepair, Status: requests.StatusRequested,
			Location: "Phoolbagh", Address: types.Address{Street: "15 Poetry Plaza", City: "Gwalior", State: "MP", Zip: "474002"},
			MobileNumber: "555-9012", CreatedAt: time.Now(),
		},
		{
			ID: "req9", JobID: ids.Job(), CustomerID: "cust5", CustomerName: "Aarav Singh",
			ServiceType: requests.TypeRepair, Description: "The walls in the living room need a fresh coat of paint.",
			Category: types.CategoryPainting, Status: requests.StatusRequested,
			Location: "Lashkar", Address: types.Address{Street: "10 Palace Road", City: "Gwalior", State: "MP", Zip: "474001"},
			MobileNumber: "555-3344", CreatedAt: time.Now(),
		},
	}
	for _, r := range list {
		s.Create(r)
	}
}

func seedPlatform(s *platform.Store) {
	s.SetPrices([]platform.PriceEntry{
		{Category: types.CategoryACRepair, Price: 599},
		{Category: types.CategoryPlumbing, Price: 399},
		{Category: types.CategoryElectrical, Price: 449},
		{Category: types.CategoryGeyserRepair, Price: 499},
		{Category: types.CategoryTVRepair, Price: 649},
		{Category: types.CategoryPainting, Price: 299},
		{Category: types.CategoryCarpentry, Price: 349},
		{Category: types.CategoryApplianceRepair, Price: 549},
		{Category: types.CategoryOther, Price: 249},
	})

	offers := []platform.Offer{
		{ID: "offer1", Title: "10% off your first service", Description: "Get a flat discount on your first booking with us.", IsActive: true, DiscountType: platform.DiscountPercentage, DiscountValue: 10, AppliesTo: "first_service"},
		{ID: "offer2", Title: "Refer a friend, get ₹50 credit", Description: "Share Lodhi with friends and earn credits for your next service.", IsActive: true, DiscountType: platform.DiscountFixed, DiscountValue: 50},
		{ID: "offer3", Title: "Diwali Special - ₹100 Off", Description: "Flat ₹100 off on all services above ₹999 during the festival season.", IsActive: false, DiscountType: platform.DiscountFixed, DiscountValue: 100},
	}
	for _, o := range offers {
		s.UpsertOffer(o)
	}

	messages := []platform.SupportMessage{
		{ID: "msg1", SenderID: "admin_ceo", SenderName: "Diana Prince (Admin)", Text: "Welcome to the support channel! Feel free to ask any technical questions here.", Timestamp: ago(20 * time.Minute)},
		{ID: "msg2", SenderID: "tech3", SenderName: "David Lee", Text: "Hi team, I have a weird issue with a Voltas AC unit. The compressor tries to start but cuts off immediately. Any ideas?", Timestamp: ago(15 * time.Minute)},
		{ID: "msg3", SenderID: "tech2", SenderName: "Charlie Brown", Text: "Hey David, sounds like a faulty capacitor or a voltage issue. Have you checked the capacitor with a multimeter?", Timestamp: ago(14 * time.Minute)},
	}
	for _, m := range messages {
		s.AppendSupportMessage(m)
	}

	videos := []platform.TrainingVideo{
		{ID: "vid3", Title: "Mastering P-Trap Installation and Repair", Category: types.CategoryPlumbing, Description: "Step-by-step instructions for a leak-proof P-trap installation every time.", VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{ID: "vid2", Title: "Safe Handling of 3-Phase Electrical Wiring", Category: types.CategoryElectrical, Description: "A comprehensive guide to safety protocols and procedures for high-voltage systems.", VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{ID: "vid1", Title: "Advanced Fault Diagnosis for Inverter ACs", Category: types.CategoryACRepair, Description: "Learn to diagnose common and complex issues in modern inverter air conditioners.", VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
	}
	// Prepending keeps vid1 first, matching how the hub lists newest first.
	for _, v := range videos {
		s.PrependVideo(v)
	}

	expenses := []identity.Expense{
		{ID: "exp1", Date: ago(5 * 24 * time.Hour), Category: identity.ExpenseMarketing, Amount: 5000, Description: "Social Media Campaign"},
		{ID: "exp2", Date: ago(3 * 24 * time.Hour), Category: identity.ExpenseSoftware, Amount: 2000, Description: "Cloud Server Costs"},
		{ID: "exp3", Date: ago(24 * time.Hour), Category: identity.ExpenseOperations, Amount: 8500, Description: "Technician Welcome Kits"},
	}
	for _, e := range expenses {
		s.AppendExpense(e)
	}

	targets := []platform.ExpenseTarget{
		{Category: identity.ExpenseMarketing, Target: 7000},
		{Category: identity.ExpenseSoftware, Target: 2500},
		{Category: identity.ExpenseOperations, Target: 10000},
		{Category: identity.ExpenseSalary, Target: 50000},
	}
	for _, t := range targets {
		s.UpsertTarget(t)
	}
}
