package identity

import (
	"errors"
	"testing"
	"time"

	"lodhi/internal/types"
)

func newSeededService() *Service {
	s := NewStore()
	s.Create(&User{
		ID: "cust1", Name: "Alice", Role: RoleCustomer, MobileNumber: "9876543210",
		Customer: &CustomerProfile{Loyalty: Loyalty{Points: 2500, Tier: TierSilver}, ReferralCode: "LODHI-ALICE1"},
	})
	s.Create(&User{
		ID: "tech1", Name: "Bob", Role: RoleTechnician, MobileNumber: "5550001111",
		Wallet:     &Wallet{Balance: 100},
		Technician: &TechnicianProfile{Specialty: types.CategoryPlumbing, Available: true},
	})
	s.Create(&User{
		ID: "admin_ceo", Name: "Diana", Role: RoleAdmin, MobileNumber: "555-ADMIN-01",
		Admin: &AdminProfile{Role: AdminCEO},
	})
	s.Create(&User{
		ID: "delivery1", Name: "Karan", Role: RoleDeliveryPartner, MobileNumber: "6660001111",
		DeliveryPartner: &DeliveryPartnerProfile{Available: true},
	})
	return NewService(s)
}

func TestMobileLogin(t *testing.T) {
	svc := newSeededService()

	cases := []struct {
		name    string
		mobile  string
		wantID  types.ID
		wantErr error
	}{
		{"customer", "9876543210", "cust1", nil},
		{"technician", "5550001111", "tech1", nil},
		{"admin blocked from mobile login", "555-ADMIN-01", "", ErrLoginFailed},
		{"unknown number", "0000000000", "", ErrLoginFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := svc.MobileLogin(tc.mobile)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil && u.ID != tc.wantID {
				t.Errorf("user = %s, want %s", u.ID, tc.wantID)
			}
		})
	}
}

func TestAdminLogin(t *testing.T) {
	svc := newSeededService()

	if _, err := svc.AdminLogin("admin_ceo", AdminCEO); err != nil {
		t.Fatalf("matching id and sub-role: %v", err)
	}
	if _, err := svc.AdminLogin("admin_ceo", AdminManager); !errors.Is(err, ErrAdminMismatch) {
		t.Errorf("wrong sub-role: err = %v, want ErrAdminMismatch", err)
	}
	if _, err := svc.AdminLogin("cust1", AdminCEO); !errors.Is(err, ErrAdminMismatch) {
		t.Errorf("non-admin user: err = %v, want ErrAdminMismatch", err)
	}
	if _, err := svc.AdminLogin("ghost", AdminCEO); !errors.Is(err, ErrAdminMismatch) {
		t.Errorf("unknown user: err = %v, want ErrAdminMismatch", err)
	}
}

func TestCreditWalletKeepsLedgerConsistent(t *testing.T) {
	svc := newSeededService()

	if err := svc.CreditWallet("tech1", 500, "Job payout", SourcePayout); err != nil {
		t.Fatal(err)
	}
	if err := svc.AwardBonus("tech1", 250, "Festival bonus"); err != nil {
		t.Fatal(err)
	}

	u, err := svc.Get("tech1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Wallet.Balance != 850 {
		t.Errorf("balance = %v, want 850", u.Wallet.Balance)
	}
	if len(u.Wallet.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(u.Wallet.Transactions))
	}
	sum := 0.0
	for _, txn := range u.Wallet.Transactions {
		sum += txn.Amount
	}
	if sum != 750 {
		t.Errorf("ledger sum = %v, want 750", sum)
	}
	if got := u.Wallet.Transactions[1].Source; got != SourceBonus {
		t.Errorf("bonus source = %s, want %s", got, SourceBonus)
	}
}

func TestCreditWalletCreatesMissingWallet(t *testing.T) {
	svc := newSeededService()

	if err := svc.CreditWallet("cust1", 100, "Goodwill credit", SourceBonus); err != nil {
		t.Fatal(err)
	}
	u, _ := svc.Get("cust1")
	if u.Wallet == nil || u.Wallet.Balance != 100 {
		t.Fatalf("wallet = %+v, want balance 100", u.Wallet)
	}
}

func TestSetAvailability(t *testing.T) {
	svc := newSeededService()

	if err := svc.SetAvailability("tech1", false); err != nil {
		t.Fatal(err)
	}
	u, _ := svc.Get("tech1")
	if u.Technician.Available {
		t.Error("technician still available after toggle off")
	}

	if err := svc.SetAvailability("delivery1", false); err != nil {
		t.Fatal(err)
	}
	u, _ = svc.Get("delivery1")
	if u.DeliveryPartner.Available {
		t.Error("partner still available after toggle off")
	}

	if err := svc.SetAvailability("cust1", false); !errors.Is(err, ErrBadRequest) {
		t.Errorf("customer availability: err = %v, want ErrBadRequest", err)
	}
}

func TestAddTechnician(t *testing.T) {
	svc := newSeededService()

	u, err := svc.AddTechnician(AddTechnicianCommand{
		Name:         "Meena Joshi",
		MobileNumber: "5551234567",
		Specialty:    types.CategoryPainting,
		WeeklyGoal:   9000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != RoleTechnician || u.Technician == nil {
		t.Fatalf("user = %+v, want technician profile", u)
	}
	if !u.Technician.Available {
		t.Error("new technician should start available")
	}
	if u.Wallet == nil {
		t.Error("new technician should start with a wallet")
	}
	if u.Technician.TechnicianID[:2] != "T-" {
		t.Errorf("technician id = %q, want painting prefix T-", u.Technician.TechnicianID)
	}

	if _, err := svc.AddTechnician(AddTechnicianCommand{Name: "No Mobile"}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("missing mobile: err = %v, want ErrBadRequest", err)
	}
}

func TestUpdateAttendance(t *testing.T) {
	svc := newSeededService()

	day := time.Now().Format("2006-01-02")
	if err := svc.UpdateAttendance("tech1", day, AttendanceLeave); err != nil {
		t.Fatal(err)
	}
	u, _ := svc.Get("tech1")
	if u.Attendance[day] != AttendanceLeave {
		t.Errorf("attendance[%s] = %s, want %s", day, u.Attendance[day], AttendanceLeave)
	}
}

func TestStoreSnapshotsAreIsolated(t *testing.T) {
	svc := newSeededService()

	u, _ := svc.Get("cust1")
	u.Customer.Loyalty.Points = 0
	u.Name = "Mallory"

	again, _ := svc.Get("cust1")
	if again.Customer.Loyalty.Points != 2500 || again.Name != "Alice" {
		t.Errorf("store state leaked through snapshot: %+v", again)
	}
}
