// README: User aggregate: shared base plus exactly one role profile.
package identity

import (
	"time"

	"lodhi/internal/types"
)

type Role string

const (
	RoleCustomer        Role = "Customer"
	RoleTechnician      Role = "Technician"
	RoleAdmin           Role = "Admin"
	RoleShopkeeper      Role = "Shopkeeper"
	RoleDeliveryPartner Role = "Delivery Partner"
	RoleStaff           Role = "Staff"
)

// AdminRole doubles as the complaint escalation ladder, lowest tier last.
type AdminRole string

const (
	AdminCEO          AdminRole = "CEO"
	AdminManager      AdminRole = "Manager"
	AdminTech         AdminRole = "Tech Admin"
	AdminDelivery     AdminRole = "Delivery Admin"
	AdminMarket       AdminRole = "Market Admin"
	AdminReceptionist AdminRole = "Receptionist"
)

type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "Bronze"
	TierSilver LoyaltyTier = "Silver"
	TierGold   LoyaltyTier = "Gold"
)

const (
	goldThreshold   = 7500
	silverThreshold = 2000
)

type Loyalty struct {
	Points int         `json:"points"`
	Tier   LoyaltyTier `json:"tier"`
}

// UpgradeTier returns the tier for points, never downgrading from current.
func UpgradeTier(current LoyaltyTier, points int) LoyaltyTier {
	switch {
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold && current != TierGold:
		return TierSilver
	default:
		return current
	}
}

type TransactionSource string

const (
	SourceJobFee        TransactionSource = "Job Fee"
	SourceDeliveryFee   TransactionSource = "Delivery Fee"
	SourceBonus         TransactionSource = "Bonus"
	SourceSalary        TransactionSource = "Salary"
	SourcePayout        TransactionSource = "Payout"
	SourceIncentive     TransactionSource = "Incentive"
	SourceReferralBonus TransactionSource = "Referral Bonus"
)

type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Source      TransactionSource `json:"source"`
}

// Wallet is an append-only ledger; Balance always equals the sum of
// Transactions plus the seeded opening balance.
type Wallet struct {
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
)

type ExpenseCategory string

const (
	ExpenseFuel       ExpenseCategory = "Fuel"
	ExpenseParts      ExpenseCategory = "Parts"
	ExpenseTools      ExpenseCategory = "Tools"
	ExpenseMarketing  ExpenseCategory = "Marketing"
	ExpenseSoftware   ExpenseCategory = "Software"
	ExpenseOperations ExpenseCategory = "Operations"
	ExpenseSalary     ExpenseCategory = "Salary"
	ExpenseOther      ExpenseCategory = "Other"
)

type Expense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
}

type PaymentRecord struct {
	RequestID types.ID  `json:"requestId"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Paid      bool      `json:"paid"`
}

type InsuranceInfo struct {
	Provider     string    `json:"provider"`
	PolicyNumber string    `json:"policyNumber"`
	ExpiryDate   time.Time `json:"expiryDate"`
}

type VehicleType string

const (
	VehicleBike      VehicleType = "Bike"
	VehicleERickshaw VehicleType = "E-Rickshaw"
	VehicleLorry     VehicleType = "Lorry"
	VehicleVan       VehicleType = "Van"
	VehicleTruck     VehicleType = "Truck"
)

type DrivingLicense struct {
	Number     string    `json:"number"`
	ExpiryDate time.Time `json:"expiryDate"`
}

type VehicleDetails struct {
	Type               VehicleType     `json:"type"`
	Model              string          `json:"model"`
	RegistrationNumber string          `json:"registrationNumber"`
	InsuranceExpiry    time.Time       `json:"insuranceExpiry"`
	License            *DrivingLicense `json:"drivingLicense,omitempty"`
}

// PartnerPerformance aggregates a delivery partner's customer ratings.
type PartnerPerformance struct {
	CustomerRating types.Rating `json:"customerRating"`
	OnTimeRate     float64      `json:"onTimeRate"`
	RecentFeedback []string     `json:"recentFeedback"`
}

type CustomerProfile struct {
	Loyalty             Loyalty    `json:"loyalty"`
	ReferralCode        string     `json:"referralCode"`
	ReferredBy          string     `json:"referredBy,omitempty"` // referrer's referral code
	SuccessfulReferrals []types.ID `json:"successfulReferrals,omitempty"`
	WhatsappConsent     bool       `json:"whatsappConsent"`
}

type TechnicianProfile struct {
	Specialty        types.ServiceCategory `json:"specialty"`
	TechnicianID     string                `json:"technicianId"`
	Available        bool                  `json:"isAvailable"`
	Rating           float64               `json:"rating"`
	Insurance        *InsuranceInfo        `json:"insuranceInfo,omitempty"`
	PaymentHistory   []PaymentRecord       `json:"paymentHistory,omitempty"`
	DateOfBirth      *time.Time            `json:"dateOfBirth,omitempty"`
	JoiningDate      *time.Time            `json:"joiningDate,omitempty"`
	PermanentAddress types.Address         `json:"permanentAddress,omitempty"`
	CurrentAddress   types.Address         `json:"currentAddress,omitempty"`
}

type AdminProfile struct {
	Role AdminRole `json:"adminRole"`
}

type ShopkeeperProfile struct {
	ShopID            types.ID `json:"shopId,omitempty"`
	HasRegisteredShop bool     `json:"hasRegisteredShop"`
}

type DeliveryPartnerProfile struct {
	Available    bool               `json:"isAvailable"`
	Rating       float64            `json:"rating"`
	Vehicle      *VehicleDetails    `json:"vehicleDetails,omitempty"`
	Performance  PartnerPerformance `json:"performance"`
	LiveLocation *types.Point       `json:"liveLocation,omitempty"`
}

type StaffProfile struct{}

// User carries the shared base fields; Role selects which profile
// pointer is non-nil. A valid user never holds two profiles.
type User struct {
	ID           types.ID `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	MobileNumber string   `json:"mobileNumber"`
	Role         Role     `json:"role"`
	Location     string   `json:"location,omitempty"`

	Customer        *CustomerProfile        `json:"customer,omitempty"`
	Technician      *TechnicianProfile      `json:"technician,omitempty"`
	Admin           *AdminProfile           `json:"admin,omitempty"`
	Shopkeeper      *ShopkeeperProfile      `json:"shopkeeper,omitempty"`
	DeliveryPartner *DeliveryPartnerProfile `json:"deliveryPartner,omitempty"`
	Staff           *StaffProfile           `json:"staff,omitempty"`

	BaseSalary float64                     `json:"baseSalary,omitempty"`
	WeeklyGoal float64                     `json:"weeklyGoal,omitempty"`
	Wallet     *Wallet                     `json:"wallet,omitempty"`
	Expenses   []Expense                   `json:"expenses,omitempty"`
	Attendance map[string]AttendanceStatus `json:"attendance,omitempty"`
}

// Clone deep-copies the user so callers can never mutate store state
// through a returned snapshot.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Customer != nil {
		p := *u.Customer
		p.SuccessfulReferrals = append([]types.ID(nil), u.Customer.SuccessfulReferrals...)
		c.Customer = &p
	}
	if u.Technician != nil {
		p := *u.Technician
		p.PaymentHistory = append([]PaymentRecord(nil), u.Technician.PaymentHistory...)
		if u.Technician.Insurance != nil {
			ins := *u.Technician.Insurance
			p.Insurance = &ins
		}
		c.Technician = &p
	}
	if u.Admin != nil {
		p := *u.Admin
		c.Admin = &p
	}
	if u.Shopkeeper != nil {
		p := *u.Shopkeeper
		c.Shopkeeper = &p
	}
	if u.DeliveryPartner != nil {
		p := *u.DeliveryPartner
		if u.DeliveryPartner.Vehicle != nil {
			v := *u.DeliveryPartner.Vehicle
			if u.DeliveryPartner.Vehicle.License != nil {
				l := *u.DeliveryPartner.Vehicle.License
				v.License = &l
			}
			p.Vehicle = &v
		}
		p.Performance.RecentFeedback = append([]string(nil), u.DeliveryPartner.Performance.RecentFeedback...)
		if u.DeliveryPartner.LiveLocation != nil {
			pos := *u.DeliveryPartner.LiveLocation
			p.LiveLocation = &pos
		}
		c.DeliveryPartner = &p
	}
	if u.Wallet != nil {
		w := Wallet{
			Balance:      u.Wallet.Balance,
			Transactions: append([]Transaction(nil), u.Wallet.Transactions...),
		}
		c.Wallet = &w
	}
	c.Expenses = append([]Expense(nil), u.Expenses...)
	if u.Attendance != nil {
		c.Attendance = make(map[string]AttendanceStatus, len(u.Attendance))
		for k, v := range u.Attendance {
			c.Attendance[k] = v
		}
	}
	return &c
}
