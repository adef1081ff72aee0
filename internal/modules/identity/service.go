// README: Identity service: login, HR operations, wallet credits.
package identity

import (
	"errors"
	"time"

	"lodhi/internal/ids"
	"lodhi/internal/types"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrBadRequest    = errors.New("bad request")
	ErrLoginFailed   = errors.New("user with this mobile number not found")
	ErrAdminMismatch = errors.New("invalid user id or role for an admin")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Store() *Store { return s.store }

// MobileLogin resolves any non-admin user by mobile number.
func (s *Service) MobileLogin(mobile string) (*User, error) {
	u, err := s.store.GetByMobile(mobile)
	if err != nil || u.Role == RoleAdmin {
		return nil, ErrLoginFailed
	}
	return u, nil
}

// AdminLogin requires both the user ID and the admin sub-role to match.
func (s *Service) AdminLogin(userID types.ID, role AdminRole) (*User, error) {
	u, err := s.store.Get(userID)
	if err != nil || u.Role != RoleAdmin || u.Admin == nil || u.Admin.Role != role {
		return nil, ErrAdminMismatch
	}
	return u, nil
}

func (s *Service) Get(id types.ID) (*User, error) { return s.store.Get(id) }

func (s *Service) List() []*User { return s.store.List() }

type AddTechnicianCommand struct {
	Name         string
	Email        string
	MobileNumber string
	Location     string
	Specialty    types.ServiceCategory
	Insurance    *InsuranceInfo
	WeeklyGoal   float64
}

// AddTechnician registers a new technician with a specialty-prefixed ID.
func (s *Service) AddTechnician(cmd AddTechnicianCommand) (*User, error) {
	if cmd.Name == "" || cmd.MobileNumber == "" {
		return nil, ErrBadRequest
	}
	specialty := cmd.Specialty
	if specialty == "" {
		specialty = types.CategoryOther
	}
	u := &User{
		ID:           types.ID("tech_" + ids.Entity()),
		Name:         cmd.Name,
		Email:        cmd.Email,
		MobileNumber: cmd.MobileNumber,
		Role:         RoleTechnician,
		Location:     cmd.Location,
		Technician: &TechnicianProfile{
			Specialty:      specialty,
			TechnicianID:   ids.Technician(specialty),
			Available:      true,
			PaymentHistory: []PaymentRecord{},
			Insurance:      cmd.Insurance,
		},
		WeeklyGoal: cmd.WeeklyGoal,
		Wallet:     &Wallet{},
	}
	s.store.Create(u)
	return u, nil
}

func (s *Service) UpdateSalary(userID types.ID, salary float64) error {
	_, err := s.store.Update(userID, func(u *User) error {
		u.BaseSalary = salary
		return nil
	})
	return err
}

// CreditWallet appends a ledger entry and moves the balance by the same
// amount in one atomic record replacement.
func (s *Service) CreditWallet(userID types.ID, amount float64, description string, source TransactionSource) error {
	_, err := s.store.Update(userID, func(u *User) error {
		if u.Wallet == nil {
			u.Wallet = &Wallet{}
		}
		u.Wallet.Transactions = append(u.Wallet.Transactions, Transaction{
			ID:          "txn_" + ids.Entity(),
			Date:        time.Now(),
			Amount:      amount,
			Description: description,
			Source:      source,
		})
		u.Wallet.Balance += amount
		return nil
	})
	return err
}

// AwardBonus credits a discretionary bonus.
func (s *Service) AwardBonus(userID types.ID, amount float64, reason string) error {
	return s.CreditWallet(userID, amount, reason, SourceBonus)
}

func (s *Service) UpdateWeeklyGoal(userID types.ID, goal float64) error {
	_, err := s.store.Update(userID, func(u *User) error {
		u.WeeklyGoal = goal
		return nil
	})
	return err
}

func (s *Service) AddExpense(userID types.ID, category ExpenseCategory, amount float64, description string, date time.Time) error {
	_, err := s.store.Update(userID, func(u *User) error {
		u.Expenses = append(u.Expenses, Expense{
			ID:          "exp_" + ids.Entity(),
			Date:        date,
			Category:    category,
			Amount:      amount,
			Description: description,
		})
		return nil
	})
	return err
}

// UpdateAttendance records one day's status; date is "YYYY-MM-DD".
func (s *Service) UpdateAttendance(userID types.ID, date string, status AttendanceStatus) error {
	_, err := s.store.Update(userID, func(u *User) error {
		if u.Attendance == nil {
			u.Attendance = make(map[string]AttendanceStatus)
		}
		u.Attendance[date] = status
		return nil
	})
	return err
}

// SetAvailability toggles a technician's or delivery partner's duty flag.
func (s *Service) SetAvailability(userID types.ID, available bool) error {
	_, err := s.store.Update(userID, func(u *User) error {
		switch {
		case u.Technician != nil:
			u.Technician.Available = available
		case u.DeliveryPartner != nil:
			u.DeliveryPartner.Available = available
		default:
			return ErrBadRequest
		}
		return nil
	})
	return err
}
