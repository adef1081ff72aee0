// README: Platform-wide configuration: price list, offers, training hub, support chat, incentives, expenses.
package platform

import (
	"time"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

// PriceEntry is the advertised base price for one service category.
type PriceEntry struct {
	Category types.ServiceCategory `json:"category"`
	Price    float64               `json:"price"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Offer struct {
	ID            types.ID     `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	IsActive      bool         `json:"isActive"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	AppliesTo     string       `json:"appliesTo,omitempty"`
}

type SupportMessage struct {
	ID         types.ID  `json:"id"`
	SenderID   types.ID  `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

type TrainingVideo struct {
	ID          types.ID              `json:"id"`
	Title       string                `json:"title"`
	Category    types.ServiceCategory `json:"category"`
	Description string                `json:"description"`
	VideoURL    string                `json:"videoUrl"`
}

type IncentiveTargetType string

const (
	TargetJobsCompleted       IncentiveTargetType = "jobsCompleted"
	TargetDeliveriesCompleted IncentiveTargetType = "deliveriesCompleted"
)

type IncentiveProgram struct {
	ID              types.ID            `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	TargetType      IncentiveTargetType `json:"targetType"`
	TargetValue     float64             `json:"targetValue"`
	BonusAmount     float64             `json:"bonusAmount"`
	IsActive        bool                `json:"isActive"`
	ApplicableRoles []identity.Role     `json:"applicableRoles"`
}

// ExpenseTarget is the monthly spend ceiling for one expense category.
type ExpenseTarget struct {
	Category identity.ExpenseCategory `json:"category"`
	Target   float64                  `json:"target"`
}
