// README: User and HR endpoints: directory, technicians, payroll, attendance.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

type HRHandler struct {
	users *identity.Service
}

func NewHRHandler(users *identity.Service) *HRHandler {
	return &HRHandler{users: users}
}

func (h *HRHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.List())
}

func (h *HRHandler) GetUser(c *gin.Context) {
	u, err := h.users.Get(types.ID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type addTechnicianReq struct {
	Name         string                  `json:"name"`
	Email        string                  `json:"email"`
	MobileNumber string                  `json:"mobileNumber"`
	Location     string                  `json:"location"`
	Specialty    types.ServiceCategory   `json:"specialty"`
	Insurance    *identity.InsuranceInfo `json:"insurance"`
	WeeklyGoal   float64                 `json:"weeklyGoal"`
}

func (h *HRHandler) AddTechnician(c *gin.Context) {
	var req addTechnicianReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	u, err := h.users.AddTechnician(identity.AddTechnicianCommand{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Location:     req.Location,
		Specialty:    req.Specialty,
		Insurance:    req.Insurance,
		WeeklyGoal:   req.WeeklyGoal,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *HRHandler) UpdateSalary(c *gin.Context) {
	var req struct {
		BaseSalary float64 `json:"baseSalary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.users.UpdateSalary(types.ID(c.Param("id")), req.BaseSalary); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HRHandler) AwardBonus(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.users.AwardBonus(types.ID(c.Param("id")), req.Amount, req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HRHandler) UpdateWeeklyGoal(c *gin.Context) {
	var req struct {
		WeeklyGoal float64 `json:"weeklyGoal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.users.UpdateWeeklyGoal(types.ID(c.Param("id")), req.WeeklyGoal); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addUserExpenseReq struct {
	Category    identity.ExpenseCategory `json:"category"`
	Amount      float64                  `json:"amount"`
	Description string                   `json:"description"`
	Date        time.Time                `json:"date"`
}

func (h *HRHandler) AddExpense(c *gin.Context) {
	var req addUserExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.users.AddExpense(types.ID(c.Param("id")), req.Category, req.Amount, req.Description, req.Date); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HRHandler) UpdateAttendance(c *gin.Context) {
	var req struct {
		Date   string                    `json:"date"`
		Status identity.AttendanceStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.users.UpdateAttendance(types.ID(c.Param("id")), req.Date, req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HRHandler) SetAvailability(c *gin.Context) {
	var req struct {
		Available bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.users.SetAvailability(types.ID(c.Param("id")), req.Available); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
