// README: Platform endpoints: pricing, offers, training hub, support chat, incentives, expenses.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lodhi/internal/http/middleware"
	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/platform"
)

type PlatformHandler struct {
	platform *platform.Service
}

func NewPlatformHandler(svc *platform.Service) *PlatformHandler {
	return &PlatformHandler{platform: svc}
}

func (h *PlatformHandler) ListPrices(c *gin.Context) {
	c.JSON(http.StatusOK, h.platform.Prices())
}

func (h *PlatformHandler) UpdatePrice(c *gin.Context) {
	var req platform.PriceEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.platform.UpdatePrice(req.Category, req.Price); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlatformHandler) ListOffers(c *gin.Context) {
	c.JSON(http.StatusOK, h.platform.Offers())
}

func (h *PlatformHandler) UpsertOffer(c *gin.Context) {
	var req platform.Offer
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.platform.UpsertOffer(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *PlatformHandler) ListVideos(c *gin.Context) {
	c.JSON(http.StatusOK, h.platform.Videos())
}

func (h *PlatformHandler) AddVideo(c *gin.Context) {
	var req platform.TrainingVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.platform.AddVideo(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *PlatformHandler) ListSupportMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.platform.SupportMessages())
}

func (h *PlatformHandler) SendSupportMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	m, err := h.platform.SendSupportMessage(middleware.CallerID(c), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *PlatformHandler) ListIncentives(c *gin.Context) {
	c.JSON(http.StatusOK, h.platform.Incentives())
}

func (h *PlatformHandler) UpsertIncentive(c *gin.Context) {
	var req platform.IncentiveProgram
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.platform.UpsertIncentive(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *PlatformHandler) ListExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, h.platform.Expenses())
}

func (h *PlatformHandler) AddExpense(c *gin.Context) {
	var req identity.Expense
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.platform.AddExpense(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *PlatformHandler) ListTargets(c *gin.Context) {
	c.JSON(http.StatusOK, h.platform.Targets())
}

func (h *PlatformHandler) UpsertTarget(c *gin.Context) {
	var req platform.ExpenseTarget
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if req.Category == "" {
		badJSON(c)
		return
	}
	h.platform.UpsertTarget(req)
	c.Status(http.StatusNoContent)
}
