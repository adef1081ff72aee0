// README: Marketplace endpoints: shops, products, orders, delivery and ratings.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lodhi/internal/http/middleware"
	"lodhi/internal/modules/market"
	"lodhi/internal/types"
)

type MarketHandler struct {
	market *market.Service
}

func NewMarketHandler(svc *market.Service) *MarketHandler {
	return &MarketHandler{market: svc}
}

type registerShopReq struct {
	Name            string        `json:"name"`
	Location        string        `json:"location"`
	Address         types.Address `json:"address"`
	IsGSTRegistered bool          `json:"isGstRegistered"`
	GSTNumber       string        `json:"gstNumber"`
}

func (h *MarketHandler) RegisterShop(c *gin.Context) {
	var req registerShopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	sh, err := h.market.RegisterShop(middleware.CallerID(c), market.RegisterShopCommand{
		Name:            req.Name,
		Location:        req.Location,
		Address:         req.Address,
		IsGSTRegistered: req.IsGSTRegistered,
		GSTNumber:       req.GSTNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sh)
}

func (h *MarketHandler) ListShops(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.ListShops())
}

func (h *MarketHandler) VerifyShop(c *gin.Context) {
	var req struct {
		IsVerified bool `json:"isVerified"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.market.VerifyShop(types.ID(c.Param("id")), req.IsVerified); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketHandler) UpsertProduct(c *gin.Context) {
	var p market.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		badJSON(c)
		return
	}
	saved, err := h.market.UpsertProduct(p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *MarketHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.ListProducts())
}

type buyReq struct {
	ProductID      string             `json:"productId"`
	BillingAddress types.Address      `json:"billingAddress"`
	PaymentMode    market.PaymentMode `json:"paymentMode"`
}

func (h *MarketHandler) Buy(c *gin.Context) {
	var req buyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	o, err := h.market.Buy(middleware.CallerID(c), market.BuyCommand{
		ProductID:      types.ID(req.ProductID),
		BillingAddress: req.BillingAddress,
		PaymentMode:    req.PaymentMode,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *MarketHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.ListOrders())
}

func (h *MarketHandler) GetOrder(c *gin.Context) {
	o, err := h.market.GetOrder(types.ID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *MarketHandler) GenerateBill(c *gin.Context) {
	if err := h.market.GenerateBill(types.ID(c.Param("id"))); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status market.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.market.UpdateStatus(types.ID(c.Param("id")), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketHandler) AssignDeliveryPartner(c *gin.Context) {
	var req struct {
		PartnerID string `json:"partnerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.market.AssignDeliveryPartner(types.ID(c.Param("id")), types.ID(req.PartnerID)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketHandler) UpdateDeliveryStatus(c *gin.Context) {
	var req struct {
		Status market.DeliveryStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.market.UpdateDeliveryStatus(types.ID(c.Param("id")), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type rateExperienceReq struct {
	ShopRating    float64 `json:"shopRating"`
	PartnerRating float64 `json:"partnerRating"`
	Comment       string  `json:"comment"`
}

func (h *MarketHandler) RateExperience(c *gin.Context) {
	var req rateExperienceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.market.RateExperience(types.ID(c.Param("id")), req.ShopRating, req.PartnerRating, req.Comment); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketHandler) RateShopByPartner(c *gin.Context) {
	var req struct {
		Rating float64 `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.market.RateShopByPartner(types.ID(c.Param("id")), req.Rating); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketHandler) ToggleDeliveryTracking(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.market.ToggleDeliveryTracking(types.ID(c.Param("id")), req.Active); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
