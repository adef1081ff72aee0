// README: Logistics endpoints: delivery and packers & movers jobs.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lodhi/internal/http/middleware"
	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/logistics"
	"lodhi/internal/types"
)

type LogisticsHandler struct {
	logistics *logistics.Service
}

func NewLogisticsHandler(svc *logistics.Service) *LogisticsHandler {
	return &LogisticsHandler{logistics: svc}
}

type shopDeliveryReq struct {
	Destination types.Address        `json:"destinationAddress"`
	ItemName    string               `json:"itemName"`
	ItemWeight  string               `json:"itemWeight"`
	Vehicle     identity.VehicleType `json:"vehicleType"`
}

func (h *LogisticsHandler) RequestShopDelivery(c *gin.Context) {
	var req shopDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	j, err := h.logistics.RequestShopDelivery(middleware.CallerID(c), logistics.ShopDeliveryCommand{
		Destination: req.Destination,
		ItemName:    req.ItemName,
		ItemWeight:  req.ItemWeight,
		Vehicle:     req.Vehicle,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

type packersMoversReq struct {
	Pickup      types.Address        `json:"pickupAddress"`
	Destination types.Address        `json:"destinationAddress"`
	ItemDetails string               `json:"itemDetails"`
	ItemWeight  string               `json:"itemWeight"`
	Vehicle     identity.VehicleType `json:"vehicleType"`
}

func (h *LogisticsHandler) RequestPackersMovers(c *gin.Context) {
	var req packersMoversReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	j, err := h.logistics.RequestPackersMovers(middleware.CallerID(c), logistics.PackersMoversCommand{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		ItemDetails: req.ItemDetails,
		ItemWeight:  req.ItemWeight,
		Vehicle:     req.Vehicle,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

func (h *LogisticsHandler) ListShopDeliveries(c *gin.Context) {
	c.JSON(http.StatusOK, h.logistics.ListShopDeliveries())
}

func (h *LogisticsHandler) ListMoves(c *gin.Context) {
	c.JSON(http.StatusOK, h.logistics.ListMoves())
}

func (h *LogisticsHandler) AssignPartner(c *gin.Context) {
	var req struct {
		PartnerID string `json:"partnerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	kind := logistics.Kind(c.Param("kind"))
	if err := h.logistics.AssignPartner(kind, types.ID(c.Param("id")), types.ID(req.PartnerID)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LogisticsHandler) Accept(c *gin.Context) {
	kind := logistics.Kind(c.Param("kind"))
	if err := h.logistics.Accept(kind, types.ID(c.Param("id")), middleware.CallerID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LogisticsHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status logistics.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	kind := logistics.Kind(c.Param("kind"))
	if err := h.logistics.UpdateStatus(kind, types.ID(c.Param("id")), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
