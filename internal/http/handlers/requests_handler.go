// README: Service-request endpoints: lifecycle, billing, complaints, chat, tracking.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lodhi/internal/http/middleware"
	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/requests"
	"lodhi/internal/types"
)

type RequestsHandler struct {
	requests *requests.Service
}

func NewRequestsHandler(svc *requests.Service) *RequestsHandler {
	return &RequestsHandler{requests: svc}
}

type createRequestReq struct {
	Description  string                `json:"description"`
	Category     types.ServiceCategory `json:"category"`
	ServiceType  requests.ServiceType  `json:"serviceType"`
	Location     string                `json:"location"`
	Address      types.Address         `json:"address"`
	MobileNumber string                `json:"mobileNumber"`
}

func (h *RequestsHandler) Create(c *gin.Context) {
	var req createRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	r, err := h.requests.Create(requests.CreateCommand{
		CustomerID:   middleware.CallerID(c),
		Description:  req.Description,
		Category:     req.Category,
		ServiceType:  req.ServiceType,
		Location:     req.Location,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *RequestsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.requests.List())
}

func (h *RequestsHandler) Get(c *gin.Context) {
	r, err := h.requests.Get(types.ID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RequestsHandler) Assign(c *gin.Context) {
	var req struct {
		TechnicianID string `json:"technicianId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.AssignTechnician(types.ID(c.Param("id")), types.ID(req.TechnicianID)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status requests.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.UpdateStatus(types.ID(c.Param("id")), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type issueBillReq struct {
	ItemCharge    float64 `json:"itemCharge"`
	ServiceCharge float64 `json:"serviceCharge"`
	Discount      float64 `json:"discount"`
	OfferDiscount float64 `json:"offerDiscount"`
}

func (h *RequestsHandler) IssueBill(c *gin.Context) {
	var req issueBillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	err := h.requests.IssueBill(types.ID(c.Param("id")), requests.IssueBillCommand{
		ItemCharge:    req.ItemCharge,
		ServiceCharge: req.ServiceCharge,
		Discount:      req.Discount,
		OfferDiscount: req.OfferDiscount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) CompletePayment(c *gin.Context) {
	if err := h.requests.CompletePayment(types.ID(c.Param("id"))); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) FileComplaint(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.FileComplaint(types.ID(c.Param("id")), req.Text); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) ResolveComplaint(c *gin.Context) {
	var req struct {
		Remark string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.ResolveComplaint(types.ID(c.Param("id")), req.Remark); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) EscalateComplaint(c *gin.Context) {
	var req struct {
		Level identity.AdminRole `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.EscalateComplaint(types.ID(c.Param("id")), req.Level); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) SuggestComplaintFix(c *gin.Context) {
	hint, err := h.requests.SuggestComplaintFix(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": hint})
}

func (h *RequestsHandler) Rate(c *gin.Context) {
	var req struct {
		Rating   float64 `json:"rating"`
		Feedback string  `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.Rate(types.ID(c.Param("id")), req.Rating, req.Feedback); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) SendMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.SendMessage(types.ID(c.Param("id")), middleware.CallerID(c), req.Text); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestsHandler) ToggleLocationSharing(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if err := h.requests.ToggleLocationSharing(types.ID(c.Param("id")), req.Active); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
