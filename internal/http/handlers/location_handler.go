// README: External live-location update endpoint.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lodhi/internal/modules/location"
	"lodhi/internal/types"
)

type LocationHandler struct {
	location *location.Service
}

func NewLocationHandler(svc *location.Service) *LocationHandler {
	return &LocationHandler{location: svc}
}

func (h *LocationHandler) Update(c *gin.Context) {
	var req struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	kind := location.Kind(c.Param("kind"))
	err := h.location.Update(c.Request.Context(), kind, types.ID(c.Param("id")), types.Point{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Nearby answers "who is close to me" over the GEO mirror.
func (h *LocationHandler) Nearby(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radiusKm", "5"), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radiusKm must be a positive number"})
		return
	}

	kind := location.Kind(c.Param("kind"))
	ids, err := h.location.Nearby(c.Request.Context(), kind, types.Point{Lat: lat, Lng: lng}, radius)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}
