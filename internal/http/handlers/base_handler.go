// README: Shared handler plumbing: JSON error responses and sentinel-error mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/location"
	"lodhi/internal/modules/logistics"
	"lodhi/internal/modules/market"
	"lodhi/internal/modules/platform"
	"lodhi/internal/modules/requests"
)

func isNotFound(err error) bool {
	return errors.Is(err, identity.ErrNotFound) ||
		errors.Is(err, requests.ErrNotFound) ||
		errors.Is(err, requests.ErrNoComplaint) ||
		errors.Is(err, market.ErrShopNotFound) ||
		errors.Is(err, market.ErrProductNotFound) ||
		errors.Is(err, market.ErrOrderNotFound) ||
		errors.Is(err, logistics.ErrJobNotFound) ||
		errors.Is(err, platform.ErrUnknownCategory)
}

func isConflict(err error) bool {
	return errors.Is(err, requests.ErrInvalidState) ||
		errors.Is(err, requests.ErrNoBill) ||
		errors.Is(err, requests.ErrTrackingInactive) ||
		errors.Is(err, market.ErrInvalidState) ||
		errors.Is(err, market.ErrNoDelivery) ||
		errors.Is(err, market.ErrTrackingOff) ||
		errors.Is(err, logistics.ErrInvalidState) ||
		errors.Is(err, logistics.ErrNotTracking)
}

func isForbidden(err error) bool {
	return errors.Is(err, market.ErrNotShopkeeper) ||
		errors.Is(err, market.ErrNotPartner) ||
		errors.Is(err, market.ErrNotCustomer) ||
		errors.Is(err, requests.ErrNotCustomer) ||
		errors.Is(err, requests.ErrNotTechnician) ||
		errors.Is(err, logistics.ErrNotPartner) ||
		errors.Is(err, logistics.ErrNotCustomer) ||
		errors.Is(err, logistics.ErrNoShop)
}

func isUnauthorized(err error) bool {
	return errors.Is(err, identity.ErrLoginFailed) ||
		errors.Is(err, identity.ErrAdminMismatch)
}

func isBadRequest(err error) bool {
	return errors.Is(err, identity.ErrBadRequest) ||
		errors.Is(err, requests.ErrBadRequest) ||
		errors.Is(err, market.ErrBadRequest) ||
		errors.Is(err, platform.ErrBadRequest) ||
		errors.Is(err, logistics.ErrBadRequest) ||
		errors.Is(err, logistics.ErrUnknownKind) ||
		errors.Is(err, location.ErrUnknownKind)
}

// writeError maps module sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body.
func writeError(c *gin.Context, err error) {
	switch {
	case isNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, requests.ErrNoSuggester), errors.Is(err, location.ErrNoMirror):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
}
