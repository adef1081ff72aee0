// README: Login endpoints issuing session tokens.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lodhi/internal/infra"
	"lodhi/internal/modules/identity"
	"lodhi/internal/types"
)

type AuthHandler struct {
	users  *identity.Service
	issuer *infra.TokenIssuer
}

func NewAuthHandler(users *identity.Service, issuer *infra.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

type mobileLoginReq struct {
	MobileNumber string `json:"mobileNumber"`
}

func (h *AuthHandler) MobileLogin(c *gin.Context) {
	var req mobileLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	user, err := h.users.MobileLogin(req.MobileNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	h.issue(c, user)
}

type adminLoginReq struct {
	UserID    string             `json:"userId"`
	AdminRole identity.AdminRole `json:"adminRole"`
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req adminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	user, err := h.users.AdminLogin(types.ID(req.UserID), req.AdminRole)
	if err != nil {
		writeError(c, err)
		return
	}
	h.issue(c, user)
}

func (h *AuthHandler) issue(c *gin.Context, user *identity.User) {
	token, err := h.issuer.Issue(user.ID, string(user.Role))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
