package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	"github.com/BruksfildServices01/rental-booking/internal/usecase/auth"
)

type AuthHandler struct {
	login *auth.Login
}

func NewAuthHandler(login *auth.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

// --------- Requests ---------

// Campos ausentes viram string vazia e simplesmente não casam.
type LoginRequest struct {
	Email    string `json:"EMAIL"`
	Password string `json:"SENHA"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "invalid_request", err)
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, "login_failed", err)
		return
	}

	httpresp.Updated(c, "Login realizado!", "usuario", user.ToDTO())
}
