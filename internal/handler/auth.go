package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/model"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles credential exchange for access tokens
type AuthHandler struct {
	log    *slog.Logger
	users  *service.UserService
	tokens *service.TokenService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(log *slog.Logger, users *service.UserService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{log: log, users: users, tokens: tokens}
}

// Login handles POST /auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email and password are required", err.Error()))
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
