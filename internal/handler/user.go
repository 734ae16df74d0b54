package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/middleware"
	"comanda/internal/model"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	log   *slog.Logger
	users *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(log *slog.Logger, users *service.UserService) *UserHandler {
	return &UserHandler{log: log, users: users}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondPage(c, users)
}

// Get handles GET /users/:uid, where uid is an id or an email
func (h *UserHandler) Get(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	user, err := h.users.Get(c.Request.Context(), ident, c.Param("uid"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PATCH /users/:uid
func (h *UserHandler) Update(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var patch model.UpdateUserRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	user, err := h.users.Update(c.Request.Context(), ident, c.Param("uid"), &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:uid
func (h *UserHandler) Delete(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	user, err := h.users.Delete(c.Request.Context(), ident, c.Param("uid"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
