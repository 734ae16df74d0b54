package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/middleware"
	"comanda/internal/model"
	"comanda/internal/service"
	"comanda/pkg/util"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	log    *slog.Logger
	orders *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(log *slog.Logger, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{log: log, orders: orders}
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondPage(c, orders)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Order not found", err.Error()))
		return
	}

	order, err := h.orders.Get(c.Request.Context(), ident, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	order, err := h.orders.Create(c.Request.Context(), ident, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Update handles PATCH /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Order not found", err.Error()))
		return
	}

	var patch model.UpdateOrderRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	order, err := h.orders.Update(c.Request.Context(), ident, id, &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Order not found", err.Error()))
		return
	}

	order, err := h.orders.Delete(c.Request.Context(), ident, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
