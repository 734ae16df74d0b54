package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/model"
	"comanda/internal/service"
	"comanda/pkg/util"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	log      *slog.Logger
	products *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(log *slog.Logger, products *service.ProductService) *ProductHandler {
	return &ProductHandler{log: log, products: products}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondPage(c, products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Product not found", err.Error()))
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	product, err := h.products.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update handles PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Product not found", err.Error()))
		return
	}

	var patch model.UpdateProductRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Product not found", err.Error()))
		return
	}

	product, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
