package handler

import (
	"net/http"

	"comanda/internal/model"
	"comanda/internal/version"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and build metadata
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewSuccessResponse("ok", version.Get()))
}
