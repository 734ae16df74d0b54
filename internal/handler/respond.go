package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"comanda/internal/config"
	"comanda/internal/model"
	"comanda/pkg/pagination"
	"comanda/pkg/sl"

	"github.com/gin-gonic/gin"
)

// respondError translates service errors into HTTP responses. Unexpected
// storage errors are logged and surfaced as a generic 500.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrInvalid):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, model.ErrForbidden), errors.Is(err, model.ErrDuplicate):
		c.JSON(http.StatusForbidden, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse(err.Error(), ""))
	default:
		log.Error("unexpected storage error",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			sl.Err(err))
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", ""))
	}
}

// pageParams reads page and limit query parameters, falling back to the
// defaults on absent, unparsable or non-positive values.
func pageParams(c *gin.Context) (page, limit int) {
	page, limit = 1, config.DefaultPageSize
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		limit = v
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}
	return page, limit
}

// respondPage paginates items, sets the Link and X-Total-Count headers and
// writes the page data.
func respondPage[T any](c *gin.Context, items []T) {
	page, limit := pageParams(c)
	res := pagination.Paginate(items, page, limit)
	c.Header("Link", res.LinkHeader(c.Request.URL.Path))
	c.Header("X-Total-Count", strconv.Itoa(res.TotalItems))
	c.JSON(http.StatusOK, res.PageData)
}
