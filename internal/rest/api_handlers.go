package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// News handles GET /api/v1/news
// @Summary Get latest news
// @Description Returns the newest news items sorted by date DESC. The limit is capped at the home page size
// @Tags news
// @Produce json
// @Param limit query int false "Number of items (default and maximum: home page size)"
// @Success 200 {array} rest.News
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *NewsHandler) News(c echo.Context) error {
	var filter NewsFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if filter.Limit < 0 {
		return h.handleError(c, nil, http.StatusBadRequest, "limit must not be negative")
	}

	list, err := h.uc.HomeNews(c.Request().Context(), filter.Limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list, NewNews))
}

// NewsByID handles GET /api/v1/news/:id
// @Summary Get news by ID
// @Description Returns a news item with all its comments sorted by createdAt ASC
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.NewsDetail
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [get]
func (h *NewsHandler) NewsByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()
	news, err := h.uc.NewsByID(ctx, id)
	if errors.Is(err, newsportal.ErrNewsNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "news not found"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	comments, err := h.uc.NewsComments(ctx, id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNewsDetail(*news, comments))
}

// Health handles GET /health
// @Summary Health check
// @Tags service
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *NewsHandler) Health(c echo.Context) error {
	if h.opts.Pinger != nil {
		if err := h.opts.Pinger.Ping(c.Request().Context()); err != nil {
			return h.handleError(c, err, http.StatusServiceUnavailable, "database unavailable")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SwaggerDoc serves the registered OpenAPI document.
func (h *NewsHandler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
