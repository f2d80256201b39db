package rest

import (
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lucsky/cuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	newsListPath = "/news"
	newsByIDPath = "/news/:id"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"

	// RPCPath is where the JSON-RPC server is mounted.
	RPCPath = "/rpc/"

	// Page paths
	homePath          = "/"
	detailPath        = "/news/:id/"
	editCommentPath   = "/edit_comment/:id/"
	deleteCommentPath = "/delete_comment/:id/"
	loginPath         = "/auth/login/"
	logoutPath        = "/auth/logout/"
	signupPath        = "/auth/signup/"
)

var (
	getPost       = []string{http.MethodGet, http.MethodPost}
	getPostDelete = []string{http.MethodGet, http.MethodPost, http.MethodDelete}
)

// RegisterRoutes builds the echo instance with all pages, the JSON API and middleware.
func (h *NewsHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = h.renderer
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: cuid.New}))
	e.Use(metricsMiddleware)
	e.Use(h.loggingMiddleware)
	if h.opts.ReportErrors {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(middleware.Recover())
	e.Use(h.sessionMiddleware)

	h.registerPageRoutes(e)
	h.registerAuthRoutes(e)
	h.registerAPIRoutes(e)

	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.SwaggerDoc)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))

	return e
}

func (h *NewsHandler) registerPageRoutes(e *echo.Echo) {
	e.GET(homePath, h.Home)
	e.GET(detailPath, h.NewsDetail)
	e.POST(detailPath, h.AddComment, h.requireLogin)
	e.Match(getPost, editCommentPath, h.EditComment, h.requireLogin)
	e.Match(getPostDelete, deleteCommentPath, h.DeleteComment, h.requireLogin)
}

func (h *NewsHandler) registerAuthRoutes(e *echo.Echo) {
	e.Match(getPost, loginPath, h.Login)
	e.Match(getPost, logoutPath, h.Logout)
	e.Match(getPost, signupPath, h.Signup)
}

func (h *NewsHandler) registerAPIRoutes(e *echo.Echo) {
	api := e.Group(apiV1Prefix)
	api.GET(newsListPath, h.News)
	api.GET(newsByIDPath, h.NewsByID)
}
