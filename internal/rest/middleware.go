package rest

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

const userKey = "user"

func currentUser(c echo.Context) *newsportal.User {
	user, _ := c.Get(userKey).(*newsportal.User)
	return user
}

// loginURL builds the login redirect for next. Slashes stay readable:
// /auth/login/?next=/edit_comment/1/
func loginURL(next string) string {
	return loginPath + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

func (h *NewsHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		req, res := c.Request(), c.Response()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", res.Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", req.RemoteAddr,
			"request_id", res.Header().Get(echo.HeaderXRequestID),
		)

		return nil
	}
}

// sessionMiddleware resolves the session cookie into the current user.
func (h *NewsHandler) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		user, err := h.uc.UserBySession(c.Request().Context(), cookie.Value)
		if err != nil {
			h.log.Error("session lookup failed", "error", err)
		} else if user != nil {
			c.Set(userKey, user)
		}

		return next(c)
	}
}

// requireLogin sends anonymous requests to the login page with the original URL in next.
func (h *NewsHandler) requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) == nil {
			return c.Redirect(http.StatusFound, loginURL(c.Request().URL.RequestURI()))
		}
		return next(c)
	}
}

func (h *NewsHandler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	req := c.Request()
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed", "error", err, "method", req.Method, "path", req.URL.Path)
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}

	var respErr error
	switch {
	case req.Method == http.MethodHead:
		respErr = c.NoContent(code)
	case strings.HasPrefix(req.URL.Path, apiV1Prefix):
		respErr = c.JSON(code, map[string]string{"error": http.StatusText(code)})
	default:
		respErr = c.String(code, http.StatusText(code))
	}
	if respErr != nil {
		h.log.Error("failed to write error response", "error", respErr)
	}
}
