package rest

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/labstack/echo/v4"

	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

const sessionCookie = "sessionid"

// safeNext returns next when it is a local path, otherwise "/".
// Browsers drop tabs and newlines from URLs, so any control character is rejected.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	if strings.IndexFunc(next, unicode.IsControl) >= 0 {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}

func (h *NewsHandler) setSession(c echo.Context, s *newsportal.Session) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    s.Key,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *NewsHandler) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// Login renders the login form and authenticates the posted credentials.
func (h *NewsHandler) Login(c echo.Context) error {
	next := c.QueryParam("next")

	if c.Request().Method == http.MethodGet {
		return h.render(c, "login.html", page{Form: newsportal.LoginForm{}, Next: next})
	}

	var form newsportal.LoginForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if v := c.FormValue("next"); v != "" {
		next = v
	}

	ctx := c.Request().Context()
	user, err := h.uc.Authenticate(ctx, form)
	var ve *newsportal.ValidationError
	if errors.As(err, &ve) {
		form.Password = ""
		return h.render(c, "login.html", page{Form: form, Errors: ve, Next: next})
	} else if err != nil {
		return err
	}

	session, err := h.uc.StartSession(ctx, user)
	if err != nil {
		return err
	}
	h.setSession(c, session)

	return c.Redirect(http.StatusFound, safeNext(next))
}

// Logout drops the session and renders the logged out page.
func (h *NewsHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if err := h.uc.EndSession(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	h.clearSession(c)
	c.Set(userKey, nil)

	return h.render(c, "logged_out.html", page{})
}

// Signup registers a user and logs them in.
func (h *NewsHandler) Signup(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return h.render(c, "signup.html", page{Form: newsportal.SignupForm{}})
	}

	var form newsportal.SignupForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.uc.Signup(ctx, form)
	var ve *newsportal.ValidationError
	if errors.As(err, &ve) {
		form.Password1, form.Password2 = "", ""
		return h.render(c, "signup.html", page{Form: form, Errors: ve})
	} else if err != nil {
		return err
	}

	session, err := h.uc.StartSession(ctx, user)
	if err != nil {
		return err
	}
	h.setSession(c, session)

	return c.Redirect(http.StatusFound, "/")
}
