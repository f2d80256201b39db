package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

// Pinger reports storage availability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	// SecureCookie marks the session cookie as HTTPS only.
	SecureCookie bool
	// ReportErrors sends 5xx errors, recovered panics included, to the request sentry hub.
	ReportErrors bool
	Pinger       Pinger
}

type NewsHandler struct {
	uc       newsportal.IManager
	log      *slog.Logger
	opts     Options
	renderer *Renderer
}

func NewNewsHandler(uc newsportal.IManager, log *slog.Logger, opts Options) *NewsHandler {
	return &NewsHandler{
		uc:       uc,
		log:      log,
		opts:     opts,
		renderer: MustRenderer(),
	}
}

// page is the data passed to every HTML template.
type page struct {
	User     *newsportal.User
	NewsList newsportal.NewsList
	News     *newsportal.News
	Comments newsportal.Comments
	Comment  *newsportal.Comment
	Form     any
	Errors   *newsportal.ValidationError
	Next     string
}

func (h *NewsHandler) render(c echo.Context, name string, p page) error {
	if p.User == nil {
		p.User = currentUser(c)
	}
	return c.Render(http.StatusOK, name, p)
}

// pageError maps manager errors to HTTP errors for HTML pages.
func (h *NewsHandler) pageError(err error) error {
	switch {
	case errors.Is(err, newsportal.ErrNewsNotFound), errors.Is(err, newsportal.ErrCommentNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	default:
		return err
	}
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}

func detailURL(newsID int) string {
	return fmt.Sprintf("/news/%d/#comments", newsID)
}

// Home renders the latest news.
func (h *NewsHandler) Home(c echo.Context) error {
	list, err := h.uc.HomeNews(c.Request().Context(), 0)
	if err != nil {
		return err
	}

	return h.render(c, "home.html", page{NewsList: list})
}

// NewsDetail renders a news item with its comments. The comment form is shown
// to authenticated users only.
func (h *NewsHandler) NewsDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.detailPage(c, id)
	if err != nil {
		return err
	}

	p.Form = newsportal.CommentForm{}
	return h.render(c, "detail.html", p)
}

// AddComment handles the comment form posted on the detail page.
func (h *NewsHandler) AddComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form newsportal.CommentForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	_, err = h.uc.AddComment(c.Request().Context(), currentUser(c), id, form)
	var ve *newsportal.ValidationError
	if errors.As(err, &ve) {
		p, err := h.detailPage(c, id)
		if err != nil {
			return err
		}
		p.Form, p.Errors = form, ve
		return h.render(c, "detail.html", p)
	} else if err != nil {
		return h.pageError(err)
	}

	return c.Redirect(http.StatusFound, detailURL(id))
}

func (h *NewsHandler) detailPage(c echo.Context, newsID int) (page, error) {
	ctx := c.Request().Context()

	news, err := h.uc.NewsByID(ctx, newsID)
	if err != nil {
		return page{}, h.pageError(err)
	}

	comments, err := h.uc.NewsComments(ctx, newsID)
	if err != nil {
		return page{}, err
	}

	return page{News: news, Comments: comments}, nil
}

// EditComment shows the edit form on GET and applies it on POST.
// Only the author reaches the form, everybody else gets 404.
func (h *NewsHandler) EditComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	user := currentUser(c)

	if c.Request().Method == http.MethodGet {
		comment, err := h.uc.EditableComment(ctx, user, id)
		if err != nil {
			return h.pageError(err)
		}
		return h.render(c, "comment_edit.html", page{
			Comment: comment,
			Form:    newsportal.CommentForm{Text: comment.Text},
		})
	}

	var form newsportal.CommentForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	comment, err := h.uc.EditComment(ctx, user, id, form)
	var ve *newsportal.ValidationError
	if errors.As(err, &ve) {
		return h.render(c, "comment_edit.html", page{Comment: comment, Form: form, Errors: ve})
	} else if err != nil {
		return h.pageError(err)
	}

	return c.Redirect(http.StatusFound, detailURL(comment.NewsID))
}

// DeleteComment shows a confirmation on GET and removes the comment on POST or DELETE.
func (h *NewsHandler) DeleteComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	user := currentUser(c)

	if c.Request().Method == http.MethodGet {
		comment, err := h.uc.EditableComment(ctx, user, id)
		if err != nil {
			return h.pageError(err)
		}
		return h.render(c, "comment_delete.html", page{Comment: comment})
	}

	comment, err := h.uc.DeleteComment(ctx, user, id)
	if err != nil {
		return h.pageError(err)
	}

	return c.Redirect(http.StatusFound, detailURL(comment.NewsID))
}
