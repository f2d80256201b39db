package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/K-u-n-i-n/ya-news/internal/db"
)

type Manager struct {
	db  *db.Repository
	cfg Config
	log *slog.Logger
	now func() time.Time
}

func NewNewsManager(repo *db.Repository, cfg Config, log *slog.Logger) *Manager {
	return &Manager{
		db:  repo,
		cfg: cfg.withDefaults(),
		log: log,
		now: time.Now,
	}
}

// PageSize returns the configured home page size.
func (m *Manager) PageSize() int {
	return m.cfg.NewsCountOnHomePage
}

// HomeNews returns the newest news items, date DESC. A limit outside
// 1..PageSize() is replaced by PageSize().
func (m *Manager) HomeNews(ctx context.Context, limit int) (NewsList, error) {
	if limit < 1 || limit > m.cfg.NewsCountOnHomePage {
		limit = m.cfg.NewsCountOnHomePage
	}

	list, err := m.db.NewsList(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	return NewNewsList(list), nil
}

// NewsByID returns ErrNewsNotFound for an unknown id.
func (m *Manager) NewsByID(ctx context.Context, newsID int) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, ErrNewsNotFound
	}

	news := NewNews(dbNews)
	return &news, nil
}

// NewsComments returns all comments of the news item, oldest first.
func (m *Manager) NewsComments(ctx context.Context, newsID int) (Comments, error) {
	list, err := m.db.CommentsByNews(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}
