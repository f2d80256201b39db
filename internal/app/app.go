package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/K-u-n-i-n/ya-news/config"
	"github.com/K-u-n-i-n/ya-news/internal/db"
	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
	"github.com/K-u-n-i-n/ya-news/internal/rest"
	"github.com/K-u-n-i-n/ya-news/internal/rpc"
)

type App struct {
	DB      *db.Repository
	Manager *newsportal.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := newsportal.NewNewsManager(database, newsportal.Config{
		NewsCountOnHomePage: cfg.App.NewsCountOnHomePage,
		SessionTTL:          cfg.App.SessionTTL,
	}, logger)

	handler := rest.NewNewsHandler(manager, logger, rest.Options{
		SecureCookie: cfg.App.SecureCookie,
		ReportErrors: cfg.App.SentryDSN != "",
		Pinger:       database,
	})
	e := handler.RegisterRoutes()
	e.Any(rest.RPCPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:      database,
		Manager: manager,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}
}

// Prepare runs start-up maintenance: expired sessions are purged.
func (a *App) Prepare(ctx context.Context) error {
	n, err := a.Manager.CleanupExpiredSessions(ctx)
	if err != nil {
		return fmt.Errorf("cleanup sessions: %w", err)
	}

	a.Logger.Info("expired sessions removed", "count", n)
	return nil
}

func (a *App) Run(ctx context.Context, host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	a.Logger.Info("http server starting", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if dbErr := a.DB.Close(); dbErr != nil {
		err = errors.Join(err, dbErr)
	}

	return err
}
