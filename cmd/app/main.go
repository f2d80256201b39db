package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/K-u-n-i-n/ya-news/config"
	_ "github.com/K-u-n-i-n/ya-news/docs"
	"github.com/K-u-n-i-n/ya-news/internal/app"
	"github.com/K-u-n-i-n/ya-news/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before start")
	cfg       config.Config
	lg        *slog.Logger
)

// @title YaNews API
// @version 1.0
// @description Read API of the YaNews portal: latest news and comments
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	ctx := context.Background()

	if cfg.App.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{Dsn: cfg.App.SentryDSN, AttachStacktrace: true})
		exitOnError(err)
		defer sentry.Flush(2 * time.Second)
	}

	if *flMigrate {
		err = db.RunMigrations(ctx, db.URL(&cfg.Database))
		exitOnError(err)
		lg.Info("migrations applied")
	}

	dbc := pg.Connect(&cfg.Database)
	if cfg.App.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service := app.New(cfg, dbc, lg)
	if err := service.Prepare(ctx); err != nil {
		lg.Warn("startup cleanup failed", "error", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Host, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
